package masking

import (
	"regexp"
	"strings"
)

// pemBlockMasker blanks PEM-framed private key material. Certificates are
// public and left alone; anything whose header says KEY is replaced whole.
type pemBlockMasker struct{}

var pemKeyBlock = regexp.MustCompile(
	`(?s)-----BEGIN ([A-Z ]*(?:PRIVATE |OPENSSH PRIVATE )KEY)-----.*?-----END [A-Z ]*KEY-----`)

func (pemBlockMasker) Name() string { return "pem_private_key" }

func (pemBlockMasker) AppliesTo(data string) bool {
	return strings.Contains(data, "-----BEGIN")
}

func (pemBlockMasker) Mask(data string) string {
	return pemKeyBlock.ReplaceAllString(data, "-----BEGIN $1-----\n***MASKED***\n-----END $1-----")
}
