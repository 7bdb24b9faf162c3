package dispatch

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCAFingerprint(t *testing.T) {
	der := []byte("not a real certificate but DER enough for pinning")
	caPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	sum := sha256.Sum256(der)
	fingerprint := hex.EncodeToString(sum[:])

	t.Run("no pin configured", func(t *testing.T) {
		assert.NoError(t, verifyCAFingerprint(caPEM, ""))
	})

	t.Run("matching pin", func(t *testing.T) {
		assert.NoError(t, verifyCAFingerprint(caPEM, fingerprint))
	})

	t.Run("colon separated and uppercase accepted", func(t *testing.T) {
		var parts []string
		for i := 0; i < len(fingerprint); i += 2 {
			parts = append(parts, strings.ToUpper(fingerprint[i:i+2]))
		}
		assert.NoError(t, verifyCAFingerprint(caPEM, strings.Join(parts, ":")))
	})

	t.Run("mismatch rejected", func(t *testing.T) {
		err := verifyCAFingerprint(caPEM, strings.Repeat("ab", 32))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("non-PEM rejected", func(t *testing.T) {
		assert.Error(t, verifyCAFingerprint([]byte("garbage"), fingerprint))
	})
}

func TestFilesExist(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o600))

	assert.True(t, filesExist(present))
	assert.False(t, filesExist(present, filepath.Join(dir, "missing.pem")))
	assert.False(t, filesExist(""))
	assert.False(t, filesExist())
	assert.True(t, filesExist(present, present))
}

func TestConnKeyIdentity(t *testing.T) {
	a := connKey{agentID: "web01", ip: "10.0.0.5", port: 50051}
	b := connKey{agentID: "web01", ip: "10.0.0.5", port: 50051}
	c := connKey{agentID: "web01", ip: "10.0.0.6", port: 50051}

	assert.Equal(t, a, b, "same endpoint shares one channel")
	assert.NotEqual(t, a, c, "a moved agent gets a fresh channel")
}
