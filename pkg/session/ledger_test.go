package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funnel-ops/funnel/pkg/models"
)

func TestLedgerExtract_IPv4(t *testing.T) {
	l := NewLedger()
	l.ExtractFrom(models.ToolExecuteShell, "ip addr",
		"inet 192.168.1.42/24\ninet 127.0.0.1/8\nbroadcast 255.255.255.255\nbind 0.0.0.0")

	assert.Equal(t, "192.168.1.42", l.ExtractedValues["ip:192.168.1.42"])
	assert.NotContains(t, l.ExtractedValues, "ip:127.0.0.1")
	assert.NotContains(t, l.ExtractedValues, "ip:0.0.0.0")
	assert.NotContains(t, l.ExtractedValues, "ip:255.255.255.255")
}

func TestLedgerExtract_URLsCappedAndTruncated(t *testing.T) {
	l := NewLedger()
	long := "https://example.com/" + strings.Repeat("x", 200)
	output := strings.Join([]string{
		"https://one.example.com/a",
		"https://two.example.com/b",
		"https://three.example.com/c",
		"https://four.example.com/d",
		long,
	}, "\n")
	l.ExtractFrom(models.ToolExecuteShell, "curl", output)

	urls := 0
	for k, v := range l.ExtractedValues {
		if strings.HasPrefix(k, "url:") {
			urls++
			assert.LessOrEqual(t, len(v), 100)
		}
	}
	assert.LessOrEqual(t, urls, 3, "at most 3 URLs per step")
}

func TestLedgerExtract_GitShaOnlyForGitCommands(t *testing.T) {
	l := NewLedger()
	l.ExtractFrom(models.ToolExecuteShell, "ls -la", "deadbeef12 something")
	assert.NotContains(t, l.ExtractedValues, "git_sha")

	l.ExtractFrom(models.ToolExecuteShell, "git log --oneline", "a1b2c3d fix discovery timeout")
	assert.Equal(t, "a1b2c3d", l.ExtractedValues["git_sha"])
}

func TestLedgerExtract_ContainerIDOnlyForDocker(t *testing.T) {
	l := NewLedger()
	l.ExtractFrom(models.ToolExecuteShell, "docker ps", "3f4e5d6c7b8a  nginx  Up 2 hours")
	assert.Equal(t, "3f4e5d6c7b8a", l.ExtractedValues["container_id"])

	l2 := NewLedger()
	l2.ExtractFrom(models.ToolExecuteShell, "cat hexdump", "3f4e5d6c7b8a")
	assert.NotContains(t, l2.ExtractedValues, "container_id")
}

func TestLedgerExtract_IdempotentByKey(t *testing.T) {
	l := NewLedger()
	l.ExtractFrom(models.ToolExecuteShell, "x", "listening on port 8080")
	l.ExtractFrom(models.ToolExecuteShell, "x", "listening on port 8080")
	assert.Equal(t, "8080", l.ExtractedValues["port:8080"])
	assert.Len(t, l.ExtractedValues, 1)
}

func TestLedgerExtract_ErrorLine(t *testing.T) {
	l := NewLedger()
	l.ExtractFrom(models.ToolExecuteShell, "make", "compiling...\nError: undefined symbol foo\ndone")
	assert.Contains(t, l.ExtractedValues["last_error"], "undefined symbol")
}

func TestLedgerBounds(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 30; i++ {
		l.RecordRequest("request")
	}
	assert.Len(t, l.UserRequests, maxUserRequests)

	for i := 0; i < 50; i++ {
		l.RecordAction("did a thing")
	}
	assert.Len(t, l.Entries, maxLedgerEntries)
}

func TestValidIPv4(t *testing.T) {
	assert.True(t, validIPv4("10.0.0.1"))
	assert.False(t, validIPv4("999.1.1.1"))
}
