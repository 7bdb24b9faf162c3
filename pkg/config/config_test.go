package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestInitialize_DefaultsOnly(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "localhost:50052", cfg.LLM.Address)
	assert.Equal(t, 41234, cfg.Discovery.Port)
	assert.Equal(t, 2*time.Second, cfg.Discovery.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.Discovery.TTL())
	assert.Equal(t, 10, cfg.Task.MaxSteps)
	assert.Equal(t, 60*time.Second, cfg.Task.ShellTimeout())
	assert.False(t, cfg.Database.Enabled)
}

func TestInitialize_YAMLOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  listen_addr: ":9090"
llm:
  temperature: 0.7
discovery:
  port: 51000
  host_address: "agent01.lan"
security:
  cert_path: /etc/funnel/orchestrator.crt
  key_path: /etc/funnel/orchestrator.key
  ca_path: /etc/funnel/ca.crt
task:
  workspace_root: /srv/work
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 51000, cfg.Discovery.Port)
	assert.Equal(t, "agent01.lan", cfg.Discovery.HostAddress)
	assert.Equal(t, "/srv/work", cfg.Task.WorkspaceRoot)

	// Untouched sections keep their defaults.
	assert.Equal(t, "localhost:50052", cfg.LLM.Address)
	assert.Equal(t, 2, cfg.Discovery.TimeoutSeconds)
}

func TestInitialize_EnvOverridesWin(t *testing.T) {
	dir := writeConfig(t, `
discovery:
  port: 51000
`)
	t.Setenv("FUNNEL_DISCOVERY_PORT", "52000")
	t.Setenv("FUNNEL_HOST_ADDRESS", "10.0.0.5")
	t.Setenv("FUNNEL_INSECURE", "true")
	t.Setenv("FUNNEL_MAX_STEPS", "25")
	t.Setenv("ORCHESTRATOR_CERT_PATH", "/run/secrets/cert.pem")
	t.Setenv("DATABASE_URL", "postgres://funnel:pw@localhost:5432/funnel")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 52000, cfg.Discovery.Port)
	assert.Equal(t, "10.0.0.5", cfg.Discovery.HostAddress)
	assert.True(t, cfg.Security.Insecure)
	assert.Equal(t, 25, cfg.Task.MaxSteps)
	assert.Equal(t, "/run/secrets/cert.pem", cfg.Security.CertPath)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres://funnel:pw@localhost:5432/funnel", cfg.Database.URL)
}

func TestInitialize_MalformedEnvIgnored(t *testing.T) {
	t.Setenv("FUNNEL_DISCOVERY_PORT", "not-a-port")
	t.Setenv("FUNNEL_INSECURE", "maybe")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 41234, cfg.Discovery.Port)
	assert.False(t, cfg.Security.Insecure)
}

func TestInitialize_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port out of range",
			yaml:    "discovery:\n  port: 70000\n",
			wantErr: "discovery.port",
		},
		{
			name:    "temperature out of range",
			yaml:    "llm:\n  temperature: 3.5\n",
			wantErr: "llm.temperature",
		},
		{
			name:    "bad fingerprint",
			yaml:    "security:\n  ca_fingerprint: abc123\n",
			wantErr: "ca_fingerprint",
		},
		{
			name:    "capture without url",
			yaml:    "database:\n  enabled: true\n",
			wantErr: "database.url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInitialize_FingerprintWithColons(t *testing.T) {
	dir := writeConfig(t, `
security:
  ca_fingerprint: "AA:BB:CC:DD:EE:FF:00:11:22:33:44:55:66:77:88:99:AA:BB:CC:DD:EE:FF:00:11:22:33:44:55:66:77:88:99"
`)
	_, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FUNNEL_TEST_SECRET", "s3cret")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "expands set variable",
			in:   "url: postgres://funnel:{{.FUNNEL_TEST_SECRET}}@db/app",
			want: "url: postgres://funnel:s3cret@db/app",
		},
		{
			name: "missing variable becomes empty",
			in:   "token: {{.FUNNEL_TEST_UNSET_VARIABLE}}",
			want: "token: ",
		},
		{
			name: "dollar signs untouched",
			in:   `pattern: "^secret.*$"`,
			want: `pattern: "^secret.*$"`,
		},
		{
			name: "malformed template passes through",
			in:   "value: {{.broken",
			want: "value: {{.broken",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.in))))
		})
	}
}

func TestInitialize_CustomMaskingPatterns(t *testing.T) {
	dir := writeConfig(t, `
masking:
  custom_patterns:
    - name: employee_id
      pattern: '\bEMP-\d{6}\b'
      replacement: "EMP-******"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, cfg.Masking.CustomPatterns, 1)
	assert.Equal(t, "employee_id", cfg.Masking.CustomPatterns[0].Name)
	assert.Equal(t, `\bEMP-\d{6}\b`, cfg.Masking.CustomPatterns[0].Pattern)
}
