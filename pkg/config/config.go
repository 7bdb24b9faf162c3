// Package config loads funnel.yaml, expands environment variables, merges
// defaults, and validates the result before the rest of the system starts.
package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Config is the fully merged and validated runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Security  SecurityConfig  `yaml:"security"`
	Task      TaskConfig      `yaml:"task"`
	Masking   MaskingConfig   `yaml:"masking"`
	Database  DatabaseConfig  `yaml:"database"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// LLMConfig points at the inference sidecar.
type LLMConfig struct {
	Address     string  `yaml:"address"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int32   `yaml:"max_tokens"`
}

// DiscoveryConfig controls the UDP agent discovery round.
type DiscoveryConfig struct {
	Port           int    `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	TTLSeconds     int    `yaml:"ttl_seconds"`
	HostAddress    string `yaml:"host_address"`
}

// Timeout returns the discovery round timeout as a duration.
func (d DiscoveryConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// TTL returns the cache freshness window as a duration.
func (d DiscoveryConfig) TTL() time.Duration {
	return time.Duration(d.TTLSeconds) * time.Second
}

// SecurityConfig holds the mTLS material for agent connections. When any of
// the three paths is missing the dispatcher falls back to plaintext with a
// warning, so none of them is required here.
type SecurityConfig struct {
	CertPath      string `yaml:"cert_path"`
	KeyPath       string `yaml:"key_path"`
	CAPath        string `yaml:"ca_path"`
	CAFingerprint string `yaml:"ca_fingerprint"`
	Insecure      bool   `yaml:"insecure"`
}

// TaskConfig bounds task execution.
type TaskConfig struct {
	MaxSteps            int    `yaml:"max_steps"`
	StepBudget          int    `yaml:"step_budget"`
	WorkspaceRoot       string `yaml:"workspace_root"`
	ShellTimeoutSeconds int    `yaml:"shell_timeout_seconds"`
}

// ShellTimeout returns the local shell timeout as a duration.
func (t TaskConfig) ShellTimeout() time.Duration {
	return time.Duration(t.ShellTimeoutSeconds) * time.Second
}

// MaskingConfig adds site-specific redaction rules on top of the built-ins.
type MaskingConfig struct {
	CustomPatterns []PatternConfig `yaml:"custom_patterns"`
}

// PatternConfig is one user-supplied masking rule.
type PatternConfig struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// DatabaseConfig enables optional step capture to Postgres.
type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		LLM: LLMConfig{
			Address:     "localhost:50052",
			Temperature: 0.2,
			MaxTokens:   2048,
		},
		Discovery: DiscoveryConfig{
			Port:           41234,
			TimeoutSeconds: 2,
			TTLSeconds:     300,
		},
		Task: TaskConfig{
			MaxSteps:            10,
			StepBudget:          15,
			WorkspaceRoot:       ".",
			ShellTimeoutSeconds: 60,
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr must not be empty")
	}
	if cfg.LLM.Address == "" {
		return fmt.Errorf("llm.address must not be empty")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature %v out of range [0, 2]", cfg.LLM.Temperature)
	}
	if cfg.Discovery.Port < 1 || cfg.Discovery.Port > 65535 {
		return fmt.Errorf("discovery.port %d out of range [1, 65535]", cfg.Discovery.Port)
	}
	if cfg.Discovery.TimeoutSeconds < 1 {
		return fmt.Errorf("discovery.timeout_seconds must be positive")
	}
	if cfg.Task.MaxSteps < 1 {
		return fmt.Errorf("task.max_steps must be positive")
	}
	if fp := cfg.Security.CAFingerprint; fp != "" {
		cleaned := strings.ReplaceAll(fp, ":", "")
		if len(cleaned) != 64 {
			return fmt.Errorf("security.ca_fingerprint must be a SHA-256 hex digest, got %d hex chars", len(cleaned))
		}
		if _, err := hex.DecodeString(cleaned); err != nil {
			return fmt.Errorf("security.ca_fingerprint is not valid hex: %w", err)
		}
	}
	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return fmt.Errorf("database.url must be set when database.enabled is true")
	}
	return nil
}
