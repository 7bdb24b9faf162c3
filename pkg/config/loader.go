package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the YAML file looked up inside the config directory.
const ConfigFileName = "funnel.yaml"

// Initialize loads, merges, and validates configuration. This is the primary
// entry point for configuration loading.
//
// Steps performed:
//  1. Read funnel.yaml from configDir (a missing file means defaults only)
//  2. Expand {{.VAR}} environment references in the raw YAML
//  3. Parse YAML into the Config struct
//  4. Fill unset fields from built-in defaults
//  5. Apply environment variable overrides
//  6. Validate the result
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen_addr", cfg.Server.ListenAddr,
		"llm_address", cfg.LLM.Address,
		"discovery_port", cfg.Discovery.Port,
		"insecure", cfg.Security.Insecure,
		"capture_enabled", cfg.Database.Enabled)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Info("No config file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies flat environment variables on top of the merged
// config. These win over both funnel.yaml and defaults so containerized
// deployments can reconfigure without editing files.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.ListenAddr, "FUNNEL_LISTEN_ADDR")
	setString(&cfg.LLM.Address, "FUNNEL_LLM_ADDRESS")

	setInt(&cfg.Discovery.Port, "FUNNEL_DISCOVERY_PORT")
	setInt(&cfg.Discovery.TimeoutSeconds, "FUNNEL_DISCOVERY_TIMEOUT")
	setString(&cfg.Discovery.HostAddress, "FUNNEL_HOST_ADDRESS")

	setString(&cfg.Security.CertPath, "ORCHESTRATOR_CERT_PATH")
	setString(&cfg.Security.KeyPath, "ORCHESTRATOR_KEY_PATH")
	setString(&cfg.Security.CAPath, "CA_CERT_PATH")
	setString(&cfg.Security.CAFingerprint, "FUNNEL_CA_FINGERPRINT")
	setBool(&cfg.Security.Insecure, "FUNNEL_INSECURE")

	setInt(&cfg.Task.MaxSteps, "FUNNEL_MAX_STEPS")
	setString(&cfg.Task.WorkspaceRoot, "FUNNEL_WORKSPACE_ROOT")

	if url, ok := os.LookupEnv("DATABASE_URL"); ok && url != "" {
		cfg.Database.URL = url
		cfg.Database.Enabled = true
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring non-integer environment override", "key", key, "value", v)
		return
	}
	*dst = n
}

func setBool(dst *bool, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring non-boolean environment override", "key", key, "value", v)
		return
	}
	*dst = b
}
