// Funnel orchestrator server — drives LLM-planned tasks across LAN-discovered
// execution agents and serves the HTTP/SSE front end.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/funnel-ops/funnel/pkg/api"
	"github.com/funnel-ops/funnel/pkg/capture"
	"github.com/funnel-ops/funnel/pkg/config"
	"github.com/funnel-ops/funnel/pkg/database"
	"github.com/funnel-ops/funnel/pkg/discovery"
	"github.com/funnel-ops/funnel/pkg/dispatch"
	"github.com/funnel-ops/funnel/pkg/driver"
	"github.com/funnel-ops/funnel/pkg/guardrail"
	"github.com/funnel-ops/funnel/pkg/llm"
	"github.com/funnel-ops/funnel/pkg/masking"
	"github.com/funnel-ops/funnel/pkg/reasoning"
	"github.com/funnel-ops/funnel/pkg/session"
	"github.com/funnel-ops/funnel/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting funnel", "version", version.Full(), "config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Masking runs on every tool output before it reaches the prompt, the
	// event stream, or the capture store.
	masker := masking.NewService()
	for _, p := range cfg.Masking.CustomPatterns {
		masker.AddPattern(p.Name, p.Pattern, p.Replacement)
	}

	// grpc.NewClient dials lazily; the first request connects.
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Address, cfg.LLM.Temperature, cfg.LLM.MaxTokens)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	// Warm the model in the background so the first task does not pay the
	// load latency. Failure is non-fatal; the first request retries.
	go func() {
		if err := llmClient.Warmup(ctx); err != nil {
			slog.Warn("Model warmup failed", "error", err)
		}
	}()

	engine := reasoning.NewEngine(llmClient)
	if cfg.Task.StepBudget > 0 {
		engine.SetStepBudget(cfg.Task.StepBudget)
	}

	disc := discovery.NewService(discovery.Config{
		Port:        cfg.Discovery.Port,
		Timeout:     cfg.Discovery.Timeout(),
		TTL:         cfg.Discovery.TTL(),
		HostAddress: cfg.Discovery.HostAddress,
	})

	dispatcher := dispatch.NewDispatcher(disc, dispatch.TLSConfig{
		CertPath:      cfg.Security.CertPath,
		KeyPath:       cfg.Security.KeyPath,
		CAPath:        cfg.Security.CAPath,
		CAFingerprint: cfg.Security.CAFingerprint,
		Insecure:      cfg.Security.Insecure,
	})
	defer dispatcher.Close()

	sessions := session.NewRegistry()

	taskDriver := driver.New(driver.Options{
		Engine:           engine,
		Guardrails:       guardrail.NewPipeline(),
		Discovery:        disc,
		Remote:           dispatcher,
		Sessions:         sessions,
		Masker:           masker,
		MaxSteps:         cfg.Task.MaxSteps,
		DefaultWorkspace: cfg.Task.WorkspaceRoot,
		ShellTimeout:     cfg.Task.ShellTimeout(),
	})

	var runner api.TaskRunner = taskDriver
	var dbPing func(context.Context) error

	if cfg.Database.Enabled {
		dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.Database.URL))
		if err != nil {
			slog.Error("Failed to connect to capture store", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing capture store", "error", err)
			}
		}()
		slog.Info("Capture store connected")

		runner = capture.NewRunner(taskDriver, capture.NewService(dbClient))
		dbPing = func(ctx context.Context) error {
			_, err := database.Health(ctx, dbClient.DB())
			return err
		}
	}

	server := api.NewServer(api.Options{
		ListenAddr: cfg.Server.ListenAddr,
		Runner:     runner,
		Agents:     disc,
		Sessions:   sessions,
		Model:      llmClient,
		Prober:     dispatcher,
		DBPing:     dbPing,
	})

	if err := server.Run(ctx); err != nil {
		slog.Error("HTTP server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
