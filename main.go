package main

import (
	"context"
	"errors"
	"fmt"
	"iiwa-config/config"
	"iiwa-config/internal/discovery"
	"iiwa-config/internal/logger"
	"iiwa-config/internal/models"
	"iiwa-config/internal/pinger"
	"iiwa-config/internal/provider"
	"iiwa-config/internal/reporter"
	"iiwa-config/internal/scanner"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the robot configuration loader.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	appLogger, closeLogFile, err := logger.New(os.Stderr, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer closeLogFile()
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, cfg, appLogger, os.Stdout); err != nil {
		appLogger.Error("Failed to load robot configuration.", "error", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, cfg *config.Config, log *slog.Logger, stdout io.Writer) error {
	enum, err := discovery.NewEnumerator(cfg.Enumerator)
	if err != nil {
		return err
	}
	builder := provider.New(enum, log)

	var robotCfg models.Configuration
	if cfg.ConfigFile == "" {
		log.Debug("Using bundled config.txt.")
		robotCfg, err = builder.CreateFromDefault()
	} else {
		log.Debug("Reading config file.", "path", cfg.ConfigFile)
		robotCfg, err = builder.CreateFromFile(cfg.ConfigFile)
	}
	if err != nil {
		return err
	}
	log.Info("Configuration loaded.", "config", robotCfg.String())

	if _, ok := robotCfg.RobotIP(); !ok && cfg.RequireRobotIP {
		return fmt.Errorf("robot ip is not configured and no local address shares the %s/24 subnet", robotCfg.MasterIP())
	}

	var probes []models.ProbeResult
	if cfg.Probe {
		probes = append(probes,
			pinger.Probe(ctx, robotCfg.MasterIP(), cfg.Timeout, log),
			scanner.NewConnectScanner(cfg.Timeout, log).Scan(ctx, robotCfg.MasterIP(), robotCfg.MasterPort()),
		)
		for _, p := range probes {
			log.Info("Master probe.", "kind", p.Kind, "target", p.Target, "status", p.Status, "latency_ms", p.LatencyMS())
		}
	}

	rp, err := reporter.NewReporter(cfg.Format, log)
	if err != nil {
		return err
	}

	report := reporter.New(robotCfg, probes...)
	if cfg.OutputFile == "" {
		return rp.Write(stdout, report)
	}
	return writeFile(cfg.OutputFile, func(w io.Writer) error { return rp.Write(w, report) })
}

// writeFile creates path, runs write on it and reports the close error too.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
