package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"dropzone/internal/config"
	"dropzone/internal/domain"
	"dropzone/internal/eventbus"
	"dropzone/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath   string
		accept       string
		name         string
		startDir     string
		logPath      string
		multiple     bool
		required     bool
		legacyEvents bool
		save         bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a config file (default ./"+config.FileName+")")
	flag.StringVar(&accept, "accept", "", "Comma-separated accept patterns, e.g. \".jpg,image/*\"")
	flag.StringVar(&name, "name", "", "Label shown for the zone")
	flag.StringVar(&startDir, "dir", "", "Directory the picker starts in")
	flag.StringVar(&startDir, "d", "", "Directory the picker starts in (shorthand)")
	flag.StringVar(&logPath, "log", "", "Log file")
	flag.BoolVar(&multiple, "multiple", false, "Allow selecting more than one file")
	flag.BoolVar(&required, "required", false, "Exit with status 1 when nothing is selected")
	flag.BoolVar(&legacyEvents, "legacy-events", false, "Also emit the deprecated selected notification")
	flag.BoolVar(&save, "save", false, "Write the effective configuration to the config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		return 1
	}

	configSvc := config.NewConfigService(cwd)
	if configPath == "" {
		configPath = filepath.Join(cwd, config.FileName)
	}
	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		return 1
	}

	// Flags given on the command line win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "accept":
			cfg.Accept = accept
		case "name":
			cfg.Name = name
		case "dir", "d":
			cfg.StartDir = startDir
		case "log":
			cfg.LogFile = logPath
		case "multiple":
			cfg.Multiple = multiple
		case "required":
			cfg.Required = required
		case "legacy-events":
			cfg.LegacyEvents = legacyEvents
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	if save {
		if err := configSvc.SaveToPath(cfg, configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
			return 1
		}
	}

	logger, closeLog := newLogger(cfg.LogFile)
	defer closeLog()

	bus := eventbus.NewWithLogger(logger)
	subscribeLogging(bus, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(cfg, bus, logger)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	model.SetProgram(p)

	logger.Info("starting", "accept", cfg.Accept, "multiple", cfg.Multiple, "required", cfg.Required)
	if os.Getenv("DROPZONE_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}

	for _, f := range model.Selected() {
		if path := domain.PathOf(f); path != "" {
			fmt.Println(path)
		}
	}

	if !model.RequirementMet() {
		fmt.Fprintln(os.Stderr, "No file selected")
		return 1
	}
	return 0
}

// loadConfig loads the config file if present, otherwise defaults
func loadConfig(svc config.ConfigService, path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return svc.LoadFromPath(path)
}

func newLogger(path string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { logFile.Close() }
}

func subscribeLogging(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventChange, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ChangeEvent); ok {
			logger.Info("change", "zone", ev.Source, "count", len(ev.Files))
		}
	})
	bus.Subscribe(eventbus.EventSelected, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectedEvent); ok {
			logger.Info("selected", "zone", ev.Source, "count", len(ev.Files))
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			logger.Warn("error", "zone", ev.Source, "error", ev.Err)
		}
	})
}
