package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/DoyleJ11/freecell-client/internal/config"
	"github.com/DoyleJ11/freecell-client/internal/engineclient"
	"github.com/DoyleJ11/freecell-client/internal/logging"
	"github.com/DoyleJ11/freecell-client/internal/session"
	"github.com/DoyleJ11/freecell-client/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "freecell:", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "config file (default "+config.ConfigPath()+")")
	engineURL := flag.String("engine", "", "engine base URL, overrides config")
	sims := flag.Int("sim", 0, "computer move simulations, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *engineURL != "" {
		cfg.EngineURL = *engineURL
	}
	if *sims > 0 {
		cfg.ComputerSimulations = *sims
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	client, err := engineclient.New(engineclient.Options{
		BaseURL:   cfg.EngineURL,
		Timeout:   cfg.RequestTimeout,
		RateLimit: limit,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := session.New(ctx, client, session.Options{
		Simulations: cfg.ComputerSimulations,
		Logger:      logger,
	})
	frames := make(chan session.Frame, 32)
	s.Inbox() <- session.Join{ClientID: client.SessionID(), Outbox: frames}

	logger.Info("starting", zap.String("engine", cfg.EngineURL), zap.Int("sim", cfg.ComputerSimulations))
	if _, err := tea.NewProgram(tui.New(s.Inbox(), frames), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
