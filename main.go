package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"holoholo/internal/catalog"
	"holoholo/internal/config"
	"holoholo/internal/domain"
	"holoholo/internal/eventbus"
	"holoholo/internal/logger"
	"holoholo/internal/ui"
)

var version = "dev"

func main() {
	// Parse command line arguments
	var (
		configPath  string
		catalogPath string
		logPath     string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&catalogPath, "catalog", "", "Catalog file to browse (.toml, .yaml); the demo catalog is used when empty")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("holoholo", version)
		return
	}

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, created, loadErr := loadOrCreateConfig(configSvc)

	if logPath != "" {
		cfg.Log.File = logPath
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	// Set up logging
	lg, closer, err := logger.Open(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer closer.Close()
	}
	log.Logger = lg

	if loadErr != nil {
		lg.Warn().Err(loadErr).Str("path", configSvc.Path()).Msg("using default config")
	}

	// Create event bus
	bus := eventbus.New(lg)
	defer bus.Close()
	subscribeLogging(bus, lg)
	bus.Publish(domain.ConfigLoadedEvent{Path: configSvc.Path(), Created: created})
	if created {
		bus.Publish(domain.ConfigSavedEvent{Path: configSvc.Path()})
	}

	// Load the catalog
	cat := catalog.Seed()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			lg.Error().Err(err).Str("path", cfg.CatalogPath).Msg("failed to load catalog")
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create UI model
	scheduler := ui.NewLoopScheduler()
	uiModel := ui.NewModel(ui.Options{
		Config:    cfg,
		Catalog:   cat,
		Scheduler: scheduler,
		Bus:       bus,
		Logger:    lg,
	})

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	scheduler.Attach(p.Send)
	uiModel.SetProgram(p)

	// Signal readiness for e2e tests
	if os.Getenv("HOLOHOLO_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	// Run the UI
	lg.Info().Str("version", version).Int("products", len(cat.Products())).Msg("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		lg.Error().Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	lg.Info().Msg("UI exited normally")
}

// loadOrCreateConfig loads the config, writing defaults on first run.
// On a broken file the defaults are used and the error is returned for logging.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool, error) {
	path := configSvc.Path()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg, err := configSvc.Load()
		if err != nil {
			return config.DefaultConfig(), false, err
		}
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			return cfg, false, err
		}
		return cfg, true, nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return config.DefaultConfig(), false, err
	}
	return cfg, false, nil
}

// subscribeLogging records storefront activity in the log file
func subscribeLogging(bus eventbus.EventBus, lg zerolog.Logger) {
	lg = lg.With().Str("component", "events").Logger()

	bus.Subscribe(domain.EventConfigLoaded, func(e eventbus.DomainEvent) {
		ev := e.(domain.ConfigLoadedEvent)
		lg.Info().Str("path", ev.Path).Bool("created", ev.Created).Msg("config loaded")
	})
	bus.Subscribe(domain.EventConfigSaved, func(e eventbus.DomainEvent) {
		lg.Info().Str("path", e.(domain.ConfigSavedEvent).Path).Msg("default config written")
	})
	bus.Subscribe(domain.EventSearchSubmitted, func(e eventbus.DomainEvent) {
		ev := e.(domain.SearchSubmittedEvent)
		lg.Info().Str("query", ev.Query).Int("results", ev.Results).Msg("search")
	})
	bus.Subscribe(domain.EventSuggestionsShown, func(e eventbus.DomainEvent) {
		ev := e.(domain.SuggestionsShownEvent)
		lg.Debug().Str("query", ev.Query).Int("count", ev.Count).Msg("suggestions shown")
	})
	bus.Subscribe(domain.EventSuggestionChosen, func(e eventbus.DomainEvent) {
		ev := e.(domain.SuggestionChosenEvent)
		lg.Info().Str("query", ev.Query).Str("value", ev.Value).Msg("suggestion chosen")
	})
	bus.Subscribe(domain.EventCartUpdated, func(e eventbus.DomainEvent) {
		ev := e.(domain.CartUpdatedEvent)
		lg.Info().Int("product", ev.ProductID).Int("quantity", ev.Quantity).Int("items", ev.Items).Msg("cart updated")
	})
	bus.Subscribe(domain.EventWishlistToggled, func(e eventbus.DomainEvent) {
		ev := e.(domain.WishlistToggledEvent)
		lg.Info().Int("product", ev.ProductID).Bool("added", ev.Added).Msg("wishlist toggled")
	})
	bus.Subscribe(domain.EventShareLinkCreated, func(e eventbus.DomainEvent) {
		ev := e.(domain.ShareLinkCreatedEvent)
		lg.Info().Int("product", ev.ProductID).Str("platform", ev.Platform).Bool("copied", ev.Copied).Str("url", ev.URL).Msg("share link created")
	})
	bus.Subscribe(domain.EventNotificationPosted, func(e eventbus.DomainEvent) {
		ev := e.(domain.NotificationPostedEvent)
		lg.Debug().Str("level", ev.Level).Str("message", ev.Message).Msg("notification")
	})
	bus.Subscribe(domain.EventError, func(e eventbus.DomainEvent) {
		ev := e.(domain.ErrorEvent)
		lg.Error().Err(ev.Err).Msg(ev.Message)
	})
}
