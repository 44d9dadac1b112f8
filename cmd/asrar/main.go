package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/zaibaitech/asrar-sub000/internal/cli"
	"github.com/zaibaitech/asrar-sub000/internal/config"
	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/geo"
	"github.com/zaibaitech/asrar-sub000/internal/planetary"
	"github.com/zaibaitech/asrar-sub000/internal/repository"
	"github.com/zaibaitech/asrar-sub000/internal/service"
	"github.com/zaibaitech/asrar-sub000/internal/solar"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := cli.ConfigPath(os.Args[1:], config.DefaultPath())
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := config.NewLogger(os.Stderr, cfg.Logging.Level)
	var observers []service.UseCaseObserver
	if cfg.Logging.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	locationRepo := repository.NewSQLiteLocationRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire location lookup (disabled lookups fall straight back to the default)
	var locator geo.Locator = geo.DisabledLocator{}
	if cfg.Geo.Enabled {
		var observer geo.Observer = geo.NoopObserver{}
		if cfg.Geo.LogCalls {
			observer = geo.NewLogObserver(os.Stderr)
		}
		locator = geo.NewHTTPLocator(geo.Config{
			Enabled:        true,
			LogCalls:       cfg.Geo.LogCalls,
			Endpoint:       cfg.Geo.Endpoint,
			TimeoutMs:      cfg.Geo.TimeoutMs,
			MaxRetries:     cfg.Geo.MaxRetries,
			RetryBackoffMs: cfg.Geo.RetryBackoffMs,
		}, observer)
	}

	// Wire services
	builder := planetary.NewBuilder(solar.SunriseProvider{}, cfg.Hours.FallbackStartHour)
	locationSvc := service.NewLocationService(locationRepo, uow, locator, cfg.FallbackLocation(), nil, observers...)
	hourSvc := service.NewHourService(builder, locationSvc, profileRepo, nil, observers...)

	app := &cli.App{
		Now:          hourSvc,
		Hours:        hourSvc,
		Location:     locationSvc,
		Profile:      service.NewProfileService(profileRepo, uow, nil, observers...),
		TickInterval: cfg.TickInterval(),
	}

	// Detect interactive terminal for the watch entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
