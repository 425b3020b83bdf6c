// Package cli wires jsonpeek's dependencies for the command line and TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/build"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/infrastructure/clipboard"
	"github.com/bnema/jsonpeek/internal/infrastructure/config"
	"github.com/bnema/jsonpeek/internal/infrastructure/filesystem"
	"github.com/bnema/jsonpeek/internal/infrastructure/permission"
	"github.com/bnema/jsonpeek/internal/infrastructure/persistence/memory"
	"github.com/bnema/jsonpeek/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/jsonpeek/internal/logging"
)

// AppOptions carries the global command-line switches.
type AppOptions struct {
	// Ephemeral keeps history and options in memory for this run only.
	Ephemeral bool
	// LogLevel overrides logging.level from the config file.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Ephemeral bool

	Store       port.KeyValueStore
	Clipboard   port.Clipboard
	Exporter    port.Exporter
	Permissions port.PermissionChecker

	// Use cases
	History *usecase.HistoryStore
	Options *usecase.OptionsManager
	Scanner *usecase.PageScanner

	configManager *config.Manager
	lazyDB        *sqlite.LazyDB
	logLevel      string

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use, so commands that never touch
// storage never create it.
func NewApp(opts AppOptions) (*App, error) {
	cfg, mgr := loadConfig()

	logLevel := cfg.Logging.Level
	if opts.LogLevel != "" {
		logLevel = opts.LogLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		Ephemeral:     opts.Ephemeral,
		configManager: mgr,
		logLevel:      logLevel,
		ctx:           ctx,
	}

	if opts.Ephemeral {
		app.Store = memory.NewKeyValueStore()
		logger.Debug().Msg("using in-memory storage")
	} else {
		app.lazyDB = sqlite.NewLazyDB(cfg.Storage.Path)
		app.Store = sqlite.NewKeyValueStore(app.lazyDB)
		logger.Debug().Str("db_path", cfg.Storage.Path).Msg("storage configured")
	}

	app.Clipboard = clipboard.Disabled{}
	if cfg.Clipboard.Enabled {
		app.Clipboard = clipboard.New()
	}
	app.Exporter = filesystem.NewExporter(cfg.Export.Dir)
	app.Permissions = permission.NewChecker(filepath.Dir(cfg.Storage.Path), cfg.Clipboard.Enabled, opts.Ephemeral)

	app.History = usecase.NewHistoryStore(app.Store)
	app.Options = usecase.NewOptionsManager(app.Store)

	theme := entity.ThemeLight
	if o, err := app.Options.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("options unavailable, using defaults")
	} else {
		theme = o.Theme
	}
	app.Theme = styles.NewTheme(theme)
	app.Scanner = usecase.NewPageScanner(app.Theme.Name)

	return app, nil
}

// PopupSettings returns the controller settings from config.
func (a *App) PopupSettings() usecase.PopupSettings {
	return SettingsFromConfig(a.Config)
}

// NewPopup builds and initializes a popup controller over the surface.
func (a *App) NewPopup(ctx context.Context, surface port.Surface, clip port.Clipboard) (*usecase.PopupController, error) {
	ctrl, err := usecase.NewPopupController(usecase.PopupDeps{
		Surface:     surface,
		History:     a.History,
		Options:     a.Options,
		Clipboard:   clip,
		Exporter:    a.Exporter,
		Permissions: a.Permissions,
		Settings:    a.PopupSettings(),
	})
	if err != nil {
		return nil, err
	}
	if err := ctrl.Init(ctx); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// WatchConfig reloads the config file on change and reports new popup settings.
func (a *App) WatchConfig(ctx context.Context, onChange func(usecase.PopupSettings)) error {
	if a.configManager == nil {
		return nil
	}
	a.configManager.OnConfigChange(func(cfg *config.Config) {
		onChange(SettingsFromConfig(cfg))
	})
	return a.configManager.Watch(ctx)
}

// RedirectLogs sends logs to a rotated JSON file in the data directory,
// for full-screen views where stderr output would corrupt the display.
func (a *App) RedirectLogs(name string) (func(), error) {
	const logDirPerm = 0o755
	dir := filepath.Dir(a.Config.Storage.Path)
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	rot, err := logging.NewRotator(logging.RotatorConfig{
		Dir:        dir,
		Name:       name,
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAge:     14 * 24 * time.Hour,
		Compress:   true,
	})
	if err != nil {
		return nil, err
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(a.logLevel)
	cfg.Format = "json"
	cfg.Output = rot
	a.ctx = logging.WithContext(a.ctx, logging.New(cfg))

	return func() { _ = rot.Close() }, nil
}

// ConfigManager returns the loaded config manager, nil when defaults are in use.
func (a *App) ConfigManager() *config.Manager {
	return a.configManager
}

// Close releases all resources.
func (a *App) Close() error {
	if a.lazyDB != nil {
		return a.lazyDB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// SettingsFromConfig maps config values onto popup settings.
func SettingsFromConfig(cfg *config.Config) usecase.PopupSettings {
	return usecase.PopupSettings{
		HistoryDisplayLimit:  cfg.History.DisplayLimit,
		ErrorDisplayDuration: cfg.Messages.ErrorDuration,
		ToastDuration:        cfg.Messages.ToastDuration,
	}
}

// loadConfig loads configuration from standard locations.
// Any failure falls back to the defaults so the CLI keeps working.
func loadConfig() (*config.Config, *config.Manager) {
	mgr, err := config.NewManager()
	if err != nil {
		return defaultConfig(), nil
	}

	if err := mgr.Load(); err != nil {
		logger := logging.NewFromEnv()
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		return defaultConfig(), nil
	}

	return mgr.Get(), mgr
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if cfg.Storage.Path == "" {
		if dbFile, err := config.GetDatabaseFile(); err == nil {
			cfg.Storage.Path = dbFile
		}
	}
	return cfg
}
