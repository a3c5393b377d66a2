package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/favorites"
	"github.com/five82/shelf/internal/logger"
	"github.com/five82/shelf/internal/potter"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the Shelf application. Non-empty fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	DataDir    string
	APIURL     string
	Language   string
	LogLevel   string
	Ephemeral  bool // keep favorites in memory only
}

// Favorites is an open favorites store together with the database behind it.
type Favorites struct {
	*favorites.Store
	slot *favorites.BadgerSlot
}

// Close releases the database.
func (f *Favorites) Close() error {
	if f == nil || f.slot == nil {
		return nil
	}
	return f.slot.Close()
}

// LoadConfig reads the config file and environment, then applies opts.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.Language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(opts.DataDir); v != "" {
		dir, err := config.ExpandPath(v)
		if err != nil {
			return config.Config{}, fmt.Errorf("data dir: %w", err)
		}
		cfg = cfg.WithDataDir(dir)
	}
	return cfg, nil
}

// NewClient builds the book client described by cfg. Debug level turns on
// request logging.
func NewClient(cfg config.Config, log *slog.Logger) (*potter.Client, error) {
	opts := []potter.Option{potter.WithLanguage(cfg.Language)}
	if logger.ParseLevel(cfg.LogLevel) <= slog.LevelDebug {
		opts = append(opts, potter.WithDebugLogging(log))
	}
	client, err := potter.NewClient(cfg.APIURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("init book client: %w", err)
	}
	return client, nil
}

// OpenFavorites opens the favorites database under cfg's data dir, or an
// in-memory one when ephemeral is set. Badger locks the directory, so only
// one process can hold it at a time.
func OpenFavorites(cfg config.Config, ephemeral bool, log *slog.Logger) (*Favorites, error) {
	var (
		slot *favorites.BadgerSlot
		err  error
	)
	if ephemeral {
		slot, err = favorites.OpenInMemory(log)
	} else {
		slot, err = favorites.OpenBadger(cfg.DatabaseDir(), log)
	}
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("open favorites: %s is in use, is shelf already running? (%w)", cfg.DatabaseDir(), err)
		}
		return nil, fmt.Errorf("open favorites: %w", err)
	}
	return &Favorites{Store: favorites.New(slot, log), slot: slot}, nil
}

// Run boots the Shelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) (err error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log := logger.New(logger.Config{
		Writer: logFile,
		Format: cfg.LogFormat,
		Level:  logger.ParseLevel(cfg.LogLevel),
	})
	log.Info("shelf starting",
		"api_url", cfg.APIURL,
		"language", cfg.Language,
		"data_dir", cfg.DataDir,
		"ephemeral", opts.Ephemeral)

	client, err := NewClient(cfg, log)
	if err != nil {
		return err
	}

	favs, err := OpenFavorites(cfg, opts.Ephemeral, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := favs.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close favorites: %w", cerr)
		}
	}()

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		Fetcher:   client,
		Favorites: favs,
		Navigator: state.NewNavigator(),
		Logger:    log,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	err = ui.Run(uiOpts)
	log.Info("shelf stopped", "error", err)
	return err
}
