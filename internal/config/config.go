package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything Shelf reads at start-up.
type Config struct {
	APIURL    string
	Language  string
	DataDir   string
	LogFile   string
	LogLevel  string
	LogFormat string
}

const (
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultAPIURL     = "https://potterapi-fedeperin.vercel.app"
	defaultLanguage   = "en"
	defaultDataDir    = "~/.local/share/shelf"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	logFileName       = "shelf.log"
	dbDirName         = "favorites.db"
)

// Environment overrides, applied after the config file.
const (
	EnvAPIURL   = "SHELF_API_URL"
	EnvLanguage = "SHELF_LANGUAGE"
	EnvDataDir  = "SHELF_DATA_DIR"
	EnvLogLevel = "SHELF_LOG_LEVEL"
)

// LoadEnvFile loads KEY=value pairs from path (or ./.env when empty) into
// the process environment without replacing variables already set. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads the config file at path, falling back to defaults when it is
// missing, then applies SHELF_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		APIURL    string `toml:"api_url"`
		Language  string `toml:"language"`
		DataDir   string `toml:"data_dir"`
		LogFile   string `toml:"log_file"`
		LogLevel  string `toml:"log_level"`
		LogFormat string `toml:"log_format"`
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := Config{
		APIURL:    firstNonEmpty(os.Getenv(EnvAPIURL), raw.APIURL, defaultAPIURL),
		Language:  firstNonEmpty(os.Getenv(EnvLanguage), raw.Language, defaultLanguage),
		DataDir:   firstNonEmpty(os.Getenv(EnvDataDir), raw.DataDir, defaultDataDir),
		LogLevel:  firstNonEmpty(os.Getenv(EnvLogLevel), raw.LogLevel, defaultLogLevel),
		LogFormat: strings.ToLower(firstNonEmpty(raw.LogFormat, defaultLogFormat)),
	}
	cfg.DataDir = mustExpand(cfg.DataDir)

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, logFileName)
	}
	cfg.LogFile = mustExpand(cfg.LogFile)

	return cfg, nil
}

// DatabaseDir returns the Badger directory holding the favorites.
func (c Config) DatabaseDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/" + dbDirName)
	}
	return filepath.Join(c.DataDir, dbDirName)
}

// WithDataDir returns c with its data dir set to dir. A log file left at
// its default location under the old data dir moves with it.
func (c Config) WithDataDir(dir string) Config {
	if c.LogFile == "" || c.LogFile == filepath.Join(c.DataDir, logFileName) {
		c.LogFile = filepath.Join(dir, logFileName)
	}
	c.DataDir = dir
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
