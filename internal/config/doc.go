// Package config loads Shelf's start-up configuration.
//
// # Resolution Order
//
// Each field is taken from the first source that sets it:
//
//  1. Command-line flags (applied by the caller, not this package)
//  2. SHELF_* environment variables, optionally seeded from a .env file
//     through LoadEnvFile
//  3. ~/.config/shelf/config.toml, or the path passed to Load
//  4. Built-in defaults
//
// A missing config file is not an error. An unparsable one is.
//
// # Default Values
//
//   - Config file: ~/.config/shelf/config.toml
//   - API URL: https://potterapi-fedeperin.vercel.app
//   - Language: en
//   - Data directory: ~/.local/share/shelf
//   - Favorites database: <data_dir>/favorites.db
//   - Log file: <data_dir>/shelf.log
//   - Log level: info, format: text
//
// # TOML Format
//
//	api_url    = "https://potterapi-fedeperin.vercel.app"
//	language   = "en"
//	data_dir   = "~/.local/share/shelf"
//	log_file   = "~/.local/share/shelf/shelf.log"
//	log_level  = "info"
//	log_format = "text"
//
// Every field is optional. Values are trimmed and paths are tilde-expanded
// and made absolute.
//
// # Environment
//
//   - SHELF_API_URL
//   - SHELF_LANGUAGE
//   - SHELF_DATA_DIR
//   - SHELF_LOG_LEVEL
package config
