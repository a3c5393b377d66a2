// Package app is the composition root for Shelf.
//
// # Overview
//
// Run wires configuration, logging, the book client, the favorites
// database and the navigator into the UI, then blocks until the user
// quits. The CLI subcommands reuse LoadConfig, NewClient and
// OpenFavorites so every entry point resolves settings the same way.
//
// # Start-up
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> LoadConfig()        config.toml, SHELF_* env, then Options
//	       ├─────> logger.OpenFile()   the TUI owns the terminal
//	       ├─────> NewClient()         potter client (+ request logging at debug)
//	       ├─────> OpenFavorites()     Badger under data_dir, or in memory
//	       ├─────> prefs.Load()        theme
//	       └─────> ui.Run()            blocks
//
// # Error Handling
//
// Config, log file, client and database failures are returned before the
// UI starts. Once the UI is up, fetch and save failures are shown to the
// user as notices and never end the program.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Ephemeral: true}); err != nil {
//		log.Fatalf("shelf failed: %v", err)
//	}
package app
