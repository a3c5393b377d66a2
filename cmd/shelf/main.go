package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/shelf/internal/app"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logger"
	"github.com/five82/shelf/internal/potter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "shelf: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	envFile    string
	prefsPath  string
	dataDir    string
	apiURL     string
	lang       string
	logLevel   string
	ephemeral  bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		DataDir:    f.dataDir,
		APIURL:     f.apiURL,
		Language:   f.lang,
		LogLevel:   f.logLevel,
		Ephemeral:  f.ephemeral,
	}
}

// cliLogger writes to stderr. Without --log-level only warnings and
// errors are shown so command output stays clean.
func (f *rootFlags) cliLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	level := slog.LevelWarn
	if strings.TrimSpace(f.logLevel) != "" {
		level = logger.ParseLevel(cfg.LogLevel)
	}
	return logger.New(logger.Config{
		Writer: cmd.ErrOrStderr(),
		Format: cfg.LogFormat,
		Level:  level,
	})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Browse random Harry Potter books and keep a list of favorites",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadEnvFile(flags.envFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/shelf/config.toml)")
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file with SHELF_* overrides (default ./.env)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/shelf/prefs.toml)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the favorites database")
	pf.StringVar(&flags.apiURL, "api-url", "", "base URL of the books API")
	pf.StringVar(&flags.lang, "lang", "", "API language (en, es, fr, it, pt, uk)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep favorites in memory for this run only")

	root.AddCommand(newRandomCmd(flags), newFavoritesCmd(flags))
	return root
}

func newRandomCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch one random book and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(flags.options())
			if err != nil {
				return err
			}
			client, err := app.NewClient(cfg, flags.cliLogger(cmd, cfg))
			if err != nil {
				return err
			}
			book, err := client.FetchRandomBook(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), book)
			}
			printBook(cmd.OutOrStdout(), book)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the book as JSON")
	return cmd
}

func newFavoritesCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Print saved favorite books in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := app.LoadConfig(flags.options())
			if err != nil {
				return err
			}
			favs, err := app.OpenFavorites(cfg, flags.ephemeral, flags.cliLogger(cmd, cfg))
			if err != nil {
				return err
			}
			defer func() {
				if cerr := favs.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close favorites: %w", cerr)
				}
			}()

			books := favs.ReadAll()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, books)
			}
			if len(books) == 0 {
				fmt.Fprintln(out, "No favorite books yet")
				return nil
			}
			for _, book := range books {
				printBook(out, book)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print favorites as a JSON array")
	return cmd
}

func printBook(w io.Writer, book potter.Book) {
	fmt.Fprintln(w, book.Label())
	fmt.Fprintf(w, "  Release date: %s\n", orDash(book.ReleaseDate))
	fmt.Fprintf(w, "  Pages:        %d\n", book.Pages)
	if cover := strings.TrimSpace(book.Cover); cover != "" {
		fmt.Fprintf(w, "  Cover:        %s\n", cover)
	}
	if desc := strings.TrimSpace(book.Description); desc != "" {
		fmt.Fprintf(w, "  %s\n", desc)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return strings.TrimSpace(s)
}
