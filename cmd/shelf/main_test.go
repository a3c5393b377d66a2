package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shelf/internal/app"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logger"
	"github.com/five82/shelf/internal/potter"
)

const azkabanJSON = `{
  "number": 3,
  "title": "Harry Potter and the Prisoner of Azkaban",
  "originalTitle": "Harry Potter and the Prisoner of Azkaban",
  "releaseDate": "Jul 8, 1999",
  "description": "Harry's third year of studies at Hogwarts.",
  "pages": 317,
  "cover": "https://example.test/azkaban.png",
  "index": 2
}`

// unsetEnv removes key for the duration of the test. t.Setenv cannot
// express "unset", and dotenv never overrides a variable that exists.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	orig, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func isolate(t *testing.T) []string {
	t.Helper()
	for _, key := range []string{config.EnvAPIURL, config.EnvLanguage, config.EnvDataDir, config.EnvLogLevel} {
		unsetEnv(t, key)
	}
	dir := t.TempDir()
	return []string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"--data-dir", dir,
	}
}

func booksServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/en/books/random" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRandomPrintsBook(t *testing.T) {
	srv := booksServer(t, http.StatusOK, azkabanJSON)
	args := append([]string{"random", "--api-url", srv.URL}, isolate(t)...)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Book 3 - Harry Potter and the Prisoner of Azkaban")
	assert.Contains(t, out, "Jul 8, 1999")
	assert.Contains(t, out, "317")
}

func TestRandomJSON(t *testing.T) {
	srv := booksServer(t, http.StatusOK, azkabanJSON)
	args := append([]string{"random", "--json", "--api-url", srv.URL}, isolate(t)...)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())

	var book potter.Book
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &book))
	assert.Equal(t, 3, book.Number)
	assert.Equal(t, 317, book.Pages)
}

func TestRandomFailureExitsNonZero(t *testing.T) {
	srv := booksServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	args := append([]string{"random", "--api-url", srv.URL}, isolate(t)...)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(stderr.String(), "shelf: "), stderr.String())
	assert.Contains(t, stderr.String(), "500")
	assert.Empty(t, stdout.String())
}

func TestRandomReadsAPIURLFromEnvFile(t *testing.T) {
	srv := booksServer(t, http.StatusOK, azkabanJSON)
	args := isolate(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(config.EnvAPIURL+"="+srv.URL+"\n"), 0o644))
	args = append([]string{"random"}, append(args, "--env-file", envFile)...)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "Book 3")
}

func TestFavoritesEmpty(t *testing.T) {
	args := append([]string{"favorites"}, isolate(t)...)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())
	assert.Equal(t, "No favorite books yet\n", stdout.String())
}

func TestFavoritesPrintsInSavedOrder(t *testing.T) {
	args := isolate(t)
	dataDir := args[len(args)-1]

	favs, err := app.OpenFavorites(config.Config{DataDir: dataDir}, false, logger.Discard())
	require.NoError(t, err)
	for _, book := range []potter.Book{
		{Number: 4, OriginalTitle: "The Goblet of Fire", Pages: 636},
		{Number: 1, OriginalTitle: "The Philosopher's Stone", Pages: 223},
	} {
		_, err := favs.Add(book)
		require.NoError(t, err)
	}
	require.NoError(t, favs.Close())

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(append([]string{"favorites"}, args...), &stdout, &stderr), stderr.String())

	out := stdout.String()
	goblet := strings.Index(out, "Book 4 - The Goblet of Fire")
	stone := strings.Index(out, "Book 1 - The Philosopher's Stone")
	require.NotEqual(t, -1, goblet, out)
	require.NotEqual(t, -1, stone, out)
	assert.Less(t, goblet, stone)
}

func TestUnknownCommandFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"remove"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "shelf: ")
}
