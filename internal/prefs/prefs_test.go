package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got := Load("").Theme; got != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", got, DefaultTheme)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "shelf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Ravenclaw\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Load("").Theme; got != "Ravenclaw" {
		t.Fatalf("Theme = %q, want Ravenclaw", got)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slytherin"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path).Theme; got != "Slytherin" {
		t.Fatalf("Theme = %q, want Slytherin", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want only prefs.toml (temp file left behind?)", len(entries))
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	for _, theme := range []string{"Slytherin", "Hufflepuff"} {
		if err := Save(path, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s) returned error: %v", theme, err)
		}
	}
	if got := Load(path).Theme; got != "Hufflepuff" {
		t.Fatalf("Theme = %q, want Hufflepuff", got)
	}
}

func TestLoad_BadContentFallsBackToDefault(t *testing.T) {
	cases := map[string]string{
		"empty theme":  "theme = \"  \"\n",
		"invalid toml": "not valid toml {{{\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := Load(path).Theme; got != DefaultTheme {
				t.Fatalf("Theme = %q, want %q", got, DefaultTheme)
			}
		})
	}
}
