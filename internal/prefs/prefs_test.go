package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestLoad_ReadsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "Kanagawa"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got := Load(path)
	if got.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", got.Theme)
	}
}

func TestLoad_BlankThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "   "`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got := Load(path)
	if got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got := Load(path)
	if got.Theme != "Slate" {
		t.Fatalf("round trip Theme = %q, want Slate", got.Theme)
	}
}
