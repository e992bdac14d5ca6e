package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ScanInterval() != 2*time.Second {
		t.Errorf("default scan interval: got %v, want 2s", cfg.ScanInterval())
	}
	if cfg.IconRefresh() != 5*time.Second {
		t.Errorf("default icon refresh: got %v, want 5s", cfg.IconRefresh())
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScanIntervalMS != Default().ScanIntervalMS {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "scan_interval_ms: 500\ndeny_owners:\n  - com.example.pinned\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScanInterval() != 500*time.Millisecond {
		t.Errorf("scan interval: got %v, want 500ms", cfg.ScanInterval())
	}
	// Unset fields keep their defaults.
	if cfg.IconRefreshMS != Default().IconRefreshMS {
		t.Errorf("icon refresh should default, got %d", cfg.IconRefreshMS)
	}
	if len(cfg.DenyOwners) != 1 || cfg.DenyOwners[0] != "com.example.pinned" {
		t.Errorf("deny owners: got %v", cfg.DenyOwners)
	}
}

func TestLoad_RejectsNonPositiveIntervals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("scan_interval_ms: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative interval")
	}
}

func TestLoadOrDefault_MalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("scan_interval_ms: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Error("a malformed settings file must not silently fall back to defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Default()
	want.DenyOwners = []string{"com.example.one"}

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ScanIntervalMS != want.ScanIntervalMS || len(got.DenyOwners) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
