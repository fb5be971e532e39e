package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	t.Setenv("SUDOKU_STORAGE", "")
	t.Setenv("SUDOKU_SQLITE_PATH", "")
	os.Unsetenv("SUDOKU_STORAGE")
	os.Unsetenv("SUDOKU_SQLITE_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.StorageDriver != "none" {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, "none")
	}
	if cfg.SQLitePath != "sudoku.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "sudoku.db")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SUDOKU_STORAGE", "sqlite")
	t.Setenv("SUDOKU_SQLITE_PATH", "/tmp/puzzles.db")
	t.Setenv("POCKETBASE_URL", "https://pb.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.StorageDriver != "sqlite" {
		t.Errorf("StorageDriver = %q, want %q", cfg.StorageDriver, "sqlite")
	}
	if cfg.SQLitePath != "/tmp/puzzles.db" {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, "/tmp/puzzles.db")
	}
	if cfg.PocketBaseURL != "https://pb.example.com" {
		t.Errorf("PocketBaseURL = %q, want %q", cfg.PocketBaseURL, "https://pb.example.com")
	}
}
