package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_PathsUnderDataDir(t *testing.T) {
	cfg := New("testdata_dir", "reports")

	wantFiles := map[string]string{
		"library week 1": cfg.LibraryWeek1Path,
		"library week 2": cfg.LibraryWeek2Path,
		"log":            cfg.LogPath,
		"custom days":    cfg.CustomDaysPath,
		"undo buffer":    cfg.UndoPath,
		"blocks":         cfg.BlocksPath,
	}
	for name, path := range wantFiles {
		if filepath.Dir(path) != "testdata_dir" {
			t.Errorf("%s path = %q, want under data dir", name, path)
		}
	}
	if cfg.ExportDir != "reports" {
		t.Errorf("ExportDir = %q, want reports", cfg.ExportDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HEMSWORTH_DATA_DIR", "/tmp/hemsworth-test")

	cfg := Load()
	if cfg.DataDir != "/tmp/hemsworth-test" {
		t.Errorf("DataDir = %q, want env value", cfg.DataDir)
	}
	// каталог отчётов по умолчанию совпадает с каталогом данных
	if cfg.ExportDir != cfg.DataDir {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, cfg.DataDir)
	}
}

func TestEnsureDataDir(t *testing.T) {
	base := t.TempDir()
	cfg := New(filepath.Join(base, "data"), filepath.Join(base, "reports"))

	if err := cfg.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() error = %v", err)
	}
	for _, dir := range []string{cfg.DataDir, cfg.ExportDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s not created: %v", dir, err)
		}
	}
}
