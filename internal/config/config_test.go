package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/biblioctl/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BIBLIOCTL_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Library.Path == "" {
		t.Error("default library path is empty")
	}
	if cfg.Defaults.Access != "any" {
		t.Errorf("default access = %q, want %q", cfg.Defaults.Access, "any")
	}
	if cfg.Defaults.BenchSize <= 0 {
		t.Errorf("default bench size = %d, want > 0", cfg.Defaults.BenchSize)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "library:\n  path: /tmp/lib.yml\ndefaults:\n  access: borrow\n  bench_size: 500\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIBLIOCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Library.Path != "/tmp/lib.yml" {
		t.Errorf("library path = %q", cfg.Library.Path)
	}
	if cfg.Defaults.Access != "borrow" || cfg.Defaults.BenchSize != 500 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(":: not yaml ["), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BIBLIOCTL_CONFIG", path)
	if _, err := config.Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cases := []struct{ in, want string }{
		{"~/books/library.yml", filepath.Join(home, "books", "library.yml")},
		{"/absolute/path.yml", "/absolute/path.yml"},
		{"relative/path.yml", "relative/path.yml"},
	}
	for _, c := range cases {
		if got := config.ExpandHome(c.in); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
