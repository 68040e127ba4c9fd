package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-tocmark")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-tocmark" {
			t.Errorf("expected path /tmp/test-tocmark, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-tocmark")

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-tocmark/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("RunsDir", func(t *testing.T) {
		expected := "/tmp/test-tocmark/runs"
		if dir.RunsDir() != expected {
			t.Errorf("expected %s, got %s", expected, dir.RunsDir())
		}
	})

	t.Run("RunDir", func(t *testing.T) {
		expected := "/tmp/test-tocmark/runs/abc123"
		if dir.RunDir("abc123") != expected {
			t.Errorf("expected %s, got %s", expected, dir.RunDir("abc123"))
		}
	})

	t.Run("InboxDir", func(t *testing.T) {
		expected := "/tmp/test-tocmark/inbox"
		if dir.InboxDir() != expected {
			t.Errorf("expected %s, got %s", expected, dir.InboxDir())
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	root := filepath.Join(tmpDir, "tocmark-test")

	dir, err := New(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dir.Exists() {
		t.Fatal("directory should not exist yet")
	}

	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}
	for _, p := range []string{dir.RunsDir(), dir.InboxDir()} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
		if !info.IsDir() {
			t.Errorf("expected %s to be a directory", p)
		}
	}
}

func TestDir_ConfigExists(t *testing.T) {
	dir, _ := New(t.TempDir())

	if dir.ConfigExists() {
		t.Fatal("config should not exist yet")
	}

	if err := os.WriteFile(dir.ConfigPath(), []byte("pipeline:\n  workers: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if !dir.ConfigExists() {
		t.Error("config should exist after writing")
	}
}
