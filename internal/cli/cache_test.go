package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ontouml/ontokit/pkg/cache"
)

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(os.Stderr, LogInfo)
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.HasPrefix(dir, os.Getenv("XDG_CACHE_HOME")) {
		t.Errorf("cacheDir() = %q, should honor XDG_CACHE_HOME", dir)
	}
}

func TestCachePathFromConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "responses")
	out, err := execute(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n", "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != filepath.ToSlash(dir) && strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", out, dir)
	}
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}
	if n := countEntries(dir); n != 3 {
		t.Fatalf("countEntries = %d, want 3", n)
	}

	if _, err := execute(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n", "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := countEntries(dir); n != 0 {
		t.Errorf("%d entries left after clear", n)
	}
	if _, ok, _ := fc.Get(ctx, "a"); ok {
		t.Error("entry still readable after clear")
	}
}

func TestCacheClearOtherBackend(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "keep")
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := "[cache]\nbackend = \"none\"\ndir = \"" + filepath.ToSlash(dir) + "\"\n"
	if _, err := execute(t, cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("clear touched the directory of a disabled cache: %v", err)
	}
}

func TestCountEntriesMissingDir(t *testing.T) {
	if n := countEntries(filepath.Join(t.TempDir(), "missing")); n != 0 {
		t.Errorf("countEntries = %d, want 0", n)
	}
}
