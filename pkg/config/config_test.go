package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.AutomaticColoring {
		t.Error("automatic coloring should default to true")
	}
	if cfg.ServerURL() != DefaultServerURL {
		t.Errorf("ServerURL() = %q", cfg.ServerURL())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Cache.Backend != CacheFile {
		t.Errorf("backend = %q, want default", cfg.Cache.Backend)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
automatic_coloring = false

[server]
custom_enabled = true
url = "http://localhost:3000"
timeout = "30s"

[cache]
backend = "none"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.AutomaticColoring {
		t.Error("automatic_coloring not applied")
	}
	if cfg.ServerURL() != "http://localhost:3000" {
		t.Errorf("ServerURL() = %q", cfg.ServerURL())
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.Server.Timeout)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("unset ttl should keep its default, got %v", cfg.Cache.TTL)
	}
}

func TestServerURLCustomDisabled(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "http://localhost:3000"
	if cfg.ServerURL() != DefaultServerURL {
		t.Errorf("custom url used while disabled: %q", cfg.ServerURL())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad custom url", func(c *Config) { c.Server.CustomEnabled = true; c.Server.URL = "localhost" }, true},
		{"bad url ignored when disabled", func(c *Config) { c.Server.URL = "localhost" }, false},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, true},
		{"unknown cache", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis without url", func(c *Config) { c.Cache.Backend = CacheRedis }, true},
		{"redis", func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.RedisURL = "redis://localhost:6379" }, false},
		{"unknown storage", func(c *Config) { c.Storage.Backend = "s3" }, true},
		{"mongo without uri", func(c *Config) { c.Storage.Backend = StorageMongo }, true},
		{"mongo", func(c *Config) { c.Storage.Backend = StorageMongo; c.Storage.MongoURI = "mongodb://localhost" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !oerrors.Is(err, oerrors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v", oerrors.GetCode(err))
			}
		})
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	cfg := Default()
	if err := Decode("colouring = true", cfg); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = StorageFile
	cfg.Storage.Dir = "/var/lib/ontokit"

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	got := &Config{}
	if err := Decode(buf.String(), got); err != nil {
		t.Fatalf("Decode() error: %v\n%s", err, buf.String())
	}
	if got.Storage.Dir != cfg.Storage.Dir || got.Server.Timeout != cfg.Server.Timeout {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join("/tmp/xdg", "ontokit", "config.toml") {
		t.Errorf("Path() = %q", p)
	}
}
