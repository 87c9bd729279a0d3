// Package config loads ontokit's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/ontokit/config.toml (usually
// ~/.config/ontokit/config.toml). A missing file is not an error: every
// field has a default, see [Default].
//
//	automatic_coloring = true
//
//	[server]
//	custom_enabled = true
//	url = "http://localhost:3000"
//	timeout = "30s"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[storage]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//	database = "ontokit"
//
//	[api]
//	addr = ":8080"
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
)

// DefaultServerURL is the public OntoUML server.
const DefaultServerURL = "https://ontouml.herokuapp.com"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Storage backends.
const (
	StorageFile  = "file"
	StorageMongo = "mongo"
	StorageNone  = "none"
)

// Config is the full configuration.
type Config struct {
	// AutomaticColoring enables the color inference engine.
	AutomaticColoring bool `toml:"automatic_coloring"`

	Server  Server  `toml:"server"`
	Cache   Cache   `toml:"cache"`
	Storage Storage `toml:"storage"`
	API     API     `toml:"api"`
}

// Server selects the OntoUML server.
type Server struct {
	CustomEnabled bool          `toml:"custom_enabled"`
	URL           string        `toml:"url"`
	Timeout       time.Duration `toml:"timeout"`
}

// Cache configures the response cache.
type Cache struct {
	Backend  string        `toml:"backend"`
	TTL      time.Duration `toml:"ttl"`
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
}

// Storage configures the export archive.
type Storage struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// API configures `ontokit serve`.
type API struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		AutomaticColoring: true,
		Server: Server{
			URL:     DefaultServerURL,
			Timeout: 60 * time.Second,
		},
		Cache: Cache{
			Backend: CacheFile,
			TTL:     24 * time.Hour,
		},
		Storage: Storage{
			Backend:  StorageNone,
			Database: "ontokit",
		},
		API: API{Addr: ":8080"},
	}
}

// Path returns the default configuration file path.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ontokit", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ontokit", "config.toml"), nil
}

// Load reads the file at path over [Default]. An empty path means [Path];
// a missing file yields the defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(string(data), cfg); err != nil {
		return nil, oerrors.Wrap(oerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML into cfg, leaving fields absent from data untouched.
// Unknown keys are rejected.
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return oerrors.New(oerrors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks backend names, durations and URLs.
func (c *Config) Validate() error {
	if c.Server.CustomEnabled {
		if err := oerrors.ValidateURL(c.Server.URL); err != nil {
			return oerrors.Wrap(oerrors.ErrCodeInvalidConfig, err, "server.url")
		}
	}
	if c.Server.Timeout < 0 {
		return oerrors.New(oerrors.ErrCodeInvalidConfig, "server.timeout must not be negative")
	}

	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return oerrors.New(oerrors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return oerrors.New(oerrors.ErrCodeInvalidConfig, "unknown cache.backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return oerrors.New(oerrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}

	switch c.Storage.Backend {
	case StorageFile, StorageNone:
	case StorageMongo:
		if c.Storage.MongoURI == "" {
			return oerrors.New(oerrors.ErrCodeInvalidConfig, "storage.mongo_uri is required for the mongo backend")
		}
		if c.Storage.Database == "" {
			return oerrors.New(oerrors.ErrCodeInvalidConfig, "storage.database is required for the mongo backend")
		}
	default:
		return oerrors.New(oerrors.ErrCodeInvalidConfig, "unknown storage.backend %q", c.Storage.Backend)
	}
	return nil
}

// ServerURL returns the custom server URL when enabled, otherwise
// [DefaultServerURL].
func (c *Config) ServerURL() string {
	if c.Server.CustomEnabled && c.Server.URL != "" {
		return c.Server.URL
	}
	return DefaultServerURL
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
