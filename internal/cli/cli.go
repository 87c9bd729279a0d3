// Package cli implements the ontokit command-line interface.
//
// The commands work on project snapshots (see pkg/io): they serialize them
// to the OntoUML schema, repaint their diagrams from stereotypes, and send
// them to an OntoUML server for verification or transformation. The CLI is
// built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - export: Serialize a snapshot to a schema document
//   - paint: Repaint classes from their stereotypes, optionally to SVG
//   - verify: Ask the OntoUML server to verify a model
//   - transform: Transform a model to gUFO, a relational schema or OBDA
//   - palette: Show the category color table
//   - serve: Run the HTTP API
//   - cache: Manage the response cache
//
// # Configuration
//
// Settings are read from ~/.config/ontokit/config.toml (see pkg/config) or
// the file given with --config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed to commands through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ontouml/ontokit/pkg/buildinfo"
	"github.com/ontouml/ontokit/pkg/cache"
	"github.com/ontouml/ontokit/pkg/coloring"
	"github.com/ontouml/ontokit/pkg/config"
	"github.com/ontouml/ontokit/pkg/integrations/ontouml"
	sio "github.com/ontouml/ontokit/pkg/io"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/ontology"
	"github.com/ontouml/ontokit/pkg/storage"
)

// appName is the application name used for directories and display.
const appName = "ontokit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ontokit exports, colors and verifies OntoUML models",
		Long:         `ontokit works on snapshots of OntoUML models: it serializes them to the OntoUML schema, paints class diagrams from stereotypes, and talks to the OntoUML server for verification and transformation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/ontokit/config.toml)")

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.paintCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache opens the configured response cache for OntoUML server calls.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	backend, err := c.openCache(ctx)
	if err != nil {
		return nil, err
	}
	return cache.Instrumented(backend, "transform"), nil
}

// openCache opens the configured cache backend.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	switch c.cfg.Cache.Backend {
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, c.cfg.Cache.RedisURL, appName+":")
		if err != nil {
			return nil, err
		}
		return rc, nil
	case config.CacheNone:
		return cache.NewNullCache(), nil
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("No cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	}
}

// cacheDir returns the file cache directory (~/.cache/ontokit unless
// configured).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// newStore opens the configured export archive.
func (c *CLI) newStore(ctx context.Context) (storage.Store, error) {
	switch c.cfg.Storage.Backend {
	case config.StorageFile:
		s, err := storage.NewFileStore(c.cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMongo:
		s, err := storage.NewMongoStore(ctx, c.cfg.Storage.MongoURI, c.cfg.Storage.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, nil
	}
}

// newEngine returns a coloring engine honoring automatic_coloring, or an
// enabled one when force is set.
func (c *CLI) newEngine(logger *log.Logger, force bool) *coloring.Engine {
	return coloring.New(ontology.DefaultPalette(), coloring.Options{
		Enabled: force || c.cfg.AutomaticColoring,
		Logger:  logger,
	})
}

// newClient returns a client for the configured OntoUML server. server
// overrides the configured URL when not empty.
func (c *CLI) newClient(ctx context.Context, server string, noCache bool) (*ontouml.Client, func(), error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, nil, err
	}
	url := c.cfg.ServerURL()
	if server != "" {
		url = server
	}
	client := ontouml.NewClient(url, backend, c.cfg.Cache.TTL).
		WithTimeout(c.cfg.Server.Timeout).
		WithLogger(c.Logger)
	return client, func() { backend.Close() }, nil
}

// readSnapshot loads the snapshot at path. "-" reads JSON from stdin.
func readSnapshot(stdin io.Reader, path string) (*model.Graph, sio.Format, error) {
	if path == "-" {
		g, err := sio.ReadSnapshot(stdin, sio.FormatJSON)
		return g, sio.FormatJSON, err
	}
	format, err := sio.FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	g, err := sio.ReadSnapshotFile(path)
	if err != nil {
		return nil, "", err
	}
	return g, format, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
