package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ontouml/ontokit/pkg/api"
	"github.com/ontouml/ontokit/pkg/cache"
	"github.com/ontouml/ontokit/pkg/observability/prom"
)

type serveOpts struct {
	addr      string
	noMetrics bool
	noVerify  bool
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

Routes:
  GET  /healthz            liveness probe
  GET  /metrics            Prometheus metrics
  POST /v1/export          snapshot to schema document
  POST /v1/paint           repaint a snapshot
  POST /v1/verify          forward a model to the OntoUML server
  GET  /v1/exports[/{id}]  archived exports (when a store is configured)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "do not expose /metrics")
	cmd.Flags().BoolVar(&opts.noVerify, "no-verify", false, "do not expose /v1/verify")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := api.Config{
		Logger:          logger,
		DisableColoring: !c.cfg.AutomaticColoring,
		CacheTTL:        c.cfg.Cache.TTL,
		Keyer:           cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api"),
	}

	if !opts.noMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err := prom.New(reg)
		if err != nil {
			return err
		}
		m.Install()
		cfg.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	backend, err := c.openCache(ctx)
	if err != nil {
		return err
	}
	defer backend.Close()
	cfg.Cache = backend

	store, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		cfg.Store = store
	}

	if !opts.noVerify {
		verifier, closeCache, err := c.newClient(ctx, "", false)
		if err != nil {
			return err
		}
		defer closeCache()
		cfg.Verifier = verifier
		logger.Debug("Forwarding verification", "server", verifier.BaseURL())
	}

	addr := c.cfg.API.Addr
	if opts.addr != "" {
		addr = opts.addr
	}
	return api.New(cfg).ListenAndServe(ctx, addr)
}
