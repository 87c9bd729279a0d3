package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/integrations/ontouml"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/schema"
)

// remoteOpts are the flags shared by every command that calls the OntoUML
// server.
type remoteOpts struct {
	root    string
	output  string
	server  string
	noCache bool
	refresh bool
}

func (o *remoteOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.root, "root", "", "send only this package or model")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&o.server, "server", "", "OntoUML server URL (overrides config)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached responses and store fresh ones")
}

// verifyCommand creates the verify command.
func (c *CLI) verifyCommand() *cobra.Command {
	var opts remoteOpts

	cmd := &cobra.Command{
		Use:   "verify <snapshot>",
		Short: "Verify a model with the OntoUML server",
		Long: `Serialize a snapshot and send it to the OntoUML server for verification.
The server's response is written as-is.

When the server cannot be reached or fails internally you are asked whether
to send the same request again.`,
		Example: `  ontokit verify university.json
  ontokit verify university.json --root pkg-people --server http://localhost:3000`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, args[0], opts, "Verifying model", func(ctx context.Context, client *ontouml.Client, doc *schema.Document) ([]byte, error) {
				return client.Verify(ctx, doc)
			})
		},
	}
	opts.register(cmd)
	return cmd
}

// transformCommand creates the transform command and its targets.
func (c *CLI) transformCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a model with the OntoUML server",
		Long: `Send a model to the OntoUML server for transformation to gUFO, a
relational schema or an OBDA mapping. Successful responses are cached by
request body.`,
	}

	cmd.AddCommand(c.transformGUFOCommand())
	cmd.AddCommand(c.transformDBCommand())
	cmd.AddCommand(c.transformOBDACommand())

	return cmd
}

func (c *CLI) transformGUFOCommand() *cobra.Command {
	var opts remoteOpts
	gufo := ontouml.DefaultGUFOOptions()

	cmd := &cobra.Command{
		Use:               "gufo <snapshot>",
		Short:             "Transform a model to a gUFO ontology",
		Example:           `  ontokit transform gufo university.json --base-iri https://example.org/uni -o uni.ttl`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, args[0], opts, "Transforming to gUFO", func(ctx context.Context, client *ontouml.Client, doc *schema.Document) ([]byte, error) {
				return client.TransformGUFO(ctx, doc, gufo)
			})
		},
	}
	opts.register(cmd)

	f := cmd.Flags()
	f.StringVar(&gufo.BaseIRI, "base-iri", gufo.BaseIRI, "base IRI of the ontology")
	f.StringVar(&gufo.Format, "format", gufo.Format, "serialization format (Turtle, N-Triples, ...)")
	f.StringVar(&gufo.URIFormatBy, "uri-format-by", gufo.URIFormatBy, "build URIs from element name or id")
	f.BoolVar(&gufo.CreateInverses, "create-inverses", gufo.CreateInverses, "create inverse object properties")
	f.BoolVar(&gufo.CreateObjectProperty, "create-object-property", gufo.CreateObjectProperty, "create object properties for relations")
	f.BoolVar(&gufo.PreAnalysis, "pre-analysis", gufo.PreAnalysis, "run the server's pre-analysis")
	f.BoolVar(&gufo.PrefixPackages, "prefix-packages", gufo.PrefixPackages, "prefix URIs with package names")
	f.StringToStringVar(&gufo.CustomElementMapping, "element-map", nil, "custom URI per element id (id=uri)")
	f.StringToStringVar(&gufo.CustomPackageMapping, "package-map", nil, "custom URI per package id (id=uri)")

	return cmd
}

func (c *CLI) transformDBCommand() *cobra.Command {
	var opts remoteOpts
	db := ontouml.DefaultDBOptions()

	cmd := &cobra.Command{
		Use:               "db <snapshot>",
		Short:             "Transform a model to a relational schema",
		Example:           `  ontokit transform db university.json --target-dbms POSTGRE -o uni.sql`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, args[0], opts, "Transforming to a relational schema", func(ctx context.Context, client *ontouml.Client, doc *schema.Document) ([]byte, error) {
				return client.TransformDB(ctx, doc, db)
			})
		},
	}
	opts.register(cmd)
	registerDBFlags(cmd, &db)

	return cmd
}

func (c *CLI) transformOBDACommand() *cobra.Command {
	var opts remoteOpts
	obda := ontouml.DefaultOBDAOptions()

	cmd := &cobra.Command{
		Use:               "obda <snapshot>",
		Short:             "Transform a model to an OBDA mapping",
		Example:           `  ontokit transform obda university.json --base-iri https://example.org/uni --generate-schema`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemote(cmd, args[0], opts, "Transforming to OBDA", func(ctx context.Context, client *ontouml.Client, doc *schema.Document) ([]byte, error) {
				return client.TransformOBDA(ctx, doc, obda)
			})
		},
	}
	opts.register(cmd)
	registerDBFlags(cmd, &obda.DBOptions)

	f := cmd.Flags()
	f.StringVar(&obda.BaseIRI, "base-iri", obda.BaseIRI, "base IRI of the mapped ontology")
	f.BoolVar(&obda.IsGenerateSchema, "generate-schema", obda.IsGenerateSchema, "also generate the relational schema")
	f.BoolVar(&obda.IsGenerateConnection, "generate-connection", obda.IsGenerateConnection, "include connection settings")
	f.StringVar(&obda.HostName, "host", obda.HostName, "database host for the connection")
	f.StringVar(&obda.DatabaseName, "database", obda.DatabaseName, "database name for the connection")
	f.StringVar(&obda.UserConnection, "user", obda.UserConnection, "database user for the connection")
	f.StringVar(&obda.PasswordConnection, "password", obda.PasswordConnection, "database password for the connection")

	return cmd
}

func registerDBFlags(cmd *cobra.Command, db *ontouml.DBOptions) {
	f := cmd.Flags()
	f.StringVar(&db.MappingStrategy, "mapping-strategy", db.MappingStrategy, "table mapping strategy")
	f.StringVar(&db.TargetDBMS, "target-dbms", db.TargetDBMS, "target database system")
	f.BoolVar(&db.IsStandardizeNames, "standardize-names", db.IsStandardizeNames, "standardize table and column names")
}

// remoteCall sends doc to the server.
type remoteCall func(ctx context.Context, client *ontouml.Client, doc *schema.Document) ([]byte, error)

func (c *CLI) runRemote(cmd *cobra.Command, path string, opts remoteOpts, message string, call remoteCall) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, _, err := readSnapshot(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	doc, err := serialize(logger, g, opts.root)
	if err != nil {
		return err
	}

	client, closeCache, err := c.newClient(ctx, opts.server, opts.noCache)
	if err != nil {
		return err
	}
	defer closeCache()
	client.WithRefresh(opts.refresh)
	logger.Debugf("Server: %s", client.BaseURL())

	data, err := callServer(ctx, client, message, func(ctx context.Context) ([]byte, error) {
		return call(ctx, client, doc)
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts.output, data)
}

// serialize exports rootID, or the whole project when rootID is empty.
func serialize(logger *log.Logger, g *model.Graph, rootID string) (*schema.Document, error) {
	s := schema.NewSerializer(logger)
	if rootID == "" {
		return s.SerializeProject(g)
	}
	if err := oerrors.ValidateElementID(rootID); err != nil {
		return nil, err
	}
	doc, err := s.Serialize(g, rootID)
	if err == nil {
		logger.Debugf("Serialized %d documents under %s", doc.Count(), rootID)
	}
	return doc, err
}

// callServer runs fn behind a spinner. When the server fails in a way that
// may be retried, the spinner is paused and the user is asked whether to
// send the request again.
func callServer(ctx context.Context, client *ontouml.Client, message string, fn func(context.Context) ([]byte, error)) ([]byte, error) {
	sp := newSpinnerWithContext(ctx, message)
	sp.Start()

	client.WithConfirm(func(ctx context.Context, err error) bool {
		sp.Stop()
		printError("%s", oerrors.UserMessage(err))
		if !confirmRetry(ctx, "Send the request again?") {
			return false
		}
		sp = newSpinnerWithContext(ctx, message)
		sp.Start()
		return true
	})

	data, err := fn(ctx)
	sp.Stop()
	if err != nil {
		return nil, err
	}
	printSuccess("%s: done", message)
	return data, nil
}
