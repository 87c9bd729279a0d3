package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontouml/ontokit/pkg/cache"
	oerrors "github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/schema"
	"github.com/ontouml/ontokit/pkg/storage"
)

type exportOpts struct {
	root    string
	output  string
	sets    bool
	archive bool
}

// exportCommand creates the export command, which serializes a snapshot to
// an OntoUML schema document.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <snapshot>",
		Short: "Serialize a snapshot to an OntoUML schema document",
		Long: `Serialize a project snapshot (JSON or YAML, "-" for JSON on stdin) to the
OntoUML schema.

Without --root the whole project is exported under a synthesized Model
document. With --sets the output is a bundle of the model and every
generalization set record.`,
		Example: `  ontokit export university.json
  ontokit export university.yaml --root pkg-people -o people.json
  ontokit export university.json --sets --archive`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "export only this element and its contents")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.sets, "sets", false, "include generalization set records")
	cmd.Flags().BoolVar(&opts.archive, "archive", false, "record the document in the configured export store")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, path string, opts exportOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.root != "" {
		if err := oerrors.ValidateElementID(opts.root); err != nil {
			return err
		}
	}

	g, _, err := readSnapshot(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d elements, %d shapes", g.ElementCount(), g.ShapeCount())

	prog := newProgress(logger)
	data, err := schema.NewSerializer(logger).Export(ctx, g, schema.ExportOptions{
		RootID:             opts.root,
		GeneralizationSets: opts.sets,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %s", g.Project().ID))

	if opts.archive {
		if err := c.archive(cmd, storage.Record{
			ProjectID: g.Project().ID,
			RootID:    opts.root,
			Hash:      cache.Hash(data),
			Document:  json.RawMessage(data),
		}); err != nil {
			return err
		}
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, append(data, '\n'))
}

// archive saves r in the configured store.
func (c *CLI) archive(cmd *cobra.Command, r storage.Record) error {
	store, err := c.newStore(cmd.Context())
	if err != nil {
		return err
	}
	if store == nil {
		printWarning("No export store configured; skipping archive")
		return nil
	}
	defer store.Close()

	id, err := store.Save(cmd.Context(), r)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrCodeInternal, err, "archive export")
	}
	printSuccess("Archived export %s", id)
	return nil
}
