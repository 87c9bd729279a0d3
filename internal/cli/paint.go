package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	sio "github.com/ontouml/ontokit/pkg/io"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/render"
	"github.com/ontouml/ontokit/pkg/render/diagram"
)

type paintOpts struct {
	output  string
	diagram string
	class   string
	ids     bool
	force   bool
}

// paintCommand creates the paint command, which recolors class shapes from
// their stereotypes.
func (c *CLI) paintCommand() *cobra.Command {
	var opts paintOpts

	cmd := &cobra.Command{
		Use:   "paint <snapshot>",
		Short: "Repaint class shapes from their stereotypes",
		Long: `Repaint every class of a snapshot from its stereotypes and write the
snapshot back in its input format.

Sortal classes take their category color; non-sortal classes inherit the
color of their superclasses or specializations. Painting follows the
automatic_coloring setting unless --force is given.

With --diagram the painted class diagram is also rendered with Graphviz.
The file extension selects the format: .svg, .png or .pdf (the last two
need rsvg-convert).`,
		Example: `  ontokit paint university.json -o painted.json
  ontokit paint university.yaml --class c-student
  ontokit paint university.json --diagram university.svg --ids`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSnapshots,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaint(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output snapshot (default stdout; omitted when only --diagram is set)")
	cmd.Flags().StringVar(&opts.diagram, "diagram", "", "render the class diagram to this file")
	cmd.Flags().StringVar(&opts.class, "class", "", "repaint only this class")
	cmd.Flags().BoolVar(&opts.ids, "ids", false, "show class ids in the diagram")
	cmd.Flags().BoolVar(&opts.force, "force", false, "paint even when automatic coloring is disabled")

	return cmd
}

func (c *CLI) runPaint(cmd *cobra.Command, path string, opts paintOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, format, err := readSnapshot(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	engine := c.newEngine(logger, opts.force)
	if !engine.Enabled() {
		printWarning("Automatic coloring is disabled; use --force to paint anyway")
	}

	prog := newProgress(logger)
	if opts.class != "" {
		changed, err := engine.RepaintClass(g, opts.class)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Repainted %s", opts.class))
		if changed {
			printSuccess("Repainted %s", opts.class)
		} else {
			printInfo("%s already up to date", opts.class)
		}
	} else {
		sum := engine.RepaintProject(ctx, g)
		prog.done(fmt.Sprintf("Repainted %d classes", sum.Classes))
		printStats(map[string]int{
			"passes":    sum.Passes,
			"classes":   sum.Classes,
			"changed":   sum.Changed,
			"defaulted": sum.Defaulted,
		}, []string{"passes", "classes", "changed", "defaulted"}, false)
	}

	if opts.diagram != "" {
		if err := renderDiagram(cmd, g, opts); err != nil {
			return err
		}
		if opts.output == "" {
			return nil
		}
	}

	if opts.output != "" && opts.output != "-" {
		if f, err := sio.FormatFromPath(opts.output); err == nil {
			format = f
		}
	}
	var buf bytes.Buffer
	if err := sio.WriteSnapshot(&buf, g, format); err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts.output, buf.Bytes())
}

func renderDiagram(cmd *cobra.Command, g *model.Graph, opts paintOpts) error {
	logger := loggerFromContext(cmd.Context())

	dot := diagram.ToDOT(g, diagram.Options{IDs: opts.ids})
	logger.Debugf("Generated DOT for %d classes", len(g.Classes()))

	svg, err := diagram.RenderSVG(cmd.Context(), dot)
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}
	data, err := render.Convert(svg, opts.diagram)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), opts.diagram, data)
}
