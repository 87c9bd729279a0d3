package diagram

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ontouml/ontokit/pkg/model"
)

// Options configures diagram rendering.
type Options struct {
	// IDs appends each class id to its label.
	IDs bool
}

const defaultFill = "#ffffff"

// ToDOT converts the classes and generalizations of h to Graphviz DOT.
// Classes appear in host order; edges follow the order of each class's
// superclass generalizations.
func ToDOT(h model.Host, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=\"#ffffff\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=empty];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	classes := h.Classes()
	known := make(map[string]bool, len(classes))
	for _, c := range classes {
		known[c.ID] = true
	}

	for _, c := range classes {
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID, strings.Join(fmtAttrs(h, c, opts), ", "))
	}

	buf.WriteString("\n")
	for _, c := range classes {
		for _, gen := range h.Incoming(c.ID) {
			if !known[gen.General] {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", gen.Specific, gen.General)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(c *model.Class, opts Options) string {
	var parts []string
	for _, st := range c.Stereotypes {
		parts = append(parts, "«"+st+"»")
	}
	name := c.Name
	if name == "" {
		name = c.ID
	}
	parts = append(parts, name)
	if opts.IDs && c.Name != "" {
		parts = append(parts, "("+c.ID+")")
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(h model.Host, c *model.Class, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(c, opts))}
	fill := defaultFill
	for _, s := range h.Shapes(c.ID) {
		if !s.Fillable {
			continue
		}
		if col, ok := s.Fill(); ok {
			fill = col.Hex()
		}
		break
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// render.Convert.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one whose
// width and height match the viewBox, so the diagram scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
