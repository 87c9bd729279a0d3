// Package render converts rendered diagrams between output formats.
//
// Diagrams are produced as SVG by the [diagram] subpackage. [ToPDF] and
// [ToPNG] convert any SVG using the external rsvg-convert tool (from
// librsvg):
//
//	dot := diagram.ToDOT(g, diagram.Options{})
//	svg, err := diagram.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [Convert] picks the conversion from an output file extension.
//
// [diagram]: github.com/ontouml/ontokit/pkg/render/diagram
package render
