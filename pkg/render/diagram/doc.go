// Package diagram draws the class hierarchy of a model as a Graphviz
// diagram, using the colors currently painted on the diagram shapes.
//
// Every class becomes a box filled with the fill of its first fillable
// shape (white when it has none) and labeled with its stereotypes in
// guillemets above its name. Generalizations become edges from subclass to
// superclass with hollow arrowheads, as in UML.
//
//	dot := diagram.ToDOT(g, diagram.Options{})
//	svg, err := diagram.RenderSVG(ctx, dot)
package diagram
