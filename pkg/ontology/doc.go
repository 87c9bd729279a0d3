// Package ontology holds the OntoUML category table: the stereotype names a
// class may carry, the ontological category each one denotes and the colors
// used to display those categories on a diagram.
//
// # Shades
//
// Every sortal category has two shades. The base shade is applied to
// kind-level stereotypes (kind, collective, relator, ...). The derived shade
// is applied to classes whose category is inherited through a generalization
// hierarchy (subkind, role, phase and the non-sortals). The type category has
// a single shade, and non-sortals are painted with one neutral gray when no
// category can be inferred.
//
// # Usage
//
//	p := ontology.DefaultPalette()
//	c, ok := p.Direct(ontology.Kind)   // base functional-complex color
//	d, ok := p.DerivedFor(c)           // derived functional-complex color
//
// A Palette is an immutable value; pass it explicitly to the components that
// need it.
package ontology
