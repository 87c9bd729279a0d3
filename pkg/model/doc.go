// Package model provides the in-memory representation of a user-authored
// conceptual model as seen by ontokit: model elements, their containment
// tree, generalization edges, tagged values and the diagram shapes that
// display them.
//
// # Overview
//
// The diagram editor that owns the model is external to ontokit. Everything
// that reads the model (the schema serializer, the color engine, the diagram
// renderer) goes through the read-only [Host] interface, so the same code
// runs against a live editor adapter or against the [Graph] built from a
// project snapshot.
//
// # Element Variants
//
// Model elements form a closed set of variants behind the [Element]
// interface: [Package], [Model], [Class], [Generalization],
// [GeneralizationSet], [Association] and [AssociationClass]. The interface is
// sealed; consumers dispatch with a type switch:
//
//	switch e := el.(type) {
//	case *model.Package, *model.Model:
//	    // container
//	case *model.Class:
//	    // leaf
//	}
//
// Every variant embeds a [Header] carrying the id, name, description,
// stereotypes and tagged values.
//
// # Ordering
//
// Order is significant everywhere: containment children, tagged values,
// generalizations and shapes are all returned in insertion order. The color
// engine's first-match neighbor rule scans generalizations in declaration
// order, and the serializer reproduces child order exactly.
//
// # Shapes and Colors
//
// A [Shape] belongs to exactly one element. Fillable shapes carry a fill
// color; other shapes only carry a foreground color. Shapes are the only
// mutable part of the model from ontokit's point of view.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Callers that share a Graph between
// goroutines must serialize mutations against reads.
package model
