// Package pkg provides the core libraries for ontokit, a toolkit for OntoUML
// conceptual models.
//
// # Overview
//
// ontokit works on an in-memory view of a modeling project: packages,
// classes, relations and generalizations, plus the diagram shapes that
// display them. On top of that view it offers three services:
//
//  1. Schema export: serialize a project or one of its packages to the
//     OntoUML JSON schema, including generalization set records.
//  2. Automatic coloring: paint class shapes from their stereotypes using
//     the OntoUML category palette.
//  3. Server integration: send exported models to an OntoUML server for
//     verification and transformation to gUFO, relational schemas or OBDA
//     mappings.
//
// # Architecture
//
// The typical data flow:
//
//	Project snapshot (JSON/YAML)
//	         ↓
//	    [io] package (read snapshot)
//	         ↓
//	    [model] package (host graph: elements, generalizations, shapes)
//	         ↓
//	    [coloring] package (repaint) / [schema] package (serialize)
//	         ↓
//	    [integrations/ontouml] package (verify, transform)
//	         ↓
//	    Snapshot, schema document, server response, SVG/PDF/PNG diagram
//
// # Quick Start
//
// Repaint a snapshot and export it:
//
//	import (
//	    "context"
//	    "github.com/ontouml/ontokit/pkg/coloring"
//	    sio "github.com/ontouml/ontokit/pkg/io"
//	    "github.com/ontouml/ontokit/pkg/ontology"
//	    "github.com/ontouml/ontokit/pkg/schema"
//	)
//
//	// 1. Load the project
//	g, _ := sio.ReadSnapshotFile("university.json")
//
//	// 2. Paint classes from their stereotypes
//	engine := coloring.New(ontology.DefaultPalette(), coloring.Options{Enabled: true})
//	engine.RepaintProject(context.Background(), g)
//
//	// 3. Serialize to the OntoUML schema
//	data, _ := schema.NewSerializer(nil).Export(context.Background(), g, schema.ExportOptions{})
//
// # Main Packages
//
// ## Domain
//
// [model] - Host-side element graph. Elements are added parents-first, so
// containment is a tree; generalizations are indexed by both endpoints.
//
// [ontology] - OntoUML stereotypes, ontological categories and the color
// palette.
//
// [schema] - Serializer producing OntoUML schema documents with typed
// property assignments.
//
// [coloring] - Two-pass color inference engine.
//
// ## Infrastructure
//
// [cache] - Response cache backends (file, Redis, null) and key derivation.
//
// [storage] - Export archive backends (file, MongoDB, null).
//
// [config] - TOML configuration.
//
// [observability] - Hooks for exports, coloring, caching and HTTP calls,
// with a Prometheus implementation in observability/prom.
//
// ## External Integrations
//
// [integrations] - Shared HTTP client with caching and request ids.
//
// [integrations/ontouml] - OntoUML server client.
//
// ## Outer Surfaces
//
// [api] - HTTP API exposing export, paint and verify.
//
// [render] - Diagram output: Graphviz rendering and SVG conversion.
//
// [io] - Project snapshot files.
//
// # Error Handling
//
// Errors carry codes from the [errors] package; see [errors.Code].
package pkg
