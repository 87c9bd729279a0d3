// Package io reads and writes project snapshots.
//
// A snapshot is the serialized form of a host model: the project, every
// element with its tagged values, and every diagram shape with its colors.
// The modeling editor owns the live model; ontokit works on snapshots of it.
// Snapshots are JSON or YAML with the same field names:
//
//	{
//	  "project": {"id": "p1", "name": "University"},
//	  "elements": [
//	    {"id": "m", "kind": "Model", "name": "University"},
//	    {"id": "person", "kind": "Class", "parent": "m", "name": "Person", "stereotypes": ["kind"]},
//	    {"id": "student", "kind": "Class", "parent": "m", "name": "Student", "stereotypes": ["role"],
//	     "taggedValues": [{"name": "since", "kind": "integer", "value": "2001"}]},
//	    {"id": "g1", "kind": "Generalization", "parent": "m", "general": "person", "specific": "student"}
//	  ],
//	  "shapes": [
//	    {"id": "s1", "element": "person", "fillable": true, "fill": "#ffdada"},
//	    {"id": "s2", "element": "student", "fillable": true}
//	  ]
//	}
//
// Elements are listed parents first, in host order; generalization
// endpoints must precede the generalization. Element kinds are the schema
// type names (Package, Model, Class, Generalization, GeneralizationSet,
// Association, AssociationClass). Tagged value kinds are text, reference,
// integer, float and boolean; a reference names its target in "ref".
//
// Use [ReadSnapshotFile] to load a file (the format follows the extension),
// [ReadSnapshot] for any reader, and [WriteSnapshot] to save a possibly
// repainted graph. Writing then reading a graph yields an identical graph.
package io
