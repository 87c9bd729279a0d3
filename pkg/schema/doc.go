// Package schema serializes a model into the canonical OntoUML schema
// document consumed by the OntoUML server.
//
// # Document Shape
//
//	{
//	  "type": "Package",
//	  "id": "pkg-1",
//	  "name": "People",
//	  "propertyAssignments": {"version": 2, "owner": {"type": "Class", "id": "c9"}},
//	  "elements": [
//	    {"type": "Class", "id": "c1", "name": "Person", "stereotypes": ["kind"]}
//	  ]
//	}
//
// Only packages, models and classes are nested under their container.
// Generalizations, generalization sets and associations are not part of the
// containment walk; generalization sets are exported separately with
// [Serializer.SerializeGeneralizationSet].
//
// # Tagged Values
//
// Each tagged value is coerced according to its declared kind: references
// become {type, id} objects naming the target element, integers and floats
// become JSON numbers, booleans become JSON booleans and everything else is
// emitted as the raw text. A value that cannot be coerced fails the whole
// call with an error coded [errors.ErrCodeMalformedTaggedValue].
//
// Serialization is read-only over the host and deterministic: serializing an
// unchanged model twice yields byte-identical output.
//
// [errors.ErrCodeMalformedTaggedValue]: github.com/ontouml/ontokit/pkg/errors.ErrCodeMalformedTaggedValue
package schema
