package model

import "fmt"

// Kind identifies the variant of a model element. Its string form is the
// element's type name in the export schema.
type Kind int

const (
	KindPackage Kind = iota
	KindModel
	KindClass
	KindGeneralization
	KindGeneralizationSet
	KindAssociation
	KindAssociationClass
)

var kindNames = [...]string{
	KindPackage:           "Package",
	KindModel:             "Model",
	KindClass:             "Class",
	KindGeneralization:    "Generalization",
	KindGeneralizationSet: "GeneralizationSet",
	KindAssociation:       "Association",
	KindAssociationClass:  "AssociationClass",
}

// String returns the schema type name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsContainer reports whether elements of this kind own children.
func (k Kind) IsContainer() bool { return k == KindPackage || k == KindModel }

// ParseKind returns the kind whose schema type name is s.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Header holds the attributes shared by every model element.
type Header struct {
	ID           string        // Host-assigned, stable, non-empty
	Name         string        // Optional
	Description  string        // Optional
	Stereotypes  []string      // In host enumeration order
	TaggedValues []TaggedValue // In host order
}

// Base returns the element header.
func (h *Header) Base() *Header { return h }

// HasStereotype reports whether s is among the element's stereotypes.
func (h *Header) HasStereotype(s string) bool {
	for _, st := range h.Stereotypes {
		if st == s {
			return true
		}
	}
	return false
}

// Element is a model element. The set of implementations is closed.
type Element interface {
	Kind() Kind
	Base() *Header
	sealed()
}

// Package is a container of model elements.
type Package struct{ Header }

// Model is a container of model elements, typically the root of a project.
type Model struct{ Header }

// Class is a modeled type.
type Class struct{ Header }

// Generalization is a specialization edge: Specific is the subclass and
// General the superclass.
type Generalization struct {
	Header
	General  string
	Specific string
}

// GeneralizationSet groups generalizations that share a superclass.
// Generalizations lists member ids in order; references are not validated.
type GeneralizationSet struct {
	Header
	URL             string
	URI             string
	IsDisjoint      bool
	IsComplete      bool
	Generalizations []string
}

// Association relates two classes.
type Association struct {
	Header
	Source string
	Target string
}

// AssociationClass is an association that is also a class.
type AssociationClass struct {
	Header
	Source string
	Target string
}

func (*Package) Kind() Kind           { return KindPackage }
func (*Model) Kind() Kind             { return KindModel }
func (*Class) Kind() Kind             { return KindClass }
func (*Generalization) Kind() Kind    { return KindGeneralization }
func (*GeneralizationSet) Kind() Kind { return KindGeneralizationSet }
func (*Association) Kind() Kind       { return KindAssociation }
func (*AssociationClass) Kind() Kind  { return KindAssociationClass }

func (*Package) sealed()           {}
func (*Model) sealed()             {}
func (*Class) sealed()             {}
func (*Generalization) sealed()    {}
func (*GeneralizationSet) sealed() {}
func (*Association) sealed()       {}
func (*AssociationClass) sealed()  {}

// ValueKind is the declared type of a tagged value.
type ValueKind int

const (
	// ValueText is the default kind; the raw value is used as-is.
	ValueText ValueKind = iota
	ValueReference
	ValueInteger
	ValueFloat
	ValueBoolean
)

var valueKindNames = [...]string{
	ValueText:      "text",
	ValueReference: "reference",
	ValueInteger:   "integer",
	ValueFloat:     "float",
	ValueBoolean:   "boolean",
}

func (k ValueKind) String() string {
	if k >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// ParseValueKind maps a kind name to a ValueKind. The empty string maps to
// ValueText. Unknown names also map to ValueText, as the editor does for any
// tag type it has no coercion for, but report ok == false.
func ParseValueKind(s string) (k ValueKind, ok bool) {
	if s == "" {
		return ValueText, true
	}
	for i, name := range valueKindNames {
		if name == s {
			return ValueKind(i), true
		}
	}
	return ValueText, false
}

// TaggedValue is a typed key/value annotation on an element. Value holds the
// raw text as stored by the editor; Ref holds the target element id when
// Kind is ValueReference.
type TaggedValue struct {
	Name  string
	Kind  ValueKind
	Value string
	Ref   string
}
