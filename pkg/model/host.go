package model

// Project identifies the project a model belongs to.
type Project struct {
	ID   string
	Name string
}

// Host is the read-only query surface of a model. Slices returned by a Host
// are in host order and must not be modified; the shapes they point to are
// the live shapes and may be repainted.
type Host interface {
	// Project returns the owning project.
	Project() Project
	// Element returns the element with the given id.
	Element(id string) (Element, bool)
	// Roots returns the top-level elements of the project.
	Roots() []Element
	// Children returns the elements contained in id.
	Children(id string) []Element
	// Outgoing returns generalizations in which classID is the general
	// (super) side, that is, edges looking toward its subclasses.
	Outgoing(classID string) []*Generalization
	// Incoming returns generalizations in which classID is the specific
	// (sub) side, that is, edges looking toward its superclasses.
	Incoming(classID string) []*Generalization
	// Shapes returns the diagram shapes displaying id.
	Shapes(id string) []*Shape
	// Classes returns every class of the project at all nesting levels.
	Classes() []*Class
}
