package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned by [Graph.Add] and [Graph.AddShape] when the
	// element or shape id is empty.
	ErrInvalidID = errors.New("id must not be empty")

	// ErrDuplicateID is returned when an element or shape with the same id
	// already exists in the graph.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrUnknownParent is returned by [Graph.Add] when the parent id does not
	// name an existing element.
	ErrUnknownParent = errors.New("unknown parent element")

	// ErrNotContainer is returned by [Graph.Add] when the parent exists but
	// is neither a Package nor a Model.
	ErrNotContainer = errors.New("parent is not a package or model")

	// ErrUnknownGeneral is returned by [Graph.Add] when a generalization's
	// General endpoint does not exist.
	ErrUnknownGeneral = errors.New("unknown general element")

	// ErrUnknownSpecific is returned by [Graph.Add] when a generalization's
	// Specific endpoint does not exist.
	ErrUnknownSpecific = errors.New("unknown specific element")

	// ErrUnknownOwner is returned by [Graph.AddShape] when the shape's
	// element does not exist.
	ErrUnknownOwner = errors.New("unknown shape owner")

	// ErrInvalidEndpoint is returned by [Graph.Validate] when a
	// generalization connects something other than two classes.
	ErrInvalidEndpoint = errors.New("generalization endpoint is not a class")
)

// Graph is an in-memory [Host]. Elements are added parents-first; each
// element is contained in at most one parent, so containment is a tree by
// construction.
//
// The zero value is not usable - use [New].
type Graph struct {
	project  Project
	elements map[string]Element
	order    []Element           // all elements, insertion order
	roots    []Element           // top-level elements
	children map[string][]Element // container id -> children
	parent   map[string]string    // element id -> container id
	outgoing map[string][]*Generalization
	incoming map[string][]*Generalization
	shapes   map[string][]*Shape // element id -> shapes
	shapeIDs map[string]*Shape
	classes  []*Class
}

// New creates an empty graph for the given project.
func New(p Project) *Graph {
	return &Graph{
		project:  p,
		elements: make(map[string]Element),
		children: make(map[string][]Element),
		parent:   make(map[string]string),
		outgoing: make(map[string][]*Generalization),
		incoming: make(map[string][]*Generalization),
		shapes:   make(map[string][]*Shape),
		shapeIDs: make(map[string]*Shape),
	}
}

// Add inserts e as the last child of parentID, or as a top-level element
// when parentID is empty. Generalizations are also indexed by both
// endpoints, which must already exist; the order in which generalizations
// are added is their declaration order.
func (g *Graph) Add(parentID string, e Element) error {
	if e == nil || e.Base().ID == "" {
		return ErrInvalidID
	}
	id := e.Base().ID
	if _, exists := g.elements[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	if parentID != "" {
		p, ok := g.elements[parentID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownParent, parentID)
		}
		if !p.Kind().IsContainer() {
			return fmt.Errorf("%w: %s is a %s", ErrNotContainer, parentID, p.Kind())
		}
	}

	if gen, ok := e.(*Generalization); ok {
		if _, ok := g.elements[gen.General]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGeneral, gen.General)
		}
		if _, ok := g.elements[gen.Specific]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSpecific, gen.Specific)
		}
		g.outgoing[gen.General] = append(g.outgoing[gen.General], gen)
		g.incoming[gen.Specific] = append(g.incoming[gen.Specific], gen)
	}

	g.elements[id] = e
	g.order = append(g.order, e)
	if parentID == "" {
		g.roots = append(g.roots, e)
	} else {
		g.children[parentID] = append(g.children[parentID], e)
		g.parent[id] = parentID
	}
	if c, ok := e.(*Class); ok {
		g.classes = append(g.classes, c)
	}
	return nil
}

// AddShape attaches a shape to its owning element.
func (g *Graph) AddShape(s *Shape) error {
	if s == nil || s.ID == "" {
		return ErrInvalidID
	}
	if _, exists := g.shapeIDs[s.ID]; exists {
		return fmt.Errorf("%w: shape %s", ErrDuplicateID, s.ID)
	}
	if _, ok := g.elements[s.Element]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOwner, s.Element)
	}
	g.shapeIDs[s.ID] = s
	g.shapes[s.Element] = append(g.shapes[s.Element], s)
	return nil
}

// Project returns the owning project.
func (g *Graph) Project() Project { return g.project }

// Element returns the element with the given id.
func (g *Graph) Element(id string) (Element, bool) {
	e, ok := g.elements[id]
	return e, ok
}

// Roots returns the top-level elements in insertion order.
func (g *Graph) Roots() []Element { return g.roots }

// Children returns the children of a container in insertion order.
// Returns nil for leaves and unknown ids.
func (g *Graph) Children(id string) []Element { return g.children[id] }

// Parent returns the id of the container holding id, or "" for top-level
// and unknown elements.
func (g *Graph) Parent(id string) string { return g.parent[id] }

// Outgoing returns the generalizations whose General side is classID.
func (g *Graph) Outgoing(classID string) []*Generalization { return g.outgoing[classID] }

// Incoming returns the generalizations whose Specific side is classID.
func (g *Graph) Incoming(classID string) []*Generalization { return g.incoming[classID] }

// Shapes returns the shapes displaying id in insertion order.
func (g *Graph) Shapes(id string) []*Shape { return g.shapes[id] }

// Shape returns the shape with the given id.
func (g *Graph) Shape(id string) (*Shape, bool) {
	s, ok := g.shapeIDs[id]
	return s, ok
}

// Classes returns all classes in insertion order.
func (g *Graph) Classes() []*Class { return g.classes }

// Elements returns all elements in insertion order. Parents always precede
// their children.
func (g *Graph) Elements() []Element { return g.order }

// AllShapes returns every shape, grouped by owning element in element
// insertion order.
func (g *Graph) AllShapes() []*Shape {
	var out []*Shape
	for _, e := range g.order {
		out = append(out, g.shapes[e.Base().ID]...)
	}
	return out
}

// GeneralizationSets returns every generalization set in insertion order.
func (g *Graph) GeneralizationSets() []*GeneralizationSet {
	var out []*GeneralizationSet
	for _, e := range g.order {
		if gs, ok := e.(*GeneralizationSet); ok {
			out = append(out, gs)
		}
	}
	return out
}

// ElementCount returns the number of elements in the graph.
func (g *Graph) ElementCount() int { return len(g.order) }

// ShapeCount returns the number of shapes in the graph.
func (g *Graph) ShapeCount() int { return len(g.shapeIDs) }

// Validate checks that every generalization connects two classes
// (association classes count as classes). Generalization set members are
// deliberately not checked.
func (g *Graph) Validate() error {
	for _, e := range g.order {
		gen, ok := e.(*Generalization)
		if !ok {
			continue
		}
		for _, end := range []string{gen.General, gen.Specific} {
			switch g.elements[end].(type) {
			case *Class, *AssociationClass:
			default:
				return fmt.Errorf("generalization %s: %w: %s", gen.ID, ErrInvalidEndpoint, end)
			}
		}
	}
	return nil
}

var _ Host = (*Graph)(nil)
