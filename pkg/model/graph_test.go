package model

import (
	"errors"
	"testing"
)

func class(id string, stereotypes ...string) *Class {
	return &Class{Header: Header{ID: id, Name: id, Stereotypes: stereotypes}}
}

func gen(id, specific, general string) *Generalization {
	return &Generalization{Header: Header{ID: id}, Specific: specific, General: general}
}

func TestGraphAdd(t *testing.T) {
	g := New(Project{ID: "p", Name: "Project"})

	if err := g.Add("", &Package{Header: Header{ID: "pkg"}}); err != nil {
		t.Fatalf("Add(pkg) error: %v", err)
	}
	if err := g.Add("pkg", class("Person", "kind")); err != nil {
		t.Fatalf("Add(Person) error: %v", err)
	}
	if err := g.Add("pkg", class("Student", "role")); err != nil {
		t.Fatalf("Add(Student) error: %v", err)
	}
	if err := g.Add("pkg", gen("g1", "Student", "Person")); err != nil {
		t.Fatalf("Add(g1) error: %v", err)
	}

	if g.ElementCount() != 4 {
		t.Errorf("ElementCount() = %d, want 4", g.ElementCount())
	}
	if len(g.Roots()) != 1 {
		t.Errorf("Roots() = %d elements, want 1", len(g.Roots()))
	}

	children := g.Children("pkg")
	want := []string{"Person", "Student", "g1"}
	if len(children) != len(want) {
		t.Fatalf("Children(pkg) = %d elements, want %d", len(children), len(want))
	}
	for i, c := range children {
		if c.Base().ID != want[i] {
			t.Errorf("Children(pkg)[%d] = %s, want %s", i, c.Base().ID, want[i])
		}
	}

	if got := g.Parent("Student"); got != "pkg" {
		t.Errorf("Parent(Student) = %q, want pkg", got)
	}
	if got := len(g.Outgoing("Person")); got != 1 {
		t.Errorf("Outgoing(Person) = %d, want 1", got)
	}
	if got := len(g.Incoming("Student")); got != 1 {
		t.Errorf("Incoming(Student) = %d, want 1", got)
	}
	if got := len(g.Incoming("Person")); got != 0 {
		t.Errorf("Incoming(Person) = %d, want 0", got)
	}
	if got := len(g.Classes()); got != 2 {
		t.Errorf("Classes() = %d, want 2", got)
	}
}

func TestGraphAddErrors(t *testing.T) {
	newGraph := func() *Graph {
		g := New(Project{})
		_ = g.Add("", &Package{Header: Header{ID: "pkg"}})
		_ = g.Add("pkg", class("A"))
		return g
	}

	tests := []struct {
		name    string
		parent  string
		elem    Element
		wantErr error
	}{
		{"empty id", "", class(""), ErrInvalidID},
		{"nil element", "", nil, ErrInvalidID},
		{"duplicate", "pkg", class("A"), ErrDuplicateID},
		{"unknown parent", "missing", class("B"), ErrUnknownParent},
		{"class parent", "A", class("B"), ErrNotContainer},
		{"unknown general", "pkg", gen("g", "A", "missing"), ErrUnknownGeneral},
		{"unknown specific", "pkg", gen("g", "missing", "A"), ErrUnknownSpecific},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newGraph().Add(tt.parent, tt.elem)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGraphAddShape(t *testing.T) {
	g := New(Project{})
	_ = g.Add("", class("A"))

	if err := g.AddShape(NewShape("s1", "A", true)); err != nil {
		t.Fatalf("AddShape(s1) error: %v", err)
	}
	if err := g.AddShape(NewShape("s2", "A", false)); err != nil {
		t.Fatalf("AddShape(s2) error: %v", err)
	}

	if err := g.AddShape(NewShape("s1", "A", true)); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate shape error = %v, want ErrDuplicateID", err)
	}
	if err := g.AddShape(NewShape("s3", "missing", true)); !errors.Is(err, ErrUnknownOwner) {
		t.Errorf("unknown owner error = %v, want ErrUnknownOwner", err)
	}
	if err := g.AddShape(NewShape("", "A", true)); !errors.Is(err, ErrInvalidID) {
		t.Errorf("empty shape id error = %v, want ErrInvalidID", err)
	}

	shapes := g.Shapes("A")
	if len(shapes) != 2 || shapes[0].ID != "s1" || shapes[1].ID != "s2" {
		t.Errorf("Shapes(A) = %v, want [s1 s2]", shapes)
	}
	if g.ShapeCount() != 2 {
		t.Errorf("ShapeCount() = %d, want 2", g.ShapeCount())
	}
	if s, ok := g.Shape("s2"); !ok || s.Fillable {
		t.Errorf("Shape(s2) = %v, %v", s, ok)
	}
}

func TestGraphValidate(t *testing.T) {
	t.Run("classes only", func(t *testing.T) {
		g := New(Project{})
		_ = g.Add("", class("A"))
		_ = g.Add("", class("B"))
		_ = g.Add("", gen("g", "B", "A"))
		if err := g.Validate(); err != nil {
			t.Errorf("Validate() error: %v", err)
		}
	})

	t.Run("package endpoint", func(t *testing.T) {
		g := New(Project{})
		_ = g.Add("", &Package{Header: Header{ID: "pkg"}})
		_ = g.Add("", class("B"))
		_ = g.Add("", gen("g", "B", "pkg"))
		if err := g.Validate(); !errors.Is(err, ErrInvalidEndpoint) {
			t.Errorf("Validate() error = %v, want ErrInvalidEndpoint", err)
		}
	})

	t.Run("dangling set members pass", func(t *testing.T) {
		g := New(Project{})
		_ = g.Add("", &GeneralizationSet{Header: Header{ID: "gs"}, Generalizations: []string{"nope"}})
		if err := g.Validate(); err != nil {
			t.Errorf("Validate() error: %v", err)
		}
		if len(g.GeneralizationSets()) != 1 {
			t.Errorf("GeneralizationSets() = %d, want 1", len(g.GeneralizationSets()))
		}
	})
}

func TestShapePaint(t *testing.T) {
	red := RGB(255, 0, 0)

	box := NewShape("box", "A", true)
	if _, ok := box.Fill(); ok {
		t.Error("new shape should have no fill")
	}
	box.Paint(red)
	if c, ok := box.Fill(); !ok || c != red {
		t.Errorf("Fill() = %v, %v; want %v, true", c, ok, red)
	}
	if _, ok := box.Foreground(); ok {
		t.Error("painting a fillable shape should not touch the foreground")
	}

	line := NewShape("line", "A", false)
	line.Paint(red)
	if c, ok := line.Foreground(); !ok || c != red {
		t.Errorf("Foreground() = %v, %v; want %v, true", c, ok, red)
	}
	if _, ok := line.Fill(); ok {
		t.Error("painting a non-fillable shape should not set a fill")
	}
}

func TestKind(t *testing.T) {
	for k := KindPackage; k <= KindAssociationClass; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("Diagram"); ok {
		t.Error("ParseKind(Diagram) should fail")
	}
	if !KindModel.IsContainer() || KindClass.IsContainer() {
		t.Error("IsContainer() mismatch")
	}
}

func TestParseValueKind(t *testing.T) {
	tests := []struct {
		in     string
		want   ValueKind
		wantOK bool
	}{
		{"reference", ValueReference, true},
		{"integer", ValueInteger, true},
		{"float", ValueFloat, true},
		{"boolean", ValueBoolean, true},
		{"text", ValueText, true},
		{"", ValueText, true},
		{"html", ValueText, false},
		{"Integer", ValueText, false},
	}
	for _, tt := range tests {
		got, ok := ParseValueKind(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseValueKind(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
