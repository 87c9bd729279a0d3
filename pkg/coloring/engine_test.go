package coloring

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/ontology"
)

var (
	palette   = ontology.DefaultPalette()
	kindBase  = palette.Base(ontology.FunctionalComplex)
	kindShade = palette.Derived(ontology.FunctionalComplex)
	gray      = palette.NonSortal()
)

func newEngine(enabled bool) *Engine {
	return New(palette, Options{Enabled: enabled, Logger: log.New(io.Discard)})
}

// builder creates classes with one fillable shape each.
type builder struct {
	t *testing.T
	g *model.Graph
}

func newBuilder(t *testing.T) *builder {
	return &builder{t: t, g: model.New(model.Project{ID: "p"})}
}

func (b *builder) class(id string, stereotypes ...string) *builder {
	b.t.Helper()
	if err := b.g.Add("", &model.Class{Header: model.Header{ID: id, Stereotypes: stereotypes}}); err != nil {
		b.t.Fatal(err)
	}
	if err := b.g.AddShape(model.NewShape(id+"-shape", id, true)); err != nil {
		b.t.Fatal(err)
	}
	return b
}

// gen declares that specific specializes general.
func (b *builder) gen(specific, general string) *builder {
	b.t.Helper()
	id := specific + "->" + general
	if err := b.g.Add("", &model.Generalization{Header: model.Header{ID: id}, Specific: specific, General: general}); err != nil {
		b.t.Fatal(err)
	}
	return b
}

func fill(t *testing.T, g *model.Graph, id string) (model.Color, bool) {
	t.Helper()
	shapes := g.Shapes(id)
	if len(shapes) == 0 {
		t.Fatalf("class %s has no shapes", id)
	}
	return shapes[0].Fill()
}

func wantFill(t *testing.T, g *model.Graph, id string, want model.Color) {
	t.Helper()
	got, ok := fill(t, g, id)
	if !ok || got != want {
		t.Errorf("fill(%s) = %v (set=%v), want %v", id, got, ok, want)
	}
}

func TestKindIgnoresHierarchy(t *testing.T) {
	b := newBuilder(t).class("Root", "relatorKind").class("A", "kind").gen("A", "Root")
	e := newEngine(true)

	e.RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "A", kindBase)
}

func TestDirectStereotypes(t *testing.T) {
	tests := []struct {
		stereotype string
		want       model.Color
	}{
		{"kind", palette.Base(ontology.FunctionalComplex)},
		{"collective", palette.Base(ontology.Collective)},
		{"quantityKind", palette.Base(ontology.Quantity)},
		{"relator", palette.Base(ontology.Relator)},
		{"mode", palette.Base(ontology.Mode)},
		{"quality", palette.Base(ontology.Quality)},
		{"type", palette.Base(ontology.Type)},
		{"event", model.RGB(252, 252, 212)},
		{"enumeration", model.RGB(255, 255, 255)},
		{"datatype", model.RGB(255, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.stereotype, func(t *testing.T) {
			b := newBuilder(t).class("A", tt.stereotype)
			if _, err := newEngine(true).RepaintClass(b.g, "A"); err != nil {
				t.Fatal(err)
			}
			wantFill(t, b.g, "A", tt.want)
		})
	}
}

func TestSortalInheritsFromSuperclass(t *testing.T) {
	for _, st := range []string{"subkind", "subKind", "role", "phase", "somethingCustom"} {
		t.Run(st, func(t *testing.T) {
			b := newBuilder(t).class("Super", "relatorKind").class("Sub", st).gen("Sub", "Super")
			newEngine(true).RepaintProject(context.Background(), b.g)
			wantFill(t, b.g, "Sub", palette.Derived(ontology.Relator))
		})
	}
}

func TestNonSortalInheritsFromSubclass(t *testing.T) {
	b := newBuilder(t).
		class("Mixin", "category").
		class("Person", "kind").
		gen("Person", "Mixin")

	e := newEngine(true)
	e.RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "Mixin", kindShade)
}

func TestNonSortalDefaultsWithoutSubclasses(t *testing.T) {
	b := newBuilder(t).class("M", "roleMixin")
	newEngine(true).RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "M", gray)
}

func TestUnresolvedSortalDefaults(t *testing.T) {
	b := newBuilder(t).class("Orphan", "role")
	sum := newEngine(true).RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "Orphan", gray)
	if sum.Defaulted != 1 {
		t.Errorf("Defaulted = %d, want 1", sum.Defaulted)
	}
}

// A(kind) <- B(subkind) <- C(subkind), visited in the order A, C, B.
func TestThreeLevelChainPasses(t *testing.T) {
	b := newBuilder(t).
		class("A", "kind").
		class("C", "subkind").
		class("B", "subkind").
		gen("B", "A").
		gen("C", "B")
	e := newEngine(true)
	ctx := context.Background()

	e.Pass(ctx, b.g)
	wantFill(t, b.g, "B", kindShade)
	wantFill(t, b.g, "C", gray)

	e.Pass(ctx, b.g)
	wantFill(t, b.g, "B", kindShade)
	wantFill(t, b.g, "C", kindShade)

	if s := e.Pass(ctx, b.g); s.Changed != 0 {
		t.Errorf("third pass changed %d classes, want 0", s.Changed)
	}
	wantFill(t, b.g, "C", kindShade)
}

func TestRepaintProjectRunsTwoPasses(t *testing.T) {
	// A <- B <- C <- D visited as A, D, C, B: each pass carries the color
	// one level further down.
	b := newBuilder(t).
		class("A", "kind").
		class("D", "phase").
		class("C", "role").
		class("B", "subkind").
		gen("B", "A").
		gen("C", "B").
		gen("D", "C")
	e := newEngine(true)

	sum := e.RepaintProject(context.Background(), b.g)
	if sum.Passes != Passes || sum.Classes != 4 {
		t.Errorf("summary = %+v", sum)
	}
	wantFill(t, b.g, "B", kindShade)
	wantFill(t, b.g, "C", kindShade)
	wantFill(t, b.g, "D", gray)
	if sum.Defaulted != 1 {
		t.Errorf("Defaulted = %d, want 1", sum.Defaulted)
	}

	// The next repaint picks up the remaining level.
	e.RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "D", kindShade)
}

func TestFirstRecognizedNeighborWins(t *testing.T) {
	b := newBuilder(t).
		class("Unpainted").
		class("Event", "event").
		class("Relator", "relator").
		class("Mode", "mode").
		class("Sub", "role").
		gen("Sub", "Unpainted").
		gen("Sub", "Event").
		gen("Sub", "Relator").
		gen("Sub", "Mode")

	newEngine(true).RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "Sub", palette.Derived(ontology.Relator))
}

func TestNonFillableShapes(t *testing.T) {
	b := newBuilder(t).class("Super", "mode").class("Sub", "role").gen("Sub", "Super")

	// A label shape on the superclass carrying a recognized foreground is
	// ignored by the neighbor scan.
	label := model.NewShape("super-label", "Super", false)
	label.SetForeground(palette.Base(ontology.Quality))
	if err := b.g.AddShape(label); err != nil {
		t.Fatal(err)
	}
	line := model.NewShape("sub-line", "Sub", false)
	if err := b.g.AddShape(line); err != nil {
		t.Fatal(err)
	}

	newEngine(true).RepaintProject(context.Background(), b.g)

	want := palette.Derived(ontology.Mode)
	wantFill(t, b.g, "Sub", want)
	if got, ok := line.Foreground(); !ok || got != want {
		t.Errorf("non-fillable shape foreground = %v, %v; want %v", got, ok, want)
	}
	if _, ok := line.Fill(); ok {
		t.Error("non-fillable shape got a fill")
	}
	// Super paints its own label with its fixed color.
	if got, _ := label.Foreground(); got != palette.Base(ontology.Mode) {
		t.Errorf("super label foreground = %v, want %v", got, palette.Base(ontology.Mode))
	}
}

func TestLastStereotypeWins(t *testing.T) {
	b := newBuilder(t).class("A", "kind", "relator")
	newEngine(true).RepaintProject(context.Background(), b.g)
	wantFill(t, b.g, "A", palette.Base(ontology.Relator))
}

func TestNoStereotypesNoChange(t *testing.T) {
	b := newBuilder(t).class("Plain")
	e := newEngine(true)

	changed, err := e.RepaintClass(b.g, "Plain")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("RepaintClass reported a change")
	}
	if _, ok := fill(t, b.g, "Plain"); ok {
		t.Error("class without stereotypes was painted")
	}
}

func TestDisabledEngineIsNoop(t *testing.T) {
	b := newBuilder(t).class("A", "kind").class("B", "role").gen("B", "A")
	preset := model.RGB(1, 2, 3)
	b.g.Shapes("B")[0].SetFill(preset)

	e := newEngine(false)
	sum := e.RepaintProject(context.Background(), b.g)
	if sum != (Summary{}) {
		t.Errorf("summary = %+v, want zero", sum)
	}
	if _, ok := fill(t, b.g, "A"); ok {
		t.Error("disabled engine painted A")
	}
	wantFill(t, b.g, "B", preset)

	if changed, err := e.RepaintClass(b.g, "A"); err != nil || changed {
		t.Errorf("RepaintClass() = %v, %v", changed, err)
	}
	if changed, err := e.ApplyStereotype(b.g, "A", "subkind"); err != nil || changed {
		t.Errorf("ApplyStereotype() = %v, %v", changed, err)
	}
	if _, ok := fill(t, b.g, "A"); ok {
		t.Error("disabled engine painted A")
	}
	if el, _ := b.g.Element("A"); !el.Base().HasStereotype("subkind") || el.Base().HasStereotype("kind") {
		t.Errorf("stereotypes = %v, want [subkind]", el.Base().Stereotypes)
	}
}

func TestResolveSuperclassColor(t *testing.T) {
	b := newBuilder(t).
		class("Kind", "kind").
		class("Sub", "subkind").
		class("Role", "role").
		gen("Sub", "Kind").
		gen("Role", "Sub")
	e := newEngine(true)

	if _, ok := e.ResolveSuperclassColor(b.g, "Sub"); ok {
		t.Error("superclass has no color yet")
	}

	b.g.Shapes("Kind")[0].SetFill(kindBase)
	got, ok := e.ResolveSuperclassColor(b.g, "Sub")
	if !ok || got != kindShade {
		t.Errorf("ResolveSuperclassColor(Sub) = %v, %v; want %v", got, ok, kindShade)
	}

	// One level only: Role's superclass Sub is still unpainted.
	if _, ok := e.ResolveSuperclassColor(b.g, "Role"); ok {
		t.Error("ResolveSuperclassColor must not look past direct superclasses")
	}

	// Subclass-ward edges are never consulted.
	if _, ok := e.ResolveSuperclassColor(b.g, "Kind"); ok {
		t.Error("Kind has no superclasses")
	}
}

func TestApplyStereotype(t *testing.T) {
	t.Run("kind", func(t *testing.T) {
		b := newBuilder(t).class("A")
		changed, err := newEngine(true).ApplyStereotype(b.g, "A", "kind")
		if err != nil || !changed {
			t.Fatalf("ApplyStereotype() = %v, %v", changed, err)
		}
		wantFill(t, b.g, "A", kindBase)
		el, _ := b.g.Element("A")
		if !el.Base().HasStereotype("kind") {
			t.Error("stereotype not recorded")
		}
	})

	t.Run("role with painted superclass", func(t *testing.T) {
		b := newBuilder(t).class("Super", "qualityKind").class("A").gen("A", "Super")
		b.g.Shapes("Super")[0].SetFill(palette.Base(ontology.Quality))
		if _, err := newEngine(true).ApplyStereotype(b.g, "A", "role"); err != nil {
			t.Fatal(err)
		}
		wantFill(t, b.g, "A", palette.Derived(ontology.Quality))
	})

	t.Run("role without superclass color", func(t *testing.T) {
		b := newBuilder(t).class("A")
		changed, err := newEngine(true).ApplyStereotype(b.g, "A", "role")
		if err != nil || changed {
			t.Fatalf("ApplyStereotype() = %v, %v", changed, err)
		}
		if _, ok := fill(t, b.g, "A"); ok {
			t.Error("unresolved sortal should leave colors alone")
		}
	})

	t.Run("mixin", func(t *testing.T) {
		b := newBuilder(t).class("A").class("Sub", "kind").gen("Sub", "A")
		b.g.Shapes("Sub")[0].SetFill(kindBase)
		if _, err := newEngine(true).ApplyStereotype(b.g, "A", "mixin"); err != nil {
			t.Fatal(err)
		}
		wantFill(t, b.g, "A", gray)
	})

	t.Run("association stereotype", func(t *testing.T) {
		b := newBuilder(t).class("A")
		changed, err := newEngine(true).ApplyStereotype(b.g, "A", "material")
		if err != nil || changed {
			t.Fatalf("ApplyStereotype() = %v, %v", changed, err)
		}
	})

	t.Run("replaces existing stereotypes", func(t *testing.T) {
		b := newBuilder(t).class("Rel", "relatorKind").class("X", "role", "kind").gen("X", "Rel")
		b.g.Shapes("Rel")[0].SetFill(palette.Base(ontology.Relator))
		e := newEngine(true)

		if _, err := e.ApplyStereotype(b.g, "X", "role"); err != nil {
			t.Fatal(err)
		}
		el, _ := b.g.Element("X")
		if got := el.Base().Stereotypes; len(got) != 1 || got[0] != "role" {
			t.Errorf("stereotypes = %v, want [role]", got)
		}
		wantFill(t, b.g, "X", palette.Derived(ontology.Relator))

		e.RepaintProject(context.Background(), b.g)
		wantFill(t, b.g, "X", palette.Derived(ontology.Relator))
	})
}

func TestUnknownClass(t *testing.T) {
	b := newBuilder(t).class("A")
	_ = b.g.Add("", &model.Package{Header: model.Header{ID: "pkg"}})
	e := newEngine(true)

	if _, err := e.RepaintClass(b.g, "missing"); !errors.Is(err, errors.ErrCodeUnknownElement) {
		t.Errorf("RepaintClass(missing) error = %v", err)
	}
	if _, err := e.RepaintClass(b.g, "pkg"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RepaintClass(pkg) error = %v", err)
	}
}

func TestClassWithoutShapes(t *testing.T) {
	g := model.New(model.Project{})
	_ = g.Add("", &model.Class{Header: model.Header{ID: "A", Stereotypes: []string{"kind"}}})

	changed, err := newEngine(true).RepaintClass(g, "A")
	if err != nil || changed {
		t.Errorf("RepaintClass() = %v, %v; want false, nil", changed, err)
	}
}
