package ontology

import (
	"testing"

	"github.com/ontouml/ontokit/pkg/model"
)

func TestPaletteDirect(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		stereotype string
		want       model.Color
		ok         bool
	}{
		{Kind, model.RGB(255, 253, 146), true},
		{CollectiveKind, model.RGB(255, 253, 146), true},
		{QuantityStereotype, model.RGB(255, 253, 146), true},
		{RelatorKind, model.RGB(246, 194, 137), true},
		{RelatorStereotype, model.RGB(246, 194, 137), true},
		{ModeKind, model.RGB(176, 251, 162), true},
		{QualityStereotype, model.RGB(156, 160, 248), true},
		{TypeStereotype, model.RGB(211, 211, 252), true},
		{Event, model.RGB(252, 252, 212), true},
		{Enumeration, model.RGB(255, 255, 255), true},
		{Datatype, model.RGB(255, 255, 255), true},

		{Subkind, model.Color{}, false},
		{Role, model.Color{}, false},
		{CategoryStereotype, model.Color{}, false},
		{"customThing", model.Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.stereotype, func(t *testing.T) {
			got, ok := p.Direct(tt.stereotype)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Direct(%q) = %v, %v; want %v, %v", tt.stereotype, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPaletteDerivedFor(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		name  string
		color model.Color
		want  model.Color
		ok    bool
	}{
		{"functional complex base", p.Base(FunctionalComplex), p.Derived(FunctionalComplex), true},
		{"functional complex derived", p.Derived(FunctionalComplex), p.Derived(FunctionalComplex), true},
		{"collective shares shades", p.Base(Collective), p.Derived(FunctionalComplex), true},
		{"relator base", p.Base(Relator), p.Derived(Relator), true},
		{"mode derived", p.Derived(Mode), p.Derived(Mode), true},
		{"quality base", p.Base(Quality), p.Derived(Quality), true},
		{"type single shade", p.Base(Type), p.Base(Type), true},

		{"non-sortal", p.NonSortal(), model.Color{}, false},
		{"event", model.RGB(252, 252, 212), model.Color{}, false},
		{"white", model.RGB(255, 255, 255), model.Color{}, false},
		{"arbitrary", model.RGB(1, 2, 3), model.Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.DerivedFor(tt.color)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DerivedFor(%v) = %v, %v; want %v, %v", tt.color, got, ok, tt.want, tt.ok)
			}
			if p.Recognized(tt.color) != tt.ok {
				t.Errorf("Recognized(%v) = %v, want %v", tt.color, !tt.ok, tt.ok)
			}
		})
	}
}

func TestPaletteShadesDistinct(t *testing.T) {
	p := DefaultPalette()
	for _, c := range Categories() {
		if !c.IsSortal() {
			continue
		}
		if p.Base(c) == p.Derived(c) {
			t.Errorf("%s: base and derived shades are equal", c)
		}
		if p.Derived(c) == p.NonSortal() {
			t.Errorf("%s: derived shade collides with non-sortal", c)
		}
	}
}

func TestPaletteEntries(t *testing.T) {
	entries := DefaultPalette().Entries()

	names := make(map[string]Entry, len(entries))
	for _, e := range entries {
		names[e.Name] = e
	}
	for _, want := range []string{"functional-complex", "relator", "type", "non-sortal", "event", "datatype"} {
		if _, ok := names[want]; !ok {
			t.Errorf("Entries() missing %q", want)
		}
	}

	fc := names["functional-complex"]
	if len(fc.Stereotypes) != 1 || fc.Stereotypes[0] != Kind {
		t.Errorf("functional-complex stereotypes = %v, want [kind]", fc.Stereotypes)
	}
	if got := names["collective"].Stereotypes; len(got) != 2 {
		t.Errorf("collective stereotypes = %v, want 2 entries", got)
	}
}

func TestZeroPalette(t *testing.T) {
	var p Palette
	if _, ok := p.Direct(Kind); ok {
		t.Error("zero palette should not resolve kind")
	}
	if _, ok := p.DerivedFor(model.RGB(255, 253, 146)); ok {
		t.Error("zero palette should not recognize colors")
	}
}
