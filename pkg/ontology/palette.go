package ontology

import "github.com/ontouml/ontokit/pkg/model"

// Palette maps categories and stereotypes to colors. The zero value has no
// entries; use [DefaultPalette].
type Palette struct {
	base      map[Category]model.Color
	derived   map[Category]model.Color
	fixed     map[string]model.Color // event, enumeration, datatype
	nonSortal model.Color
	toDerived map[model.Color]model.Color
}

// Entry is one row of the palette listing.
type Entry struct {
	Name        string
	Base        model.Color
	Derived     model.Color // equal to Base for single-shade rows
	Stereotypes []string
}

var (
	colorFunctionalComplex        = model.RGB(255, 253, 146)
	colorFunctionalComplexDerived = model.RGB(255, 254, 199)
	colorRelator                  = model.RGB(246, 194, 137)
	colorRelatorDerived           = model.RGB(251, 225, 197)
	colorMode                     = model.RGB(176, 251, 162)
	colorModeDerived              = model.RGB(206, 252, 198)
	colorQuality                  = model.RGB(156, 160, 248)
	colorQualityDerived           = model.RGB(205, 205, 249)
	colorType                     = model.RGB(211, 211, 252)
	colorNonSortal                = model.RGB(224, 224, 224)
	colorEvent                    = model.RGB(252, 252, 212)
	colorWhite                    = model.RGB(255, 255, 255)
)

// DefaultPalette returns the standard OntoUML color table.
//
// Functional complexes, collectives and quantities share their shades.
func DefaultPalette() Palette {
	return NewPalette(
		map[Category][2]model.Color{
			FunctionalComplex: {colorFunctionalComplex, colorFunctionalComplexDerived},
			Collective:        {colorFunctionalComplex, colorFunctionalComplexDerived},
			Quantity:          {colorFunctionalComplex, colorFunctionalComplexDerived},
			Relator:           {colorRelator, colorRelatorDerived},
			Mode:              {colorMode, colorModeDerived},
			Quality:           {colorQuality, colorQualityDerived},
			Type:              {colorType, colorType},
		},
		map[string]model.Color{
			Event:       colorEvent,
			Enumeration: colorWhite,
			Datatype:    colorWhite,
		},
		colorNonSortal,
	)
}

// NewPalette builds a palette from per-category {base, derived} pairs,
// fixed colors for uncategorized stereotypes and the non-sortal default.
// The inputs are copied.
func NewPalette(shades map[Category][2]model.Color, fixed map[string]model.Color, nonSortal model.Color) Palette {
	p := Palette{
		base:      make(map[Category]model.Color, len(shades)),
		derived:   make(map[Category]model.Color, len(shades)),
		fixed:     make(map[string]model.Color, len(fixed)),
		nonSortal: nonSortal,
		toDerived: make(map[model.Color]model.Color, 2*len(shades)),
	}
	// Iterate in category order so shared shades resolve deterministically.
	for _, c := range Categories() {
		s, ok := shades[c]
		if !ok {
			continue
		}
		p.base[c], p.derived[c] = s[0], s[1]
		if _, seen := p.toDerived[s[0]]; !seen {
			p.toDerived[s[0]] = s[1]
		}
		if _, seen := p.toDerived[s[1]]; !seen {
			p.toDerived[s[1]] = s[1]
		}
	}
	for s, c := range fixed {
		p.fixed[s] = c
	}
	return p
}

// Direct returns the fixed color of a stereotype resolved with
// [ResolveDirect].
func (p Palette) Direct(stereotype string) (model.Color, bool) {
	if c, ok := p.fixed[stereotype]; ok {
		return c, true
	}
	if cat, ok := directCategory[stereotype]; ok {
		c, ok := p.base[cat]
		return c, ok
	}
	return model.Color{}, false
}

// Base returns the base shade of a category. Non-sortal reports its single
// color.
func (p Palette) Base(c Category) model.Color {
	if c == NonSortal {
		return p.nonSortal
	}
	return p.base[c]
}

// Derived returns the derived shade of a category. Single-shade categories
// report their only color.
func (p Palette) Derived(c Category) model.Color {
	if c == NonSortal {
		return p.nonSortal
	}
	return p.derived[c]
}

// DerivedFor maps a recognized base or derived color to the derived shade of
// its category. The non-sortal color and the fixed colors of event,
// enumeration and datatype are not recognized.
func (p Palette) DerivedFor(c model.Color) (model.Color, bool) {
	d, ok := p.toDerived[c]
	return d, ok
}

// Recognized reports whether c is a base or derived category color.
func (p Palette) Recognized(c model.Color) bool {
	_, ok := p.toDerived[c]
	return ok
}

// NonSortal returns the default color of classes whose category cannot be
// inferred.
func (p Palette) NonSortal() model.Color { return p.nonSortal }

// Entries lists the palette for display, one row per category followed by
// the uncategorized fixed colors.
func (p Palette) Entries() []Entry {
	var out []Entry
	for _, c := range Categories() {
		if c == NonSortal {
			continue
		}
		base, ok := p.base[c]
		if !ok {
			continue
		}
		out = append(out, Entry{
			Name:        c.String(),
			Base:        base,
			Derived:     p.derived[c],
			Stereotypes: stereotypesOf(c),
		})
	}
	out = append(out, Entry{
		Name:        NonSortal.String(),
		Base:        p.nonSortal,
		Derived:     p.nonSortal,
		Stereotypes: []string{CategoryStereotype, Mixin, RoleMixin, PhaseMixin},
	})
	for _, s := range []string{Event, Enumeration, Datatype} {
		if c, ok := p.fixed[s]; ok {
			out = append(out, Entry{Name: s, Base: c, Derived: c, Stereotypes: []string{s}})
		}
	}
	return out
}

func stereotypesOf(c Category) []string {
	var out []string
	for _, s := range ClassStereotypes() {
		if cat, ok := directCategory[s]; ok && cat == c {
			out = append(out, s)
		}
	}
	return out
}
