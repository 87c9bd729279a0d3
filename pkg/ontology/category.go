package ontology

import "fmt"

// Category is an ontological category.
type Category int

const (
	FunctionalComplex Category = iota
	Collective
	Quantity
	Relator
	Mode
	Quality
	Type
	NonSortal
)

var categoryNames = [...]string{
	FunctionalComplex: "functional-complex",
	Collective:        "collective",
	Quantity:          "quantity",
	Relator:           "relator",
	Mode:              "mode",
	Quality:           "quality",
	Type:              "type",
	NonSortal:         "non-sortal",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{FunctionalComplex, Collective, Quantity, Relator, Mode, Quality, Type, NonSortal}
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// IsSortal reports whether the category has distinct base and derived
// shades.
func (c Category) IsSortal() bool { return c >= FunctionalComplex && c <= Quality }

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if name == s {
			return Category(c), true
		}
	}
	return 0, false
}
