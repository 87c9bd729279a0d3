package ontology

// Class stereotypes.
const (
	Kind           = "kind"
	CollectiveKind = "collectiveKind"
	QuantityKind   = "quantityKind"
	RelatorKind    = "relatorKind"
	ModeKind       = "modeKind"
	QualityKind    = "qualityKind"

	CollectiveStereotype = "collective"
	QuantityStereotype   = "quantity"
	RelatorStereotype    = "relator"
	ModeStereotype       = "mode"
	QualityStereotype    = "quality"

	TypeStereotype = "type"
	Event          = "event"
	Enumeration    = "enumeration"
	Datatype       = "datatype"

	Subkind      = "subkind"
	SubkindAlias = "subKind" // spelling used by older editor profiles
	Role         = "role"
	Phase        = "phase"

	CategoryStereotype = "category"
	Mixin              = "mixin"
	RoleMixin          = "roleMixin"
	PhaseMixin         = "phaseMixin"
)

// Association stereotypes.
const (
	Material           = "material"
	Comparative        = "comparative"
	Historical         = "historical"
	Mediation          = "mediation"
	Characterization   = "characterization"
	ExternalDependence = "externalDependence"
	ComponentOf        = "componentOf"
	MemberOf           = "memberOf"
	SubCollectionOf    = "subCollectionOf"
	SubQuantityOf      = "subQuantityOf"
)

// Resolution is the way a class's color is obtained from one of its
// stereotypes.
type Resolution int

const (
	// ResolveFromSuperclasses looks at the classes this class specializes.
	// It is the default for subkind, role, phase and any unrecognized
	// stereotype.
	ResolveFromSuperclasses Resolution = iota
	// ResolveDirect applies the stereotype's fixed color.
	ResolveDirect
	// ResolveFromSpecializations looks at the classes specializing this
	// class. Used by the non-sortal stereotypes.
	ResolveFromSpecializations
)

func (r Resolution) String() string {
	switch r {
	case ResolveDirect:
		return "direct"
	case ResolveFromSpecializations:
		return "specializations"
	default:
		return "superclasses"
	}
}

// directCategory maps stereotypes with a fixed category color to that
// category. Event, enumeration and datatype have fixed colors but no
// category and are handled by the palette.
var directCategory = map[string]Category{
	Kind:                 FunctionalComplex,
	CollectiveKind:       Collective,
	CollectiveStereotype: Collective,
	QuantityKind:         Quantity,
	QuantityStereotype:   Quantity,
	RelatorKind:          Relator,
	RelatorStereotype:    Relator,
	ModeKind:             Mode,
	ModeStereotype:       Mode,
	QualityKind:          Quality,
	QualityStereotype:    Quality,
	TypeStereotype:       Type,
}

// ResolutionOf returns how a class carrying stereotype s is colored.
func ResolutionOf(s string) Resolution {
	switch {
	case IsNonSortal(s):
		return ResolveFromSpecializations
	case s == Event, s == Enumeration, s == Datatype:
		return ResolveDirect
	}
	if _, ok := directCategory[s]; ok {
		return ResolveDirect
	}
	return ResolveFromSuperclasses
}

// CategoryOf returns the category fixed by a kind-level stereotype (or
// type). Sortal and non-sortal stereotypes inherit their category and report
// false, as do unrecognized names.
func CategoryOf(s string) (Category, bool) {
	c, ok := directCategory[s]
	return c, ok
}

// IsSortal reports whether s is one of subkind, role or phase.
func IsSortal(s string) bool {
	switch s {
	case Subkind, SubkindAlias, Role, Phase:
		return true
	}
	return false
}

// IsNonSortal reports whether s is one of category, mixin, roleMixin or
// phaseMixin.
func IsNonSortal(s string) bool {
	switch s {
	case CategoryStereotype, Mixin, RoleMixin, PhaseMixin:
		return true
	}
	return false
}

// ClassStereotypes returns every class stereotype known to the table, in a
// stable order.
func ClassStereotypes() []string {
	return []string{
		Kind, CollectiveKind, QuantityKind, RelatorKind, ModeKind, QualityKind,
		CollectiveStereotype, QuantityStereotype, RelatorStereotype, ModeStereotype, QualityStereotype,
		Subkind, Role, Phase,
		CategoryStereotype, Mixin, RoleMixin, PhaseMixin,
		TypeStereotype, Event, Enumeration, Datatype,
	}
}

// AssociationStereotypes returns every association stereotype.
func AssociationStereotypes() []string {
	return []string{
		Material, Comparative, Historical, Mediation, Characterization,
		ExternalDependence, ComponentOf, MemberOf, SubCollectionOf, SubQuantityOf,
	}
}
