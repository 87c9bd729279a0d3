package coloring

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/observability"
	"github.com/ontouml/ontokit/pkg/ontology"
)

// Passes is the number of passes run by [Engine.RepaintProject].
const Passes = 2

// Options configures an [Engine].
type Options struct {
	// Enabled turns automatic coloring on. A disabled engine never writes a
	// color.
	Enabled bool

	// Logger receives per-class resolution at debug level. Nil means
	// log.Default().
	Logger *log.Logger
}

// Engine paints classes according to a palette.
type Engine struct {
	palette ontology.Palette
	enabled bool
	logger  *log.Logger
}

// Summary reports the outcome of a pass or a repaint.
type Summary struct {
	Passes    int // Passes run
	Classes   int // Classes visited per pass
	Changed   int // Classes whose shapes changed color, summed over passes
	Defaulted int // Classes left with the non-sortal color by the last pass
}

// New returns an engine using palette p.
func New(p ontology.Palette, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{palette: p, enabled: opts.Enabled, logger: logger}
}

// Enabled reports whether the engine paints.
func (e *Engine) Enabled() bool { return e.enabled }

// Palette returns the engine's palette.
func (e *Engine) Palette() ontology.Palette { return e.palette }

// RepaintProject runs [Passes] passes over every class of h.
func (e *Engine) RepaintProject(ctx context.Context, h model.Host) Summary {
	var sum Summary
	if !e.enabled {
		return sum
	}
	start := time.Now()
	for i := 0; i < Passes; i++ {
		s := e.pass(ctx, h, i+1)
		sum.Passes++
		sum.Classes = s.Classes
		sum.Changed += s.Changed
		sum.Defaulted = s.Defaulted
	}
	observability.Coloring().OnRepaint(ctx, sum.Classes, sum.Defaulted, time.Since(start))
	return sum
}

// Pass runs a single pass over every class of h in host order.
func (e *Engine) Pass(ctx context.Context, h model.Host) Summary {
	if !e.enabled {
		return Summary{}
	}
	return e.pass(ctx, h, 1)
}

func (e *Engine) pass(ctx context.Context, h model.Host, n int) Summary {
	start := time.Now()
	s := Summary{Passes: 1}
	for _, c := range h.Classes() {
		s.Classes++
		changed, defaulted := e.paint(h, c)
		if changed {
			s.Changed++
		}
		if defaulted {
			s.Defaulted++
		}
	}
	e.logger.Debug("coloring pass", "pass", n, "classes", s.Classes, "changed", s.Changed, "defaulted", s.Defaulted)
	observability.Coloring().OnPass(ctx, n, s.Classes, s.Changed, time.Since(start))
	return s
}

// RepaintClass resolves and applies the color of one class. It reports
// whether any of the class's shapes changed color. A class without
// stereotypes is left untouched.
func (e *Engine) RepaintClass(h model.Host, classID string) (bool, error) {
	c, err := class(h, classID)
	if err != nil {
		return false, err
	}
	if !e.enabled {
		return false, nil
	}
	changed, _ := e.paint(h, c)
	return changed, nil
}

// paint applies every stereotype of c in order. defaulted reports whether the
// last stereotype fell back to the non-sortal color.
func (e *Engine) paint(h model.Host, c *model.Class) (changed, defaulted bool) {
	for _, st := range c.Stereotypes {
		color, ok, def := e.resolve(h, c.ID, st)
		if !ok {
			continue
		}
		if apply(h, c.ID, color) {
			changed = true
		}
		defaulted = def
		e.logger.Debug("painted class", "id", c.ID, "stereotype", st, "color", color, "default", def)
	}
	return changed, defaulted
}

// resolve returns the color for one stereotype of classID. ok is false when
// the stereotype is resolved directly but the palette has no color for it.
func (e *Engine) resolve(h model.Host, classID, stereotype string) (color model.Color, ok, defaulted bool) {
	switch ontology.ResolutionOf(stereotype) {
	case ontology.ResolveDirect:
		color, ok = e.palette.Direct(stereotype)
		return color, ok, false
	case ontology.ResolveFromSpecializations:
		if c, found := e.firstRecognized(h, specializations(h, classID)); found {
			return c, true, false
		}
	default:
		if c, found := e.firstRecognized(h, superclasses(h, classID)); found {
			return c, true, false
		}
	}
	return e.palette.NonSortal(), true, true
}

// ResolveSuperclassColor looks one level up the hierarchy of classID and
// returns the derived shade of the first superclass drawn with a recognized
// color. It only reads shapes and works on disabled engines too.
func (e *Engine) ResolveSuperclassColor(h model.Host, classID string) (model.Color, bool) {
	return e.firstRecognized(h, superclasses(h, classID))
}

// ApplyStereotype assigns stereotype to classID, replacing any stereotypes
// the class had, and paints it accordingly. Kind-level and
// other fixed stereotypes paint their color, sortals paint the color found by
// [Engine.ResolveSuperclassColor] (or nothing when none is found) and
// non-sortals paint the non-sortal gray. Other stereotypes only get
// recorded.
func (e *Engine) ApplyStereotype(h model.Host, classID, stereotype string) (bool, error) {
	c, err := class(h, classID)
	if err != nil {
		return false, err
	}
	c.Stereotypes = []string{stereotype}
	if !e.enabled {
		return false, nil
	}

	var (
		color model.Color
		ok    bool
	)
	switch {
	case ontology.IsSortal(stereotype):
		color, ok = e.ResolveSuperclassColor(h, classID)
	case ontology.IsNonSortal(stereotype):
		color, ok = e.palette.NonSortal(), true
	default:
		color, ok = e.palette.Direct(stereotype)
	}
	if !ok {
		return false, nil
	}
	return apply(h, classID, color), nil
}

// firstRecognized scans neighbors in order and returns the derived shade of
// the first fillable shape whose fill is a recognized palette color.
func (e *Engine) firstRecognized(h model.Host, neighbors []string) (model.Color, bool) {
	for _, id := range neighbors {
		for _, s := range h.Shapes(id) {
			if !s.Fillable {
				continue
			}
			fill, ok := s.Fill()
			if !ok {
				continue
			}
			if d, ok := e.palette.DerivedFor(fill); ok {
				return d, true
			}
		}
	}
	return model.Color{}, false
}

func superclasses(h model.Host, classID string) []string {
	edges := h.Incoming(classID)
	ids := make([]string, len(edges))
	for i, g := range edges {
		ids[i] = g.General
	}
	return ids
}

func specializations(h model.Host, classID string) []string {
	edges := h.Outgoing(classID)
	ids := make([]string, len(edges))
	for i, g := range edges {
		ids[i] = g.Specific
	}
	return ids
}

// apply paints every shape of id and reports whether any color changed.
func apply(h model.Host, id string, c model.Color) bool {
	changed := false
	for _, s := range h.Shapes(id) {
		var (
			cur model.Color
			set bool
		)
		if s.Fillable {
			cur, set = s.Fill()
		} else {
			cur, set = s.Foreground()
		}
		if !set || cur != c {
			changed = true
		}
		s.Paint(c)
	}
	return changed
}

func class(h model.Host, id string) (*model.Class, error) {
	el, ok := h.Element(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownElement, "class %q not found", id)
	}
	c, ok := el.(*model.Class)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "element %s is a %s, not a class", id, el.Kind())
	}
	return c, nil
}
