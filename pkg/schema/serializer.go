package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/model"
)

// Serializer builds schema documents from a [model.Host].
// The zero value is ready to use and logs through [log.Default].
type Serializer struct {
	Logger *log.Logger
}

// NewSerializer returns a serializer logging to logger. A nil logger means
// [log.Default].
func NewSerializer(logger *log.Logger) *Serializer {
	return &Serializer{Logger: logger}
}

func (s *Serializer) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Serialize walks the container rootID and its nested packages, models and
// classes in host order. The root must be a Package or a Model.
func (s *Serializer) Serialize(h model.Host, rootID string) (*Document, error) {
	root, ok := h.Element(rootID)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownElement, "root element %q not found", rootID)
	}
	if !root.Kind().IsContainer() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "root element %s is a %s, not a package or model", rootID, root.Kind())
	}
	return s.element(h, root)
}

// SerializeProject serializes every top-level package, model and class of
// the project under a synthesized Model document carrying the project's id
// and name.
func (s *Serializer) SerializeProject(h model.Host) (*Document, error) {
	p := h.Project()
	doc := &Document{Type: model.KindModel.String(), ID: p.ID, Name: p.Name}
	elems, err := s.children(h, h.Roots())
	if err != nil {
		return nil, err
	}
	doc.Elements = elems
	return doc, nil
}

func (s *Serializer) element(h model.Host, e model.Element) (*Document, error) {
	b := e.Base()
	doc := &Document{
		Type:        e.Kind().String(),
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
	if e.Kind() == model.KindClass && len(b.Stereotypes) > 0 {
		doc.Stereotypes = append([]string(nil), b.Stereotypes...)
	}

	props, err := propertyAssignments(h, b)
	if err != nil {
		return nil, err
	}
	doc.PropertyAssignments = props

	if e.Kind().IsContainer() {
		elems, err := s.children(h, h.Children(b.ID))
		if err != nil {
			return nil, err
		}
		doc.Elements = elems
	}
	return doc, nil
}

func (s *Serializer) children(h model.Host, children []model.Element) ([]*Document, error) {
	var out []*Document
	for _, c := range children {
		switch c.(type) {
		case *model.Package, *model.Model, *model.Class:
		default:
			s.logger().Debug("skipping child", "id", c.Base().ID, "kind", c.Kind())
			continue
		}
		doc, err := s.element(h, c)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// propertyAssignments returns nil when the element has no tagged values.
func propertyAssignments(h model.Host, b *model.Header) (*PropertyAssignments, error) {
	if len(b.TaggedValues) == 0 {
		return nil, nil
	}
	props := &PropertyAssignments{}
	for _, tv := range b.TaggedValues {
		v, err := coerce(h, tv)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedTaggedValue, err,
				"element %s: tagged value %q (%s)", b.ID, tv.Name, tv.Kind)
		}
		props.Set(tv.Name, v)
	}
	return props, nil
}

// coerce converts a tagged value's raw text to its declared kind. A
// reference names its target through Ref, or through Value when Ref is
// empty. Integers are 32-bit, floats must be finite and booleans are "true"
// or "false" in any case.
func coerce(h model.Host, tv model.TaggedValue) (any, error) {
	switch tv.Kind {
	case model.ValueReference:
		id := tv.Ref
		if id == "" {
			id = tv.Value
		}
		target, ok := h.Element(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownElement, "reference target %q not found", id)
		}
		return Reference{Type: target.Kind().String(), ID: id}, nil
	case model.ValueInteger:
		return strconv.ParseInt(tv.Value, 10, 32)
	case model.ValueFloat:
		f, err := strconv.ParseFloat(tv.Value, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite number %q", tv.Value)
		}
		return f, nil
	case model.ValueBoolean:
		switch {
		case strings.EqualFold(tv.Value, "true"):
			return true, nil
		case strings.EqualFold(tv.Value, "false"):
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", tv.Value)
	default:
		return tv.Value, nil
	}
}

// SerializeGeneralizationSet returns the flat record of gs.
func (s *Serializer) SerializeGeneralizationSet(gs *model.GeneralizationSet) *GeneralizationSetRecord {
	r := &GeneralizationSetRecord{
		Type:       model.KindGeneralizationSet.String(),
		Name:       gs.Name,
		URL:        gs.URL,
		URI:        gs.URI,
		IsDisjoint: gs.IsDisjoint,
		IsComplete: gs.IsComplete,
		Tuple:      make([]string, 0, len(gs.Generalizations)),
	}
	for _, id := range gs.Generalizations {
		r.AddTuple(id)
	}
	return r
}

// GeneralizationSetLister is implemented by hosts that can enumerate their
// generalization sets.
type GeneralizationSetLister interface {
	GeneralizationSets() []*model.GeneralizationSet
}

// SerializeGeneralizationSets returns the records of every generalization
// set in h, in host order.
func (s *Serializer) SerializeGeneralizationSets(h GeneralizationSetLister) []*GeneralizationSetRecord {
	sets := h.GeneralizationSets()
	out := make([]*GeneralizationSetRecord, 0, len(sets))
	for _, gs := range sets {
		out = append(out, s.SerializeGeneralizationSet(gs))
	}
	return out
}
