package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ontouml/ontokit/pkg/model"
)

// WriteSnapshot encodes g, including the current shape colors, to w.
// The output can be re-read with [ReadSnapshot].
func WriteSnapshot(w io.Writer, g *model.Graph, format Format) error {
	out := fromGraph(g)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
	return nil
}

// WriteSnapshotFile writes g to path in the format given by its extension.
func WriteSnapshotFile(path string, g *model.Graph) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSnapshot(f, g, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fromGraph(g *model.Graph) *snapshot {
	p := g.Project()
	out := &snapshot{
		Project:  project{ID: p.ID, Name: p.Name},
		Elements: make([]element, 0, g.ElementCount()),
	}

	for _, el := range g.Elements() {
		h := el.Base()
		e := element{
			ID:          h.ID,
			Kind:        el.Kind().String(),
			Parent:      g.Parent(h.ID),
			Name:        h.Name,
			Description: h.Description,
			Stereotypes: h.Stereotypes,
		}
		for _, tv := range h.TaggedValues {
			t := taggedValue{Name: tv.Name, Value: tv.Value, Ref: tv.Ref}
			if tv.Kind != model.ValueText {
				t.Kind = tv.Kind.String()
			}
			e.TaggedValues = append(e.TaggedValues, t)
		}

		switch v := el.(type) {
		case *model.Generalization:
			e.General, e.Specific = v.General, v.Specific
		case *model.GeneralizationSet:
			e.URL, e.URI = v.URL, v.URI
			e.IsDisjoint, e.IsComplete = v.IsDisjoint, v.IsComplete
			e.Generalizations = v.Generalizations
		case *model.Association:
			e.Source, e.Target = v.Source, v.Target
		case *model.AssociationClass:
			e.Source, e.Target = v.Source, v.Target
		}
		out.Elements = append(out.Elements, e)
	}

	for _, s := range g.AllShapes() {
		sh := shape{ID: s.ID, Element: s.Element, Fillable: s.Fillable}
		if c, ok := s.Fill(); ok {
			sh.Fill = c.Hex()
		}
		if c, ok := s.Foreground(); ok {
			sh.Foreground = c.Hex()
		}
		out.Shapes = append(out.Shapes, sh)
	}
	return out
}
