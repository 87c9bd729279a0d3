package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/ontouml/ontokit/pkg/model"
)

// ReadSnapshot decodes a snapshot from r and builds the graph it describes.
//
// ReadSnapshot returns an error if the input is malformed, an element has an
// unknown kind, a duplicate id or an unknown parent, a generalization names a
// missing endpoint or an endpoint that is not a class, or a shape has an
// invalid color or unknown owner.
// Errors name the offending element or shape. ReadSnapshot does not close r.
func ReadSnapshot(r io.Reader, format Format) (*model.Graph, error) {
	var data snapshot
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&data); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
	return build(&data)
}

// ReadSnapshotFile reads the snapshot at path. The format follows the file
// extension: .json, .yaml or .yml.
func ReadSnapshotFile(path string) (*model.Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadSnapshot(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func build(data *snapshot) (*model.Graph, error) {
	g := model.New(model.Project{ID: data.Project.ID, Name: data.Project.Name})

	for _, e := range data.Elements {
		el, err := toElement(e)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", e.ID, err)
		}
		if err := g.Add(e.Parent, el); err != nil {
			return nil, fmt.Errorf("element %s: %w", e.ID, err)
		}
	}

	for _, s := range data.Shapes {
		sh := model.NewShape(s.ID, s.Element, s.Fillable)
		if s.Fill != "" {
			c, err := model.ParseColor(s.Fill)
			if err != nil {
				return nil, fmt.Errorf("shape %s: fill: %w", s.ID, err)
			}
			sh.SetFill(c)
		}
		if s.Foreground != "" {
			c, err := model.ParseColor(s.Foreground)
			if err != nil {
				return nil, fmt.Errorf("shape %s: foreground: %w", s.ID, err)
			}
			sh.SetForeground(c)
		}
		if err := g.AddShape(sh); err != nil {
			return nil, fmt.Errorf("shape %s: %w", s.ID, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func toElement(e element) (model.Element, error) {
	kind, ok := model.ParseKind(e.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}

	h := model.Header{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Stereotypes: e.Stereotypes,
	}
	for _, tv := range e.TaggedValues {
		vk, ok := model.ParseValueKind(tv.Kind)
		if !ok {
			log.Warn("unknown tagged value kind, treating as text", "element", e.ID, "tag", tv.Name, "kind", tv.Kind)
		}
		h.TaggedValues = append(h.TaggedValues, model.TaggedValue{
			Name:  tv.Name,
			Kind:  vk,
			Value: tv.Value,
			Ref:   tv.Ref,
		})
	}

	switch kind {
	case model.KindPackage:
		return &model.Package{Header: h}, nil
	case model.KindModel:
		return &model.Model{Header: h}, nil
	case model.KindClass:
		return &model.Class{Header: h}, nil
	case model.KindGeneralization:
		return &model.Generalization{Header: h, General: e.General, Specific: e.Specific}, nil
	case model.KindGeneralizationSet:
		return &model.GeneralizationSet{
			Header:          h,
			URL:             e.URL,
			URI:             e.URI,
			IsDisjoint:      e.IsDisjoint,
			IsComplete:      e.IsComplete,
			Generalizations: e.Generalizations,
		}, nil
	case model.KindAssociation:
		return &model.Association{Header: h, Source: e.Source, Target: e.Target}, nil
	case model.KindAssociationClass:
		return &model.AssociationClass{Header: h, Source: e.Source, Target: e.Target}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", e.Kind)
}
