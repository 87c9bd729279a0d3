package io

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported snapshot format %q", s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

type snapshot struct {
	Project  project   `json:"project" yaml:"project"`
	Elements []element `json:"elements" yaml:"elements"`
	Shapes   []shape   `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

type project struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type element struct {
	ID           string        `json:"id" yaml:"id"`
	Kind         string        `json:"kind" yaml:"kind"`
	Parent       string        `json:"parent,omitempty" yaml:"parent,omitempty"`
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	Stereotypes  []string      `json:"stereotypes,omitempty" yaml:"stereotypes,omitempty"`
	TaggedValues []taggedValue `json:"taggedValues,omitempty" yaml:"taggedValues,omitempty"`

	// Generalization
	General  string `json:"general,omitempty" yaml:"general,omitempty"`
	Specific string `json:"specific,omitempty" yaml:"specific,omitempty"`

	// Association, AssociationClass
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// GeneralizationSet
	URL             string   `json:"url,omitempty" yaml:"url,omitempty"`
	URI             string   `json:"uri,omitempty" yaml:"uri,omitempty"`
	IsDisjoint      bool     `json:"isDisjoint,omitempty" yaml:"isDisjoint,omitempty"`
	IsComplete      bool     `json:"isComplete,omitempty" yaml:"isComplete,omitempty"`
	Generalizations []string `json:"generalizations,omitempty" yaml:"generalizations,omitempty"`
}

type taggedValue struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Value string `json:"value" yaml:"value"`
	Ref   string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

type shape struct {
	ID         string `json:"id" yaml:"id"`
	Element    string `json:"element" yaml:"element"`
	Fillable   bool   `json:"fillable,omitempty" yaml:"fillable,omitempty"`
	Fill       string `json:"fill,omitempty" yaml:"fill,omitempty"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
}
