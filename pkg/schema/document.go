package schema

import (
	"bytes"
	"encoding/json"
)

// Document is one node of the schema document tree.
type Document struct {
	Type                string               `json:"type"`
	ID                  string               `json:"id"`
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Stereotypes         []string             `json:"stereotypes,omitempty"`
	PropertyAssignments *PropertyAssignments `json:"propertyAssignments,omitempty"`
	Elements            []*Document          `json:"elements,omitempty"`
}

// Count returns the number of documents in the tree rooted at d.
func (d *Document) Count() int {
	n := 1
	for _, e := range d.Elements {
		n += e.Count()
	}
	return n
}

// Reference is the coerced form of a reference-typed tagged value.
type Reference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// PropertyAssignments is an ordered mapping from tag name to coerced value.
// Values are string, int64, float64, bool or [Reference].
//
// The zero value is an empty mapping ready to use.
type PropertyAssignments struct {
	keys   []string
	values map[string]any
}

// Set assigns v to name. A name that is already present keeps its position.
func (p *PropertyAssignments) Set(name string, v any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = v
}

// Get returns the value assigned to name.
func (p *PropertyAssignments) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Keys returns the tag names in assignment order.
func (p *PropertyAssignments) Keys() []string { return p.keys }

// Len returns the number of assignments.
func (p *PropertyAssignments) Len() int { return len(p.keys) }

// MarshalJSON encodes the assignments as a JSON object in assignment order.
func (p *PropertyAssignments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GeneralizationSetRecord is the flat export form of a generalization set.
type GeneralizationSetRecord struct {
	Type       string   `json:"type"`
	Name       string   `json:"name,omitempty"`
	URL        string   `json:"url,omitempty"`
	URI        string   `json:"uri,omitempty"`
	IsDisjoint bool     `json:"isDisjoint"`
	IsComplete bool     `json:"isComplete"`
	Tuple      []string `json:"tuple"`
}

// AddTuple appends a generalization id to the record's tuple. Order is kept
// and duplicates are not filtered.
func (r *GeneralizationSetRecord) AddTuple(id string) {
	r.Tuple = append(r.Tuple, id)
}

// Marshal encodes v as indented JSON.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
