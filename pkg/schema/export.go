package schema

import (
	"context"
	"time"

	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/observability"
)

// ExportOptions selects what [Serializer.Export] produces.
type ExportOptions struct {
	// RootID names the container to serialize. Empty means the whole
	// project, see [Serializer.SerializeProject].
	RootID string

	// GeneralizationSets wraps the document in a [Bundle] together with the
	// records of every generalization set in the host.
	GeneralizationSets bool
}

// Bundle is a document exported together with its generalization sets.
type Bundle struct {
	Model              *Document                  `json:"model"`
	GeneralizationSets []*GeneralizationSetRecord `json:"generalizationSets"`
}

// Export serializes h as selected by opts and returns indented JSON. The
// result is reported to the registered [observability.ExportHooks].
//
// Generalization sets are only listed when h implements
// [GeneralizationSetLister]; otherwise the bundle carries an empty list.
func (s *Serializer) Export(ctx context.Context, h model.Host, opts ExportOptions) ([]byte, error) {
	start := time.Now()
	data, n, err := s.export(h, opts)
	observability.Export().OnExport(ctx, opts.RootID, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	s.logger().Debug("exported", "root", opts.RootID, "elements", n, "bytes", len(data))
	return data, nil
}

func (s *Serializer) export(h model.Host, opts ExportOptions) ([]byte, int, error) {
	var doc *Document
	var err error
	if opts.RootID == "" {
		doc, err = s.SerializeProject(h)
	} else {
		doc, err = s.Serialize(h, opts.RootID)
	}
	if err != nil {
		return nil, 0, err
	}

	var v any = doc
	if opts.GeneralizationSets {
		b := &Bundle{Model: doc, GeneralizationSets: []*GeneralizationSetRecord{}}
		if l, ok := h.(GeneralizationSetLister); ok {
			b.GeneralizationSets = s.SerializeGeneralizationSets(l)
		}
		v = b
	}

	data, err := Marshal(v)
	if err != nil {
		return nil, 0, err
	}
	return data, doc.Count(), nil
}
