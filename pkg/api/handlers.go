package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ontouml/ontokit/pkg/cache"
	oerrors "github.com/ontouml/ontokit/pkg/errors"
	sio "github.com/ontouml/ontokit/pkg/io"
	"github.com/ontouml/ontokit/pkg/model"
	"github.com/ontouml/ontokit/pkg/schema"
	"github.com/ontouml/ontokit/pkg/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	g, body, err := s.readGraph(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := schema.ExportOptions{
		RootID:             r.URL.Query().Get("root"),
		GeneralizationSets: r.URL.Query().Get("sets") == "true",
	}
	if opts.RootID != "" {
		if err := oerrors.ValidateElementID(opts.RootID); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	ctx := r.Context()
	hash := cache.Hash(body)
	key := s.keyer.ExportKey(hash, opts.RootID, opts.GeneralizationSets)

	data, ok, _ := s.cache.Get(ctx, key)
	if !ok {
		data, err = s.serializer.Export(ctx, g, opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		_ = s.cache.Set(ctx, key, data, s.ttl)
	}

	if s.store != nil {
		id, err := s.store.Save(ctx, storage.Record{
			ProjectID: g.Project().ID,
			RootID:    opts.RootID,
			Hash:      hash,
			Document:  json.RawMessage(data),
		})
		if err != nil {
			s.writeError(w, r, oerrors.Wrap(oerrors.ErrCodeInternal, err, "archive export"))
			return
		}
		w.Header().Set("X-Export-ID", id)
		w.Header().Set("Location", "/v1/exports/"+id)
	}
	writeRaw(w, http.StatusOK, "application/json", data)
}

// PaintSummaryHeader reports the repaint outcome as
// "passes=2 classes=10 changed=4 defaulted=0".
const PaintSummaryHeader = "X-Paint-Summary"

func (s *Server) handlePaint(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.readGraph(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := requestFormat(r)

	if classID := r.URL.Query().Get("class"); classID != "" {
		changed, err := s.engine.RepaintClass(g, classID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set(PaintSummaryHeader, "changed="+strconv.FormatBool(changed))
	} else {
		sum := s.engine.RepaintProject(r.Context(), g)
		w.Header().Set(PaintSummaryHeader, summaryString(sum.Passes, sum.Classes, sum.Changed, sum.Defaulted))
	}

	var buf bytes.Buffer
	if err := sio.WriteSnapshot(&buf, g, format); err != nil {
		s.writeError(w, r, oerrors.Wrap(oerrors.ErrCodeInternal, err, "encode snapshot"))
		return
	}
	writeRaw(w, http.StatusOK, contentTypeFor(format), buf.Bytes())
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.readGraph(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := s.document(g, r.URL.Query().Get("root"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.verifier.Verify(r.Context(), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, "application/json", data)
}

func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, oerrors.New(oerrors.ErrCodeInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}
	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, oerrors.Wrap(oerrors.ErrCodeInternal, err, "list exports"))
		return
	}
	if records == nil {
		records = []*storage.Record{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		s.writeError(w, r, oerrors.New(oerrors.ErrCodeNotFound, "export %q not found", id))
		return
	}
	if err != nil {
		s.writeError(w, r, oerrors.Wrap(oerrors.ErrCodeInternal, err, "get export"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// readGraph decodes the request body as a snapshot and returns the graph
// together with the raw body.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*model.Graph, []byte, error) {
	format, err := parseRequestFormat(r)
	if err != nil {
		return nil, nil, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		return nil, nil, oerrors.Wrap(oerrors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil, oerrors.New(oerrors.ErrCodeInvalidInput, "request body is empty")
	}
	g, err := sio.ReadSnapshot(bytes.NewReader(body), format)
	if err != nil {
		return nil, nil, oerrors.Wrap(oerrors.ErrCodeInvalidFormat, err, "invalid snapshot")
	}
	return g, body, nil
}

func (s *Server) document(g *model.Graph, rootID string) (*schema.Document, error) {
	if rootID == "" {
		return s.serializer.SerializeProject(g)
	}
	return s.serializer.Serialize(g, rootID)
}

func parseRequestFormat(r *http.Request) (sio.Format, error) {
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := sio.ParseFormat(v)
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrCodeInvalidInput, err, "unsupported format %q", v)
		}
		return f, nil
	}
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		switch mt {
		case "application/yaml", "application/x-yaml", "text/yaml":
			return sio.FormatYAML, nil
		}
	}
	return sio.FormatJSON, nil
}

// requestFormat is parseRequestFormat for requests already accepted by
// readGraph.
func requestFormat(r *http.Request) sio.Format {
	f, _ := parseRequestFormat(r)
	return f
}

func contentTypeFor(f sio.Format) string {
	if f == sio.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

func summaryString(passes, classes, changed, defaulted int) string {
	return "passes=" + strconv.Itoa(passes) +
		" classes=" + strconv.Itoa(classes) +
		" changed=" + strconv.Itoa(changed) +
		" defaulted=" + strconv.Itoa(defaulted)
}
