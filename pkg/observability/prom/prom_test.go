package prom

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ontouml/ontokit/pkg/observability"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	ctx := context.Background()

	m.OnExport(ctx, "pkg", 5, time.Millisecond, nil)
	m.OnExport(ctx, "pkg", 0, time.Millisecond, errors.New("boom"))
	m.OnPass(ctx, 1, 10, 3, time.Millisecond)
	m.OnPass(ctx, 2, 10, 1, time.Millisecond)
	m.OnRepaint(ctx, 10, 2, time.Millisecond)
	m.OnCacheHit(ctx, "transform")
	m.OnCacheSet(ctx, "transform", 128)
	m.OnResponse(ctx, "POST", "example.com", "/v1/verify", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.exportsTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("exports ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.exportsTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("exports error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.classesChanged); got != 4 {
		t.Errorf("classes changed = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.classesDefaulted); got != 2 {
		t.Errorf("classes defaulted = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.cacheBytes.WithLabelValues("transform")); got != 128 {
		t.Errorf("cache bytes = %v, want 128", got)
	}

	const want = `
# HELP ontokit_server_requests_total Requests sent to the OntoUML server by response status
# TYPE ontokit_server_requests_total counter
ontokit_server_requests_total{host="example.com",path="/v1/verify",status="4xx"} 1
`
	if err := testutil.CollectAndCompare(m.requestsTotal, strings.NewReader(want)); err != nil {
		t.Error(err)
	}
}

func TestNewDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := New(reg); err == nil {
		t.Error("registering twice should fail")
	}
}

func TestInstall(t *testing.T) {
	defer observability.Reset()

	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	m.Install()
	if observability.Coloring() != observability.ColoringHooks(m) {
		t.Error("Install() did not register coloring hooks")
	}
}
