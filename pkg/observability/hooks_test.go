package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Export hooks
	e := NoopExportHooks{}
	e.OnExport(ctx, "pkg", 12, time.Second, nil)

	// Coloring hooks
	p := NoopColoringHooks{}
	p.OnPass(ctx, 1, 10, 4, time.Millisecond)
	p.OnRepaint(ctx, 10, 2, time.Millisecond)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "transform")
	c.OnCacheMiss(ctx, "transform")
	c.OnCacheSet(ctx, "transform", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "ontouml.herokuapp.com", "/v1/verify")
	h.OnResponse(ctx, "POST", "ontouml.herokuapp.com", "/v1/verify", 200, time.Second)
	h.OnError(ctx, "POST", "ontouml.herokuapp.com", "/v1/verify", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Export() should return NoopExportHooks by default")
	}
	if _, ok := Coloring().(NoopColoringHooks); !ok {
		t.Error("Coloring() should return NoopColoringHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customExport := &testExportHooks{}
	SetExportHooks(customExport)
	if Export() != customExport {
		t.Error("SetExportHooks should set custom hooks")
	}

	customColoring := &testColoringHooks{}
	SetColoringHooks(customColoring)
	if Coloring() != customColoring {
		t.Error("SetColoringHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Coloring().(NoopColoringHooks); !ok {
		t.Error("Reset() should restore NoopColoringHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testColoringHooks{}
	SetColoringHooks(custom)

	// Setting nil should be ignored
	SetColoringHooks(nil)

	if Coloring() != custom {
		t.Error("SetColoringHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testExportHooks struct{ NoopExportHooks }
type testColoringHooks struct{ NoopColoringHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
