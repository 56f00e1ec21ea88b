package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSearch("success", 1.5)
	m.ObserveSearch("success", 0)
	m.ObserveSearch("failed", 0)
	m.ObserveChunks("maps", 3)
	m.ObserveChunks("web", 0)
	m.ObserveDropped(2)

	if got := testutil.ToFloat64(m.searches.WithLabelValues("success")); got != 2 {
		t.Fatalf("expected 2 successful searches, got %v", got)
	}
	if got := testutil.ToFloat64(m.searches.WithLabelValues("failed")); got != 1 {
		t.Fatalf("expected 1 failed search, got %v", got)
	}
	if got := testutil.ToFloat64(m.groundingChunks.WithLabelValues("maps")); got != 3 {
		t.Fatalf("expected 3 maps chunks, got %v", got)
	}
	if got := testutil.ToFloat64(m.droppedChunks); got != 2 {
		t.Fatalf("expected 2 dropped chunks, got %v", got)
	}
	if got := testutil.CollectAndCount(m.searchDuration); got != 1 {
		t.Fatalf("expected one histogram series, got %d", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveSearch("success", 1)
	m.ObserveChunks("web", 1)
	m.ObserveDropped(1)
}
