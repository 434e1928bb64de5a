package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRequestRecordsSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/slides", "200", 25*time.Millisecond)
	m.ObserveRequest("GET", "/api/slides", "200", 30*time.Millisecond)
	m.ObserveRequest("POST", "/api/contact", "400", 5*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	counter, ok := byName["http_requests_total"]
	if !ok {
		t.Fatal("missing http_requests_total")
	}
	var slidesCount float64
	for _, metric := range counter.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["route"] == "/api/slides" && labels["status"] == "200" {
			slidesCount = metric.GetCounter().GetValue()
		}
	}
	if slidesCount != 2 {
		t.Fatalf("expected 2 slide requests, got %v", slidesCount)
	}

	histogram, ok := byName["http_request_duration_seconds"]
	if !ok {
		t.Fatal("missing http_request_duration_seconds")
	}
	var observed uint64
	for _, metric := range histogram.GetMetric() {
		observed += metric.GetHistogram().GetSampleCount()
	}
	if observed != 3 {
		t.Fatalf("expected 3 observations, got %d", observed)
	}
}

func TestObserveRequestNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("GET", "/", "200", time.Millisecond)
}

func TestNormalizeLabel(t *testing.T) {
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("expected unknown for empty label, got %q", got)
	}
	if got := normalizeLabel("/api"); got != "/api" {
		t.Fatalf("expected label preserved, got %q", got)
	}
}
