package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	assistRequestsTotal  atomic.Uint64
	assistCompletedTotal atomic.Uint64
	assistFailedTotal    atomic.Uint64
	exportArtifactsTotal atomic.Uint64

	assistDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAssistRequested increments the requested counter.
func IncAssistRequested() {
	assistRequestsTotal.Add(1)
}

// IncAssistCompleted increments the completed counter.
func IncAssistCompleted() {
	assistCompletedTotal.Add(1)
}

// IncAssistFailed increments the failed counter.
func IncAssistFailed() {
	assistFailedTotal.Add(1)
}

// ObserveAssistDurationMs records an assist prompt duration in milliseconds.
func ObserveAssistDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	assistDuration.Observe(value)
}

// IncExportArtifact increments the generated-artifact counter.
func IncExportArtifact() {
	exportArtifactsTotal.Add(1)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "assist_requests_total", "Total assist prompts sent", assistRequestsTotal.Load())
	writeCounter(&buf, "assist_completed_total", "Total assist prompts completed", assistCompletedTotal.Load())
	writeCounter(&buf, "assist_failed_total", "Total assist prompts failed", assistFailedTotal.Load())
	writeCounter(&buf, "export_artifacts_total", "Total export artifacts generated", exportArtifactsTotal.Load())
	writeHistogram(&buf, "assist_duration_ms", "Assist prompt duration in milliseconds", assistDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
