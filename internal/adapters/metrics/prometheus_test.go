package metrics

import (
	"testing"

	metricsPort "emojifeed/internal/ports/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ metricsPort.Recorder = (*Prometheus)(nil)

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.PostCreated()
	p.PostCreated()
	p.WriteRejected("THROTTLED")
	p.FeedServed("all")
	p.FeedFailed("all", "AUTHOR_NOT_RESOLVED")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.postsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.writesRejected.WithLabelValues("THROTTLED")))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.writesRejected.WithLabelValues("VALIDATION_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.feedsServed.WithLabelValues("all")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.feedsFailed.WithLabelValues("all", "AUTHOR_NOT_RESOLVED")))
}

func TestNewPrometheus_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg)

	assert.Panics(t, func() { NewPrometheus(reg) })
}
