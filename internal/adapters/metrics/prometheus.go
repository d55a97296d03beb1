package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements the metrics Recorder port with client_golang counters.
type Prometheus struct {
	postsCreated   prometheus.Counter
	writesRejected *prometheus.CounterVec
	feedsServed    *prometheus.CounterVec
	feedsFailed    *prometheus.CounterVec
}

// NewPrometheus registers the counters on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "emojifeed",
			Name:      "posts_created_total",
			Help:      "Posts persisted by the write path.",
		}),
		writesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emojifeed",
			Name:      "writes_rejected_total",
			Help:      "Write attempts rejected, by error code.",
		}, []string{"reason"}),
		feedsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emojifeed",
			Name:      "feeds_served_total",
			Help:      "Feed compositions returned, by kind.",
		}, []string{"kind"}),
		feedsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emojifeed",
			Name:      "feeds_failed_total",
			Help:      "Feed compositions that failed, by kind and error code.",
		}, []string{"kind", "reason"}),
	}
	reg.MustRegister(p.postsCreated, p.writesRejected, p.feedsServed, p.feedsFailed)
	return p
}

func (p *Prometheus) PostCreated() {
	p.postsCreated.Inc()
}

func (p *Prometheus) WriteRejected(reason string) {
	p.writesRejected.WithLabelValues(reason).Inc()
}

func (p *Prometheus) FeedServed(kind string) {
	p.feedsServed.WithLabelValues(kind).Inc()
}

func (p *Prometheus) FeedFailed(kind, reason string) {
	p.feedsFailed.WithLabelValues(kind, reason).Inc()
}
