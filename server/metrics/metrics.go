package metrics

import (
	"fmt"

	Logger "github.com/Luismorlan/tribe/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DDOG_REQUEST_COUNTER = "tribe.requests"
	DDOG_EVENT_COUNTER   = "tribe.events"

	EventTweetCreated  = "tweet_created"
	EventTweetDeleted  = "tweet_deleted"
	EventFollow        = "follow"
	EventUnfollow      = "unfollow"
	EventLike          = "like"
	EventUnlike        = "unlike"
	EventMediaUploaded = "media_uploaded"
)

// StatsdClient is the part of a DogStatsD client the metrics mirror to.
// *statsd.Client from datadog-go satisfies it.
type StatsdClient interface {
	Incr(name string, tags []string, rate float64) error
}

type Metrics struct {
	Requests *prometheus.CounterVec
	Events   *prometheus.CounterVec

	// Optional, counters are mirrored to DogStatsD when set.
	Statsd StatsdClient
}

// NewMetrics creates the service counters and registers them on reg. Tests
// pass a fresh prometheus.NewRegistry() to stay isolated.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tribe_requests_total",
				Help: "Total number of HTTP requests by route, method and status class",
			},
			[]string{"path", "method", "status"},
		),
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tribe_events_total",
				Help: "Total number of successful domain writes by kind",
			},
			[]string{"event"},
		),
	}

	reg.MustRegister(m.Requests)
	reg.MustRegister(m.Events)

	return m
}

// Observe counts one successful domain write, e.g. EventLike.
func (m *Metrics) Observe(event string) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(event).Inc()
	m.incrStatsd(DDOG_EVENT_COUNTER, []string{"event:" + event})
}

// Middleware counts every request once it has been handled. Unmatched routes
// share one label value so random paths don't blow up cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := statusClass(c.Writer.Status())
		m.Requests.WithLabelValues(path, c.Request.Method, status).Inc()
		m.incrStatsd(DDOG_REQUEST_COUNTER, []string{
			"path:" + path,
			"method:" + c.Request.Method,
			"status:" + status,
		})
	}
}

func (m *Metrics) incrStatsd(name string, tags []string) {
	if m.Statsd == nil {
		return
	}
	if err := m.Statsd.Incr(name, tags, 1); err != nil {
		Logger.Log.WithError(err).Infoln("cannot report counter ", name)
	}
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
