package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fakeStatsd struct {
	incrs [][]string
}

func (f *fakeStatsd) Incr(name string, tags []string, rate float64) error {
	f.incrs = append(f.incrs, append([]string{name}, tags...))
	return nil
}

func TestObserve(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	statsd := &fakeStatsd{}
	m.Statsd = statsd

	m.Observe(EventLike)
	m.Observe(EventLike)
	m.Observe(EventFollow)

	require.Equal(t, float64(2), testutil.ToFloat64(m.Events.WithLabelValues(EventLike)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Events.WithLabelValues(EventFollow)))
	require.Equal(t, float64(0), testutil.ToFloat64(m.Events.WithLabelValues(EventUnfollow)))
	require.Len(t, statsd.incrs, 3)
	require.Equal(t, []string{DDOG_EVENT_COUNTER, "event:like"}, statsd.incrs[0])

	// nil metrics are a no-op
	var empty *Metrics
	empty.Observe(EventLike)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/users/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/api/users/1", "/api/users/2", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, float64(2), testutil.ToFloat64(m.Requests.WithLabelValues("/api/users/:id", "GET", "2xx")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", "GET", "4xx")))
}

func TestRegisterTwiceOnSameRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	require.Panics(t, func() { NewMetrics(reg) })
}
