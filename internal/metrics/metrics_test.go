package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGinMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/interviews/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/interviews/1", "/interviews/2", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/interviews/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

func TestCounters(t *testing.T) {
	m := New()

	m.JudgePoll("completed")
	m.JudgePoll("completed")
	m.LLMRequest("round_feedback", "error")
	m.ObserveRoundScore("aptitude", 80)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.judgePolls.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.llmRequests.WithLabelValues("round_feedback", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.roundScore))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	require.NotPanics(t, func() {
		m.JudgePoll("x")
		m.LLMRequest("a", "b")
		m.ObserveRoundScore("voice", 10)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
