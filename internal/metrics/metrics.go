// Package metrics exposes Prometheus collectors for HTTP traffic, round
// scoring and the external judge and LLM collaborators.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so tests can build as many instances as they need.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	roundScore      *prometheus.HistogramVec
	judgePolls      *prometheus.CounterVec
	llmRequests     *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_http_requests_total",
				Help: "HTTP requests served, by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interview_http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		roundScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "interview_round_score",
				Help:    "Deterministic percentage score of submitted rounds.",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
			[]string{"round_type"},
		),
		judgePolls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_judge_polls_total",
				Help: "Polls issued against the code execution judge, by outcome.",
			},
			[]string{"outcome"},
		),
		llmRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_llm_requests_total",
				Help: "Requests sent to the language model, by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// GinMiddleware records request counts and latency keyed by the matched route
// template, so path parameters do not explode label cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ObserveRoundScore(roundType string, score int) {
	if m == nil {
		return
	}
	m.roundScore.WithLabelValues(roundType).Observe(float64(score))
}

func (m *Metrics) JudgePoll(outcome string) {
	if m == nil {
		return
	}
	m.judgePolls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) LLMRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(operation, outcome).Inc()
}
