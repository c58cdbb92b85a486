package monitoring

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "career_compass"

// Metrics exports service metrics to Prometheus and keeps a few running
// totals for the health endpoint
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	assessments     *prometheus.CounterVec
	answerIssues    *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	rateLimitBlocks *prometheus.CounterVec
	rateLimitErrors prometheus.Counter

	requestCount int64
	errorCount   int64
	cacheHits    int64
	cacheMisses  int64
	startTime    time.Time
}

// NewMetrics registers every collector on a fresh registry, together with
// the Go runtime and process collectors
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	return NewMetricsWith(reg)
}

// NewMetricsWith registers the service collectors on reg. Collectors that are
// already registered are reused.
func NewMetricsWith(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: reg, startTime: time.Now()}

	var err error
	if m.requests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})); err != nil {
		return nil, err
	}
	if m.requestDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})); err != nil {
		return nil, err
	}
	if m.assessments, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_total",
		Help:      "Assessments produced by questionnaire and completeness.",
	}, []string{"questionnaire", "complete"})); err != nil {
		return nil, err
	}
	if m.answerIssues, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "answer_issues_total",
		Help:      "Answers recovered with a neutral value, by questionnaire and kind.",
	}, []string{"questionnaire", "kind"})); err != nil {
		return nil, err
	}
	if m.cacheLookups, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "result_cache_lookups_total",
		Help:      "Result cache lookups by outcome.",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if m.rateLimitBlocks, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_blocks_total",
		Help:      "Requests rejected by the rate limiter, by backend.",
	}, []string{"backend"})); err != nil {
		return nil, err
	}
	if m.rateLimitErrors, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_redis_errors_total",
		Help:      "Redis failures that forced the in-memory limiter.",
	})); err != nil {
		return nil, err
	}

	return m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest records one finished HTTP request
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	atomic.AddInt64(&m.requestCount, 1)
	if status >= 400 {
		atomic.AddInt64(&m.errorCount, 1)
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordAssessment counts one assessment and the issues recovered while scoring it
func (m *Metrics) RecordAssessment(questionnaire string, complete bool, issueKinds []string) {
	m.assessments.WithLabelValues(questionnaire, strconv.FormatBool(complete)).Inc()
	for _, kind := range issueKinds {
		m.answerIssues.WithLabelValues(questionnaire, kind).Inc()
	}
}

// IncrementCacheHit increments cache hit count
func (m *Metrics) IncrementCacheHit() {
	atomic.AddInt64(&m.cacheHits, 1)
	m.cacheLookups.WithLabelValues("hit").Inc()
}

// IncrementCacheMiss increments cache miss count
func (m *Metrics) IncrementCacheMiss() {
	atomic.AddInt64(&m.cacheMisses, 1)
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// IncrementRateLimitBlock counts a rejected request for the given backend
func (m *Metrics) IncrementRateLimitBlock(backend string) {
	m.rateLimitBlocks.WithLabelValues(backend).Inc()
}

// IncrementRateLimitRedisError counts a Redis failure during a limit check
func (m *Metrics) IncrementRateLimitRedisError() {
	m.rateLimitErrors.Inc()
}

// GetStats returns the running totals shown on the health endpoint
func (m *Metrics) GetStats() map[string]interface{} {
	requests := atomic.LoadInt64(&m.requestCount)
	errs := atomic.LoadInt64(&m.errorCount)
	hits := atomic.LoadInt64(&m.cacheHits)
	misses := atomic.LoadInt64(&m.cacheMisses)

	errorRate := 0.0
	if requests > 0 {
		errorRate = float64(errs) / float64(requests) * 100
	}
	hitRate := 0.0
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses) * 100
	}

	return map[string]interface{}{
		"uptime_seconds": int64(time.Since(m.startTime).Seconds()),
		"request_count":  requests,
		"error_count":    errs,
		"error_rate":     errorRate,
		"cache_hits":     hits,
		"cache_misses":   misses,
		"cache_hit_rate": hitRate,
	}
}
