package prom

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fasthttp/router"
	"github.com/nimasrn/bank-records/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	xhttp "github.com/nimasrn/bank-records/pkg/http"
)

const (
	SystemHTTP  = "http"
	SystemAudit = "audit"
)

const (
	MetricRequestsTotal          = "requests_total"
	MetricRequestDurationSeconds = "request_duration_seconds"
	MetricCustomerLogsTotal      = "customer_logs_total"
)

var createMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var metricCounterVecs = make(map[string]*prometheus.CounterVec)
var metricHistogramVecs = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

// Create registers every metric the service emits. Callers that skip it
// (tests, the migrate cmd) get no-op metric helpers.
func Create(host string, env string, nameSpace string) error {
	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	defaultLabels["instance"] = host
	namespace = nameSpace
	MetricSystemEnabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounterVec(SystemHTTP, MetricRequestsTotal, []string{"method", "path", "status"}))
	hasError(createHistogramVec(SystemHTTP, MetricRequestDurationSeconds, []string{"method", "path"}))
	hasError(createCounterVec(SystemAudit, MetricCustomerLogsTotal, []string{"log_type"}))

	return err
}

func createCounterVec(system, name string, labels []string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()

	key := metricKey(system, name)
	if _, ok := metricCounterVecs[key]; ok {
		return nil
	}

	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   system,
		Name:        name,
		ConstLabels: defaultLabels,
	}, labels)

	if err := prometheus.Register(vec); err != nil {
		return err
	}
	metricCounterVecs[key] = vec
	return nil
}

func createHistogramVec(system, name string, labels []string) error {
	createMetricLock.Lock()
	defer createMetricLock.Unlock()

	key := metricKey(system, name)
	if _, ok := metricHistogramVecs[key]; ok {
		return nil
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   system,
		Name:        name,
		Buckets:     prometheus.DefBuckets,
		ConstLabels: defaultLabels,
	}, labels)

	if err := prometheus.Register(vec); err != nil {
		return err
	}
	metricHistogramVecs[key] = vec
	return nil
}

func IncCounterVec(system, name string, labels ...string) {
	if !MetricSystemEnabled {
		return
	}
	vec, ok := metricCounterVecs[metricKey(system, name)]
	if !ok {
		logger.Warn("prom: unknown counter", "system", system, "name", name)
		return
	}
	vec.WithLabelValues(labels...).Inc()
}

func ObserveHistogramVec(system, name string, value float64, labels ...string) {
	if !MetricSystemEnabled {
		return
	}
	vec, ok := metricHistogramVecs[metricKey(system, name)]
	if !ok {
		logger.Warn("prom: unknown histogram", "system", system, "name", name)
		return
	}
	vec.WithLabelValues(labels...).Observe(value)
}

func metricKey(system, name string) string {
	return fmt.Sprintf("%s_%s", system, name)
}

// Handler exposes the default prometheus registry over fasthttp.
func Handler() xhttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}

// Middleware records request counts and latency per route. It reads the
// matched route path so label cardinality stays bounded.
func Middleware(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		start := time.Now()
		next(ctx)

		path := string(ctx.Path())
		if matched, ok := ctx.UserValue(router.MatchedRoutePathParam).(string); ok && matched != "" {
			path = matched
		}
		method := string(ctx.Method())

		IncCounterVec(SystemHTTP, MetricRequestsTotal, method, path, strconv.Itoa(ctx.Response.StatusCode()))
		ObserveHistogramVec(SystemHTTP, MetricRequestDurationSeconds, time.Since(start).Seconds(), method, path)
	}
}
