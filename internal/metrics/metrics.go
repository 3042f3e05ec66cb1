// Package metrics records Prometheus metrics for outbound API requests made
// by the session client. Collectors are registered on a caller-supplied
// registry so that embedding applications decide what gets exported.
package metrics

import (
	"errors"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-robinhood/internal/utils"
)

const (
	namespace = "robinhood"
	subsystem = "client"

	unknownOperation = "unknown"
)

// Collector holds the request metrics of one client.
type Collector struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	transport *prometheus.CounterVec
}

// NewCollector creates the request metrics and registers them on reg.
// Registering twice on the same registry reuses the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of API requests by operation and HTTP status",
			},
			[]string{"operation", "method", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation", "method"},
		),
		transport: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transport_errors_total",
				Help:      "API requests that failed before a response was received",
			},
			[]string{"operation"},
		),
	}

	var err error
	if c.requests, err = register(reg, c.requests); err != nil {
		return nil, err
	}
	if c.duration, err = register(reg, c.duration); err != nil {
		return nil, err
	}
	if c.transport, err = register(reg, c.transport); err != nil {
		return nil, err
	}

	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, col T) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return col, err
	}
	return col, nil
}

// Instrument attaches the collector to client via resty response and error
// hooks.
func (c *Collector) Instrument(client *resty.Client) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.ObserveResponse(resp)
		return nil
	})
	client.OnError(func(req *resty.Request, _ error) {
		c.transport.WithLabelValues(operation(req)).Inc()
	})
}

// ObserveResponse records one completed request.
func (c *Collector) ObserveResponse(resp *resty.Response) {
	if resp == nil || resp.Request == nil {
		return
	}
	op := operation(resp.Request)
	c.requests.WithLabelValues(op, resp.Request.Method, strconv.Itoa(resp.StatusCode())).Inc()
	c.duration.WithLabelValues(op, resp.Request.Method).Observe(resp.Time().Seconds())
}

func operation(req *resty.Request) string {
	if req == nil {
		return unknownOperation
	}
	if op, ok := utils.GetOperationFromContext(req.Context()); ok {
		return op
	}
	return unknownOperation
}
