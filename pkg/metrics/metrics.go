// Package metrics keeps in-process request counters, enough to answer "is
// this instance healthy and what is it serving" without an external
// metrics stack.
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

type Metrics struct {
	TotalRequests  int64
	ActiveRequests int64
	TotalErrors    int64
	TotalLatencyMs int64
	MaxLatencyMs   int64

	StartTime time.Time

	mu             sync.Mutex
	endpointCounts map[string]int64
	statusCodes    map[int]int64
}

func New() *Metrics {
	return &Metrics{
		StartTime:      time.Now(),
		endpointCounts: make(map[string]int64),
		statusCodes:    make(map[int]int64),
	}
}

// Middleware records count, latency and status for every request.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			atomic.AddInt64(&m.ActiveRequests, 1)
			start := time.Now()

			err := next(c)

			latencyMs := time.Since(start).Milliseconds()
			atomic.AddInt64(&m.ActiveRequests, -1)
			atomic.AddInt64(&m.TotalRequests, 1)
			atomic.AddInt64(&m.TotalLatencyMs, latencyMs)

			for {
				current := atomic.LoadInt64(&m.MaxLatencyMs)
				if latencyMs <= current {
					break
				}
				if atomic.CompareAndSwapInt64(&m.MaxLatencyMs, current, latencyMs) {
					break
				}
			}

			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			endpoint := fmt.Sprintf("%s %s", c.Request().Method, path)

			m.mu.Lock()
			m.endpointCounts[endpoint]++
			m.statusCodes[status]++
			m.mu.Unlock()

			if status >= 400 {
				atomic.AddInt64(&m.TotalErrors, 1)
			}

			return err
		}
	}
}

type Snapshot struct {
	TotalRequests  int64            `json:"total_requests"`
	ActiveRequests int64            `json:"active_requests"`
	TotalErrors    int64            `json:"total_errors"`
	AvgLatencyMs   float64          `json:"avg_latency_ms"`
	MaxLatencyMs   int64            `json:"max_latency_ms"`
	UptimeSeconds  float64          `json:"uptime_seconds"`
	EndpointCounts map[string]int64 `json:"endpoint_counts"`
	StatusCodes    map[int]int64    `json:"status_codes"`
}

func (m *Metrics) Snapshot() Snapshot {
	total := atomic.LoadInt64(&m.TotalRequests)

	var avgLatency float64
	if total > 0 {
		avgLatency = float64(atomic.LoadInt64(&m.TotalLatencyMs)) / float64(total)
	}

	m.mu.Lock()
	endpointCounts := make(map[string]int64, len(m.endpointCounts))
	for k, v := range m.endpointCounts {
		endpointCounts[k] = v
	}
	statusCodes := make(map[int]int64, len(m.statusCodes))
	for k, v := range m.statusCodes {
		statusCodes[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		TotalRequests:  total,
		ActiveRequests: atomic.LoadInt64(&m.ActiveRequests),
		TotalErrors:    atomic.LoadInt64(&m.TotalErrors),
		AvgLatencyMs:   avgLatency,
		MaxLatencyMs:   atomic.LoadInt64(&m.MaxLatencyMs),
		UptimeSeconds:  time.Since(m.StartTime).Seconds(),
		EndpointCounts: endpointCounts,
		StatusCodes:    statusCodes,
	}
}

// RegisterRoute exposes the snapshot at /metrics/requests.
func (m *Metrics) RegisterRoute(e *echo.Echo) {
	e.GET("/metrics/requests", func(c echo.Context) error {
		return c.JSON(http.StatusOK, m.Snapshot())
	})
}
