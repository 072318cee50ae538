package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ripple_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The collectors live on the default registry, so the instance is
// created once and shared; tests spinning up several servers reuse it.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware returns the request-metrics handler for the app.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}

// RegisterMetricsEndpoint exposes the scrape endpoint on the app.
func RegisterMetricsEndpoint(prom *fiberprometheus.FiberPrometheus, app *fiber.App, path string) {
	prom.RegisterAt(app, path)
}
