package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics mounts the Prometheus scrape endpoint at /metrics and returns
// the request metrics middleware. Collectors register once per process.
func InitMetrics(app *fiber.App, serviceName string) fiber.Handler {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	prom.RegisterAt(app, "/metrics")
	return prom.Middleware
}
