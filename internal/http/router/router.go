// Package router wires the employee handlers, the health check and the
// metrics endpoint into one chi router.
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/employees-api/internal/http/handlers/employee"
	"github.com/aanand-mishra/employees-api/internal/metrics"
	"github.com/aanand-mishra/employees-api/internal/server"
	"github.com/aanand-mishra/employees-api/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// BasePath is the collection endpoint.
const BasePath = "/api/employees"

// New builds the HTTP handler.
//
// Route table:
//
//	GET    /api/employees        → list all employees
//	GET    /api/employees/{id}   → get one employee
//	POST   /api/employees        → create an employee
//	PUT    /api/employees/{id}   → replace an employee
//	DELETE /api/employees/{id}   → delete an employee
//	GET    /healthz              → store reachability
//	GET    /metrics              → Prometheus metrics (only when gatherer is not nil)
//
// m may be nil to disable request instrumentation.
func New(log *slog.Logger, store storage.Storage, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	// Recovery sits inside Logger and Instrument so recovered panics are
	// still logged and counted as 500s.
	r.Use(Logger(log))
	if m != nil {
		r.Use(Instrument(m))
	}
	r.Use(Recovery(log))
	r.Use(CORS)

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/", employee.GetList(log, store))
		r.Post("/", employee.New(log, store))
		r.Get("/{id}", employee.GetByID(log, store))
		r.Put("/{id}", employee.Update(log, store))
		r.Delete("/{id}", employee.Delete(log, store))
	})

	r.Method(http.MethodGet, "/healthz", server.NewHealthChecker(store, log))

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
