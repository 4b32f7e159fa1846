package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors used to monitor the employees API:
// request counts and latencies per route, and database query latencies.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers every collector
// with reg.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_api_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_api_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employees_api_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_employees', 'create_employee', ...
		DBQueryErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employees_api_db_query_errors_total",
			Help: "Total number of failed database queries.",
		}, []string{"query_type"}),
	}
}

// ObserveQuery records the time elapsed since start for one query and,
// when err is not nil, counts the query as failed. A nil *Metrics is a
// no-op.
func (m *Metrics) ObserveQuery(queryType string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(queryType).Inc()
	}
}
