package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the fetch counters for the directory.
type Metrics struct {
	Fetches         *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	EmployeesLoaded prometheus.Gauge
	Reloads         prometheus.Counter
}

// NewMetrics registers the directory metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Fetches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staff_fetches_total",
			Help: "Employee list fetches by outcome.",
		}, []string{"status"}), // status: success, failure
		FetchDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "staff_fetch_duration_seconds",
			Help:    "Duration of one employee list fetch.",
			Buckets: prometheus.DefBuckets,
		}),
		EmployeesLoaded: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "staff_employees_loaded",
			Help: "Number of employees in the last successful fetch.",
		}),
		Reloads: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "staff_reloads_total",
			Help: "Reloads requested from the screen.",
		}),
	}

	m.Fetches.WithLabelValues("success")
	m.Fetches.WithLabelValues("failure")

	return m
}

// ObserveFetch records one fetch outcome. Safe on a nil receiver.
func (m *Metrics) ObserveFetch(start time.Time, n int, err error) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.Fetches.WithLabelValues("failure").Inc()
		return
	}
	m.Fetches.WithLabelValues("success").Inc()
	m.EmployeesLoaded.Set(float64(n))
}

// ObserveReload counts a user-triggered reload. Safe on a nil receiver.
func (m *Metrics) ObserveReload() {
	if m == nil {
		return
	}
	m.Reloads.Inc()
}

// Serve exposes reg on addr under /metrics until ctx is done.
func Serve(ctx context.Context, log *zap.Logger, reg *prometheus.Registry, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	readTO := 5
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: time.Duration(readTO) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownTO := 5
		sctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownTO)*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn("metrics server shutdown", zap.Error(err))
			return err
		}
		<-errCh
		return nil
	}
}
