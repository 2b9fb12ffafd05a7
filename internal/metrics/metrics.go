package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Metrics struct {
	registry *prometheus.Registry

	AttendanceScans  *prometheus.CounterVec
	JournalToggles   *prometheus.CounterVec
	BotUpdates       *prometheus.CounterVec
	AdminActions     *prometheus.CounterVec
	GeofenceDistance prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AttendanceScans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ramadhan_attendance_scans_total",
				Help: "Attendance scans by session kind and result",
			},
			[]string{"session", "result"},
		),
		JournalToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ramadhan_journal_toggles_total",
				Help: "Journal checklist toggles by item",
			},
			[]string{"item"},
		),
		BotUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ramadhan_bot_updates_total",
				Help: "Telegram updates handled, by kind",
			},
			[]string{"kind"},
		),
		AdminActions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ramadhan_admin_actions_total",
				Help: "Panitia and admin actions by kind",
			},
			[]string{"action"},
		),
		GeofenceDistance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ramadhan_geofence_distance_meters",
			Help:    "Distance between the scanner and the masjid at scan time",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 5000, 25000},
		}),
	}
	m.registry.MustRegister(m.AttendanceScans, m.JournalToggles, m.BotUpdates, m.AdminActions, m.GeofenceDistance)
	return m
}

func (m *Metrics) Handler(user, pass string) http.Handler {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	if user == "" && pass == "" {
		return h
	}
	return basicAuth(h, user, pass)
}

func basicAuth(next http.Handler, user, pass string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Serve membuka /metrics di addr sampai server gagal.
func (m *Metrics) Serve(addr, user, pass string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler(user, pass))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("Metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("Metrics server stopped", zap.Error(err))
	}
}
