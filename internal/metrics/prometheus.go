package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rightsguard_generation_duration_seconds",
			Help:    "Guide and script generation duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"kind"},
	)

	GenerationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_generation_total",
			Help: "Generations by kind and outcome (generated or fallback)",
		},
		[]string{"kind", "outcome"},
	)

	FallbackSections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_guide_fallback_sections_total",
			Help: "Guide sections replaced by default content",
		},
		[]string{"section"},
	)

	LLMTokensUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_llm_tokens_used",
			Help: "Total LLM tokens used",
		},
		[]string{"model", "type"},
	)

	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_llm_requests_total",
			Help: "Completion requests by status",
		},
		[]string{"status"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_cache_hits_total",
			Help: "Total cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_cache_misses_total",
			Help: "Total cache misses",
		},
		[]string{"cache_type"},
	)

	AlertsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rightsguard_alerts_sent_total",
			Help: "Emergency alerts raised",
		},
	)

	AlertDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rightsguard_alert_deliveries_total",
			Help: "Per-contact alert deliveries by status",
		},
		[]string{"status"},
	)

	IncidentsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rightsguard_incidents_active",
			Help: "Incidents started and not yet stopped",
		},
	)
)

var collectors = []prometheus.Collector{
	GenerationDuration,
	GenerationTotal,
	FallbackSections,
	LLMTokensUsed,
	LLMRequests,
	CacheHits,
	CacheMisses,
	AlertsSent,
	AlertDeliveries,
	IncidentsActive,
}

var initOnce sync.Once

// Init registers every collector with the default registry. Safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		Register(prometheus.DefaultRegisterer)
	})
}

func Register(reg prometheus.Registerer) {
	for _, c := range collectors {
		reg.MustRegister(c)
	}
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
