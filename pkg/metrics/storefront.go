package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records assistant relay and catalog activity.
type StorefrontMetrics struct {
	chatLatency      *prometheus.HistogramVec
	chatOutcomes     *prometheus.CounterVec
	catalogMutations *prometheus.CounterVec
	bannerRotations  prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	chatLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chat_relay_duration_seconds",
		Help:    "Duration of assistant relay calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	chatOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_relay_total",
		Help: "Assistant relay calls by outcome.",
	}, []string{"outcome"})
	catalogMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_mutations_total",
		Help: "Catalog writes by action.",
	}, []string{"action"})
	bannerRotations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "banner_rotations_total",
		Help: "Completed hero banner rotations.",
	})
	reg.MustRegister(chatLatency, chatOutcomes, catalogMutations, bannerRotations)
	return &StorefrontMetrics{
		chatLatency:      chatLatency,
		chatOutcomes:     chatOutcomes,
		catalogMutations: catalogMutations,
		bannerRotations:  bannerRotations,
	}
}

// ObserveChatRelay records one assistant relay call with its outcome.
func (m *StorefrontMetrics) ObserveChatRelay(outcome string, duration time.Duration) {
	if m == nil || m.chatOutcomes == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.chatOutcomes.WithLabelValues(label).Inc()
	m.chatLatency.WithLabelValues(label).Observe(duration.Seconds())
}

// IncCatalogMutation increments the catalog write counter for the named action.
func (m *StorefrontMetrics) IncCatalogMutation(action string) {
	if m == nil || m.catalogMutations == nil {
		return
	}
	m.catalogMutations.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncBannerRotation counts one completed hero banner rotation.
func (m *StorefrontMetrics) IncBannerRotation() {
	if m == nil || m.bannerRotations == nil {
		return
	}
	m.bannerRotations.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
