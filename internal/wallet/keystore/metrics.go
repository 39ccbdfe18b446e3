package keystore

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are package-level collectors registered by each NewService call
// against the prometheus.Registerer passed to it, so callers control where
// they land (a shared registry, a test-local one, or
// prometheus.DefaultRegisterer).
var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "keystore",
		Name:      "operations_total",
		Help:      "Total keystore Decrypt/Encrypt calls by operation and result.",
	}, []string{"operation", "result"})

	kdfDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "keystore",
		Name:      "kdf_duration_seconds",
		Help:      "Wall-clock time spent inside scrypt/pbkdf2.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"kdf"})
)

// registerMetrics registers this package's collectors against reg. It is
// idempotent per-registry: a collector already registered on reg (the
// common case when NewService is called more than once against the same
// registry, e.g. in tests) is left alone.
func registerMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		return nil
	}
	for _, c := range []prometheus.Collector{opsTotal, kdfDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
