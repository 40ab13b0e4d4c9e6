package prom

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statDigests  = "jenkins_hash_digests_total"
	statErr      = "jenkins_hash_errors_total"
	statKeyBytes = "jenkins_hash_key_bytes"
	statVersions = "jenkins_version"
)

var (
	digests  *prometheus.CounterVec
	gerr     *prometheus.CounterVec
	keyBytes *prometheus.HistogramVec
	versions *prometheus.GaugeVec
	gatherer prometheus.Gatherer

	methodLabels    = []string{"method"}
	methodErrLabels = []string{"method", "error"}
	versionLabels   = []string{"version"}
	// On Prom switch
	On = true
)

// Init creates the collectors and registers them into reg.
// A nil reg uses the default prometheus registry.
func Init(reg *prometheus.Registry) {
	var (
		r prometheus.Registerer = prometheus.DefaultRegisterer
		g prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if reg != nil {
		r, g = reg, reg
	}
	digests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: statDigests,
			Help: "digests computed per hash method",
		}, methodLabels)
	gerr = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: statErr,
			Help: "rejected hash requests per hash method",
		}, methodErrLabels)
	keyBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    statKeyBytes,
			Help:    "size of hashed keys in bytes",
			Buckets: []float64{8, 32, 128, 512, 4096, 65536},
		}, methodLabels)
	versions = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: statVersions,
			Help: statVersions,
		}, versionLabels)
	r.MustRegister(digests, gerr, keyBytes, versions)
	gatherer = g
	On = true
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	if gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// DigestIncr records one digest over a key of n bytes.
func DigestIncr(method string, n int) {
	if !On || digests == nil {
		return
	}
	digests.WithLabelValues(method).Inc()
	keyBytes.WithLabelValues(method).Observe(float64(n))
}

// ErrIncr increments one stat error counter.
func ErrIncr(method, err string) {
	if !On || gerr == nil {
		return
	}
	gerr.WithLabelValues(method, err).Inc()
}

// VersionState set current version state.
func VersionState(version string) {
	if !On || versions == nil {
		return
	}
	versions.WithLabelValues(version).Set(1)
}
