package overclock

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	gterrors "github.com/Alrightsc/gtnh-flow/pkg/errors"
	"github.com/Alrightsc/gtnh-flow/pkg/machine"
)

const resultSuccess = "success"

var (
	overclockTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtoc_overclock_total",
			Help: "Total number of recipe overclocks by family and result",
		},
		[]string{"family", "result"},
	)

	overclockDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gtoc_overclock_duration_seconds",
			Help:    "Time spent overclocking a single recipe",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"family"},
	)

	overclockParallel = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gtoc_overclock_parallel",
			Help:    "Parallel count chosen for successful overclocks",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	overclockSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gtoc_overclock_steps",
			Help:    "Overclock steps applied to successful overclocks",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		},
	)
)

func observe(family machine.Family, out outcome, err error, elapsed time.Duration) {
	overclockDuration.WithLabelValues(family.String()).Observe(elapsed.Seconds())
	if err != nil {
		overclockTotal.WithLabelValues(family.String(), resultLabel(err)).Inc()
		return
	}
	overclockTotal.WithLabelValues(family.String(), resultSuccess).Inc()
	overclockParallel.Observe(float64(out.parallel))
	overclockSteps.Observe(float64(out.steps))
}

func resultLabel(err error) string {
	code := gterrors.CodeOf(err)
	if code == "" {
		return "error"
	}
	return strings.ToLower(string(code))
}
