//go:build stats

package stats

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// promRecorder is the prometheus.Collector-backed Recorder compiled in
// under the "stats" build tag.
type promRecorder struct {
	relabels     prometheus.Counter
	refines      prometheus.Counter
	badPriceins  prometheus.Counter
	badRelabels  prometheus.Counter
	priceUpdates prometheus.Counter
	refineTime   prometheus.Histogram
}

// New builds a Recorder whose metric names are prefixed with
// namespace/subsystem. It does not register them with any registry.
func New(namespace, subsystem string) Recorder {
	fq := func(name string) string { return prometheus.BuildFQName(namespace, subsystem, name) }
	return &promRecorder{
		relabels:     prometheus.NewCounter(prometheus.CounterOpts{Name: fq("relabels_total"), Help: "Number of relabel operations (n_rel)."}),
		refines:      prometheus.NewCounter(prometheus.CounterOpts{Name: fq("refines_total"), Help: "Number of refine phases (n_ref)."}),
		badPriceins:  prometheus.NewCounter(prometheus.CounterOpts{Name: fq("bad_priceins_total"), Help: "Unproductive price_in attempts (n_bad_pricein)."}),
		badRelabels:  prometheus.NewCounter(prometheus.CounterOpts{Name: fq("bad_relabels_total"), Help: "Unproductive relabels (n_bad_relabel)."}),
		priceUpdates: prometheus.NewCounter(prometheus.CounterOpts{Name: fq("price_updates_total"), Help: "Global price_update invocations (n_src)."}),
		refineTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    fq("refine_duration_seconds"),
			Help:    "CPU time spent per refine phase.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Describe implements prometheus.Collector.
func (r *promRecorder) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(r, ch)
}

// Collect implements prometheus.Collector.
func (r *promRecorder) Collect(ch chan<- prometheus.Metric) {
	r.relabels.Collect(ch)
	r.refines.Collect(ch)
	r.badPriceins.Collect(ch)
	r.badRelabels.Collect(ch)
	r.priceUpdates.Collect(ch)
	r.refineTime.Collect(ch)
}

func (r *promRecorder) Relabel()     { r.relabels.Inc() }
func (r *promRecorder) Refine()      { r.refines.Inc() }
func (r *promRecorder) BadPricein()  { r.badPriceins.Inc() }
func (r *promRecorder) BadRelabel()  { r.badRelabels.Inc() }
func (r *promRecorder) PriceUpdate() { r.priceUpdates.Inc() }

func (r *promRecorder) ObserveRefineDuration(d time.Duration) {
	r.refineTime.Observe(d.Seconds())
}
