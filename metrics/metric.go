package metrics

import (
	grpcprometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Registry = prometheus.NewRegistry()

	GRPCMetrics = grpcprometheus.NewServerMetrics(
		func(c *prometheus.CounterOpts) {
			c.Namespace = "TripleKV"
		},
	)

	MainHeaderUsedSlots = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "TripleKV",
		Name:      "main_header_used_slots",
		Help:      "occupied data slots in the main header",
	})
	ExtHeaderUsedSlots = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "TripleKV",
		Name:      "ext_header_used_slots",
		Help:      "occupied data slots in the overflow header",
	})
	ExtHeaderAllocatedBuckets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "TripleKV",
		Name:      "ext_header_allocated_buckets",
		Help:      "overflow buckets claimed by chains",
	})
	EntryRegionUsed = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "TripleKV",
		Name:      "entry_region_used",
		Help:      "entries allocated in the entry region",
	})

	RemoteReadsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "TripleKV",
		Name:      "remote_reads_served",
		Help:      "region reads served to remote peers",
	})
	RemoteReadBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "TripleKV",
		Name:      "remote_read_bytes",
		Help:      "region bytes served to remote peers",
	})
)

func init() {
	Registry.MustRegister(
		GRPCMetrics,
		MainHeaderUsedSlots,
		ExtHeaderUsedSlots,
		ExtHeaderAllocatedBuckets,
		EntryRegionUsed,
		RemoteReadsServed,
		RemoteReadBytes,
	)
	GRPCMetrics.EnableHandlingTimeHistogram(
		func(h *prometheus.HistogramOpts) {
			h.Namespace = "TripleKV"
		},
	)
}
