// Package mskmetrics fetches MSK broker and cluster metrics from
// supported metrics backends.
package mskmetrics

import (
	"context"
	"time"
)

// Handler requests metric samples for one cluster or broker.
type Handler interface {
	GetMetrics(ctx context.Context, q Query) (Set, error)
}

// Stat is the aggregation applied over the lookback window.
type Stat string

const (
	StatAverage Stat = "Average"
	StatSum     Stat = "Sum"
)

// Metric describes one AWS/Kafka metric of interest.
type Metric struct {
	// Name is the CloudWatch metric name.
	Name string
	// Unit is the display unit attached to emitted rows.
	Unit string
	// Stat selects the aggregation for the metric.
	Stat Stat
	// PerBroker metrics carry a Broker ID dimension; the rest are
	// scoped to the whole cluster.
	PerBroker bool
}

// Metrics collected by the discovery commands.
var (
	CpuUser                = Metric{Name: "CpuUser", Unit: "%", Stat: StatAverage, PerBroker: true}
	KafkaDataLogsDiskUsed  = Metric{Name: "KafkaDataLogsDiskUsed", Unit: "%", Stat: StatAverage, PerBroker: true}
	OfflinePartitionsCount = Metric{Name: "OfflinePartitionsCount", Unit: "Count", Stat: StatSum}
)

// Point is a single metric sample.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// Set maps metric names to their samples, most recent last. Metrics
// that returned no data have no entry.
type Set map[string][]Point

// Last returns the most recent sample for metric name.
func (s Set) Last(name string) (Point, bool) {
	pts := s[name]
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// Query scopes a GetMetrics call to one cluster and, for per-broker
// metrics, one broker.
type Query struct {
	ClusterName string
	BrokerID    int
	Metrics     []Metric
}
