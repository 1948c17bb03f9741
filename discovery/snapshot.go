package discovery

import (
	"context"

	"github.com/ctlops/zbxmsk/mskadmin"
	"github.com/ctlops/zbxmsk/mskmetrics"
)

// timestampLayout is the sample timestamp format used in persisted
// documents.
const timestampLayout = "2006-01-02T15:04:05Z"

// offlineKey is how the offline partitions metric has always been
// recorded in broker documents and {#METRICNAME} values.
const offlineKey = "offlinePartitionsCount"

// snapshotKey is the metric key used in broker documents.
func snapshotKey(m mskmetrics.Metric) string {
	if m.Name == mskmetrics.OfflinePartitionsCount.Name {
		return offlineKey
	}
	return m.Name
}

// SamplePoint is one persisted broker-level sample.
type SamplePoint struct {
	Timestamp string  `json:"Timestamp"`
	Average   float64 `json:"Average"`
}

// BrokerSnapshot is the nested per-broker document persisted and
// flattened by the broker jobs.
type BrokerSnapshot struct {
	ClusterName string                   `json:"ClusterName"`
	BrokerID    int                      `json:"BrokerId"`
	BrokerName  string                   `json:"BrokerName"`
	Metrics     map[string][]SamplePoint `json:"Metrics"`
}

// ClusterSamplePoint is one persisted cluster-level sample.
type ClusterSamplePoint struct {
	Timestamp string  `json:"Timestamp"`
	Sum       float64 `json:"Sum"`
}

// ClusterBrokerRef names one broker inside a cluster document.
type ClusterBrokerRef struct {
	BrokerID   int    `json:"BrokerID"`
	BrokerName string `json:"BrokerName"`
}

// ClusterSnapshot is the nested per-cluster document produced by
// the cluster jobs.
type ClusterSnapshot struct {
	ClusterName    string                          `json:"ClusterName"`
	Brokers        []ClusterBrokerRef              `json:"Brokers,omitempty"`
	MetricsCluster map[string][]ClusterSamplePoint `json:"MetricsCluster"`
}

// CollectBrokers enumerates every broker visible to the job's
// profile, applies the cluster filter and fetches the job metrics
// for each broker, strictly sequentially.
func (r Runner) CollectBrokers(ctx context.Context, j Job) ([]BrokerSnapshot, error) {
	clusters, err := r.Admin.Clusters(ctx)
	if err != nil {
		return nil, err
	}

	var brokers []mskadmin.Broker
	for _, c := range clusters {
		bs, err := r.Admin.Brokers(ctx, c)
		if err != nil {
			return nil, err
		}
		brokers = append(brokers, bs...)
	}

	if j.ClusterFilter != "" {
		brokers = mskadmin.FilterBrokers(brokers, j.ClusterFilter)
	}

	var snaps []BrokerSnapshot
	for _, b := range brokers {
		set, err := r.Metrics.GetMetrics(ctx, mskmetrics.Query{
			ClusterName: b.ClusterName,
			BrokerID:    b.ID,
			Metrics:     j.Metrics,
		})
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, brokerSnapshot(b, j.Metrics, set))
	}

	return snaps, nil
}

// brokerSnapshot keeps only the most recent sample per metric, the
// value the discovery rows report.
func brokerSnapshot(b mskadmin.Broker, metrics []mskmetrics.Metric, set mskmetrics.Set) BrokerSnapshot {
	s := BrokerSnapshot{
		ClusterName: b.ClusterName,
		BrokerID:    b.ID,
		BrokerName:  b.Name,
		Metrics:     make(map[string][]SamplePoint, len(metrics)),
	}

	for _, m := range metrics {
		key := snapshotKey(m)
		s.Metrics[key] = []SamplePoint{}

		p, ok := set.Last(m.Name)
		if !ok {
			continue
		}
		s.Metrics[key] = append(s.Metrics[key], SamplePoint{
			Timestamp: p.Timestamp.UTC().Format(timestampLayout),
			Average:   p.Value,
		})
	}

	return s
}

// CollectClusters enumerates clusters, applies the filter, and
// fetches the job metrics plus the broker list for each cluster.
// Cluster documents keep the full returned series.
func (r Runner) CollectClusters(ctx context.Context, j Job) ([]ClusterSnapshot, error) {
	clusters, err := r.Admin.Clusters(ctx)
	if err != nil {
		return nil, err
	}

	if j.ClusterFilter != "" {
		clusters = mskadmin.FilterClusters(clusters, j.ClusterFilter)
	}

	var snaps []ClusterSnapshot
	for _, c := range clusters {
		set, err := r.Metrics.GetMetrics(ctx, mskmetrics.Query{
			ClusterName: c.Name,
			Metrics:     j.Metrics,
		})
		if err != nil {
			return nil, err
		}

		brokers, err := r.Admin.Brokers(ctx, c)
		if err != nil {
			return nil, err
		}

		snap := ClusterSnapshot{
			ClusterName:    c.Name,
			MetricsCluster: make(map[string][]ClusterSamplePoint, len(j.Metrics)),
		}
		for _, b := range brokers {
			snap.Brokers = append(snap.Brokers, ClusterBrokerRef{
				BrokerID:   b.ID,
				BrokerName: b.Name,
			})
		}
		for _, m := range j.Metrics {
			pts := []ClusterSamplePoint{}
			for _, p := range set[m.Name] {
				pts = append(pts, ClusterSamplePoint{
					Timestamp: p.Timestamp.UTC().Format(timestampLayout),
					Sum:       p.Value,
				})
			}
			snap.MetricsCluster[m.Name] = pts
		}

		snaps = append(snaps, snap)
		r.logf("Metricas obtenidas para el cluster: %s", c.Name)
	}

	return snaps, nil
}
