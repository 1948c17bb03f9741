package discovery

import (
	"strconv"

	"github.com/ctlops/zbxmsk/mskadmin"
	"github.com/ctlops/zbxmsk/mskmetrics"
	"github.com/ctlops/zbxmsk/zabbix"
)

// rowNamespace is the namespace value carried by metric rows.
const rowNamespace = "Kafka"

// ShapeBrokers flattens broker snapshots into a discovery document
// for j: one row per broker-level sample, then one summed
// offlinePartitionsCount row per cluster. The status row reports
// the number of rows that follow it.
func ShapeBrokers(j Job, snaps []BrokerSnapshot) *zabbix.Discovery {
	var rows []any
	offline := map[string]float64{}
	var clusterOrder []string

	for _, s := range snaps {
		for _, m := range j.Metrics {
			pts := s.Metrics[snapshotKey(m)]

			if m.Name == mskmetrics.OfflinePartitionsCount.Name {
				// Cluster aggregates are accumulated, never emitted
				// per broker. Clusters with no datapoints still get
				// a zero row.
				if _, seen := offline[s.ClusterName]; !seen {
					clusterOrder = append(clusterOrder, s.ClusterName)
					offline[s.ClusterName] = 0
				}
				for _, p := range pts {
					offline[s.ClusterName] += p.Average
				}
				continue
			}

			for _, p := range pts {
				rows = append(rows, brokerRow(j, s, m, p))
			}
		}
	}

	for _, name := range clusterOrder {
		rows = append(rows, clusterSumRow(j, name, offline[name]))
	}

	return zabbix.Wrap(j.Info, zabbix.OK(len(rows)), rows...)
}

func brokerRow(j Job, s BrokerSnapshot, m mskmetrics.Metric, p SamplePoint) any {
	if j.Scheme == SchemeLegacyBroker {
		return zabbix.LegacyBrokerMetricRow{
			Namespace:   rowNamespace,
			ClusterName: s.ClusterName,
			BrokerName:  s.BrokerName,
			BrokerID:    strconv.Itoa(s.BrokerID),
			MetricName:  m.Name,
			Value:       zabbix.FormatRaw(p.Average),
			MetricUnit:  m.Unit,
			ValueType:   string(m.Stat),
		}
	}

	return zabbix.BrokerMetricRow{
		Profile:     j.Profile,
		Namespace:   rowNamespace,
		ClusterName: s.ClusterName,
		BrokerName:  mskadmin.FormatBrokerName(s.BrokerName),
		BrokerID:    strconv.Itoa(s.BrokerID),
		MetricName:  m.Name,
		Value:       zabbix.FormatAverage(p.Average),
		MetricUnit:  m.Unit,
		ValueType:   string(m.Stat),
	}
}

func clusterSumRow(j Job, cluster string, total float64) any {
	if j.Scheme == SchemeLegacyBroker {
		return zabbix.LegacyClusterSumRow{
			Namespace:   rowNamespace,
			ClusterName: cluster,
			MetricName:  offlineKey,
			Value:       zabbix.FormatRaw(total),
			ValueType:   string(mskmetrics.StatSum),
		}
	}

	return zabbix.ClusterSumRow{
		Profile:     j.Profile,
		Namespace:   rowNamespace,
		ClusterName: cluster,
		MetricName:  offlineKey,
		Value:       zabbix.FormatAverage(total),
		ValueType:   string(mskmetrics.StatSum),
	}
}

// ShapeClusterMetrics turns cluster snapshots into CLUSTERMETRIC
// aggregate rows, one per cluster. Only the most recent sample of
// the series is reported; a lookback window straddling two
// datapoint buckets must not double-count.
func ShapeClusterMetrics(j Job, snaps []ClusterSnapshot) *zabbix.Discovery {
	rows := make([]any, 0, len(snaps))

	for _, s := range snaps {
		var value float64
		if pts := s.MetricsCluster[mskmetrics.OfflinePartitionsCount.Name]; len(pts) > 0 {
			value = pts[len(pts)-1].Sum
		}

		rows = append(rows, zabbix.ClusterMetricRow{
			Profile:       j.Profile,
			Namespace:     rowNamespace,
			ClusterName:   s.ClusterName,
			ClusterMetric: offlineKey,
			ClusterValue:  zabbix.FormatAverage(value),
			ValueType:     string(mskmetrics.StatSum),
		})
	}

	return zabbix.Wrap(j.Info, zabbix.OK(len(rows)), rows...)
}
