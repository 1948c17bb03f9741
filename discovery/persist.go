package discovery

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ctlops/zbxmsk/persist"
	"github.com/ctlops/zbxmsk/zabbix"
)

var brokerCSVHeader = []string{"Namespace", "ClusterName", "BrokerName", "BrokerID", "MetricName", "Dimensions", "Value"}

var clusterCSVHeader = []string{"Namespace", "MetricName", "Dimensions", "Value", "Sum"}

// WriteBrokerCSV dumps broker snapshots to the store's CSV path
// using ':' as the delimiter. Rows carry more fields than the
// header names, the format consumers already parse.
func WriteBrokerCSV(s persist.Store, profile, tag string, snaps []BrokerSnapshot) (string, error) {
	var records [][]string
	for _, snap := range snaps {
		id := strconv.Itoa(snap.BrokerID)
		names := make([]string, 0, len(snap.Metrics))
		for name := range snap.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pts := snap.Metrics[name]
			dims := fmt.Sprintf("#NAMESPACE:%s:#CLUSTERNAME:%s:#BROKERNAME:%s:#BROKERID:%s:#METRICNAME:%s",
				rowNamespace, snap.ClusterName, snap.BrokerName, id, name)
			for _, p := range pts {
				v := zabbix.FormatRaw(p.Average)
				records = append(records, []string{
					rowNamespace, snap.ClusterName, snap.BrokerName, id, name,
					v, dims, v, "#METRICUNIT:%", "#VALUETYPE:Average",
				})
			}
		}
	}

	return s.WriteCSV(profile, tag, ':', brokerCSVHeader, records)
}

// WriteClusterCSV dumps the offline partition sums from cluster
// snapshots to the store's CSV path using ';' as the delimiter.
func WriteClusterCSV(s persist.Store, profile, tag string, snaps []ClusterSnapshot) (string, error) {
	var records [][]string
	for _, snap := range snaps {
		for _, p := range snap.MetricsCluster["OfflinePartitionsCount"] {
			records = append(records, []string{
				"AWS/Kafka", "OfflinePartitionsCount", "ClusterName",
				snap.ClusterName, zabbix.FormatRaw(p.Sum),
			})
		}
	}

	return s.WriteCSV(profile, tag, ';', clusterCSVHeader, records)
}
