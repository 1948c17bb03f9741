package zabbix

// BrokerMetricRow is one broker-level metric sample.
type BrokerMetricRow struct {
	Profile     string `json:"{#AWSPROFILE}"`
	Namespace   string `json:"{#NAMESPACE}"`
	ClusterName string `json:"{#CLUSTERNAME}"`
	BrokerName  string `json:"{#BROKERNAME}"`
	BrokerID    string `json:"{#BROKERID}"`
	MetricName  string `json:"{#METRICNAME}"`
	Value       string `json:"{#VALUE}"`
	MetricUnit  string `json:"{#METRICUNIT}"`
	ValueType   string `json:"{#VALUETYPE}"`
}

// ClusterSumRow is a cluster-level aggregate keyed by cluster name
// only; it never carries broker fields or a unit.
type ClusterSumRow struct {
	Profile     string `json:"{#AWSPROFILE}"`
	Namespace   string `json:"{#NAMESPACE}"`
	ClusterName string `json:"{#CLUSTERNAME}"`
	MetricName  string `json:"{#METRICNAME}"`
	Value       string `json:"{#VALUE}"`
	ValueType   string `json:"{#VALUETYPE}"`
}

// LegacyBrokerMetricRow is the older broker row scheme: no profile
// key and raw (unreformatted) values.
type LegacyBrokerMetricRow struct {
	Namespace   string `json:"{#NAMESPACE}"`
	ClusterName string `json:"{#CLUSTERNAME}"`
	BrokerName  string `json:"{#BROKERNAME}"`
	BrokerID    string `json:"{#BROKERID}"`
	MetricName  string `json:"{#METRICNAME}"`
	Value       string `json:"{#VALUE}"`
	MetricUnit  string `json:"{#METRICUNIT}"`
	ValueType   string `json:"{#VALUETYPE}"`
}

// LegacyClusterSumRow is the cluster aggregate in the older scheme.
type LegacyClusterSumRow struct {
	Namespace   string `json:"{#NAMESPACE}"`
	ClusterName string `json:"{#CLUSTERNAME}"`
	MetricName  string `json:"{#METRICNAME}"`
	Value       string `json:"{#VALUE}"`
	ValueType   string `json:"{#VALUETYPE}"`
}

// ClusterMetricRow uses the unprefixed CLUSTERMETRIC key scheme of
// the cluster items discovery.
type ClusterMetricRow struct {
	Profile       string `json:"{#AWSPROFILE}"`
	Namespace     string `json:"{#NAMESPACE}"`
	ClusterName   string `json:"{#CLUSTERNAME}"`
	ClusterMetric string `json:"CLUSTERMETRIC"`
	ClusterValue  string `json:"CLUSTERVALUE"`
	ValueType     string `json:"CLUSTERVALUETYPE"`
}

// ClusterHostRow identifies one cluster for host discovery.
type ClusterHostRow struct {
	Profile     string `json:"{#AWSPROFILE}"`
	Namespace   string `json:"{#NAMESPACE}"`
	ClusterName string `json:"{#CLUSTERNAME}"`
}
