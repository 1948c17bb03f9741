package mskadmin

import (
	"strings"
)

// FormatBrokerName trims a broker endpoint to its first two
// dot-separated segments for display. Names with fewer than three
// segments are returned unchanged.
func FormatBrokerName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) >= 3 {
		return strings.Join(parts[:2], ".")
	}
	return name
}

// FilterBrokers returns the brokers belonging to cluster name.
func FilterBrokers(brokers []Broker, name string) []Broker {
	var out []Broker
	for _, b := range brokers {
		if b.ClusterName == name {
			out = append(out, b)
		}
	}
	return out
}

// FilterClusters returns the clusters matching name exactly.
func FilterClusters(clusters []Cluster, name string) []Cluster {
	var out []Cluster
	for _, c := range clusters {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
