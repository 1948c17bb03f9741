// Package discovery runs the MSK discovery jobs: enumerate clusters
// and brokers, fetch their CloudWatch metrics over the trailing
// minute, and shape the results into Zabbix discovery documents.
package discovery

import (
	"context"
	"fmt"

	"github.com/ctlops/zbxmsk/mskadmin"
	"github.com/ctlops/zbxmsk/mskmetrics"
	"github.com/ctlops/zbxmsk/zabbix"

	"github.com/sirupsen/logrus"
)

// Scheme selects the row naming variant a job emits.
type Scheme int

const (
	// SchemeBroker emits profile-prefixed broker rows plus one
	// summed cluster row per cluster.
	SchemeBroker Scheme = iota
	// SchemeLegacyBroker emits the older broker rows: no profile
	// key, raw endpoint names and unreformatted values.
	SchemeLegacyBroker
	// SchemeCluster emits CLUSTERMETRIC aggregate rows only.
	SchemeCluster
	// SchemeClusterHost emits bare cluster identity rows.
	SchemeClusterHost
)

// Job configures one discovery run.
type Job struct {
	// Info identifies the producer in the status row.
	Info    string
	Profile string
	// ClusterFilter retains only the named cluster when set.
	ClusterFilter string
	Metrics       []mskmetrics.Metric
	Scheme        Scheme
	// EmptyIsReview reports exit 2 when enumeration yields nothing
	// even without a filter.
	EmptyIsReview bool
}

// Runner binds jobs to their AWS collaborators.
type Runner struct {
	Admin   mskadmin.Client
	Metrics mskmetrics.Handler
	// Log receives run events when set.
	Log *logrus.Logger
}

func (r Runner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Infof(format, args...)
	}
}

// Run executes an envelope-emitting job. AWS failures never surface
// as errors: they become error envelopes, empty result sets become
// review envelopes.
func (r Runner) Run(ctx context.Context, j Job) *zabbix.Discovery {
	switch j.Scheme {
	case SchemeClusterHost:
		return r.runClusterHosts(ctx, j)
	case SchemeCluster:
		return r.runClusterMetrics(ctx, j)
	default:
		return r.runBrokerMetrics(ctx, j)
	}
}

func (r Runner) runBrokerMetrics(ctx context.Context, j Job) *zabbix.Discovery {
	snaps, err := r.CollectBrokers(ctx, j)
	if err != nil {
		return zabbix.Wrap(j.Info, zabbix.Err(err.Error()))
	}

	if len(snaps) == 0 {
		if j.ClusterFilter != "" || j.EmptyIsReview {
			msg := fmt.Sprintf("No se encontraron brokers para el cluster '%s'", j.ClusterFilter)
			return zabbix.Wrap(j.Info, zabbix.Review(msg))
		}
		return zabbix.Wrap(j.Info, zabbix.OK(0))
	}

	return ShapeBrokers(j, snaps)
}

func (r Runner) runClusterMetrics(ctx context.Context, j Job) *zabbix.Discovery {
	snaps, err := r.CollectClusters(ctx, j)
	if err != nil {
		return zabbix.Wrap(j.Info, zabbix.Err(err.Error()))
	}

	if len(snaps) == 0 {
		msg := fmt.Sprintf("No se encontraron clusters para el cluster '%s'", j.ClusterFilter)
		return zabbix.Wrap(j.Info, zabbix.Review(msg))
	}

	return ShapeClusterMetrics(j, snaps)
}

func (r Runner) runClusterHosts(ctx context.Context, j Job) *zabbix.Discovery {
	clusters, err := r.Admin.Clusters(ctx)
	if err != nil {
		return zabbix.Wrap(j.Info, zabbix.Err("Error obteniendo clusters: "+err.Error()))
	}

	if len(clusters) == 0 {
		return zabbix.Wrap(j.Info, zabbix.Review("No se encontraron clusters disponibles."))
	}

	if j.ClusterFilter != "" {
		clusters = mskadmin.FilterClusters(clusters, j.ClusterFilter)
	}
	if len(clusters) == 0 {
		return zabbix.Wrap(j.Info, zabbix.Review(""))
	}

	rows := make([]any, 0, len(clusters))
	for _, c := range clusters {
		rows = append(rows, zabbix.ClusterHostRow{
			Profile:     j.Profile,
			Namespace:   "AWS/Kafka",
			ClusterName: c.Name,
		})
	}

	// Host discovery reports clusters, not metrics.
	res := zabbix.OK(len(rows))
	res.Message = "Clusters obtenidos con exito."
	return zabbix.Wrap(j.Info, res, rows...)
}
