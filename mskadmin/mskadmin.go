// Package mskadmin wraps AWS MSK control-plane calls.
package mskadmin

import (
	"context"
)

// Client enumerates MSK clusters and broker nodes.
type Client interface {
	Clusters(ctx context.Context) ([]Cluster, error)
	Brokers(ctx context.Context, c Cluster) ([]Broker, error)
}

// Cluster identifies one MSK cluster. The ARN is only used to look
// up broker nodes and never emitted.
type Cluster struct {
	Name string
	ARN  string
}

// Broker holds metadata for one broker node.
type Broker struct {
	ClusterName string
	ID          int
	// Name is the raw first endpoint of the node.
	Name         string
	InstanceType string
}
