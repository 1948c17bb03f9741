package mskadmin

import (
	"context"
)

// Stub is a canned Client for tests.
type Stub struct {
	ClusterList []Cluster
	// NodeLists is keyed by cluster ARN.
	NodeLists map[string][]Broker
	// Err, if set, is returned by every call.
	Err error
}

// Clusters returns the canned cluster list.
func (s *Stub) Clusters(_ context.Context) ([]Cluster, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ClusterList, nil
}

// Brokers returns the canned node list for c.
func (s *Stub) Brokers(_ context.Context, c Cluster) ([]Broker, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.NodeLists[c.ARN], nil
}
