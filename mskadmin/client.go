package mskadmin

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kafka"
)

// absent marks fields the control plane did not report.
const absent = "N/A"

// Config holds Client configuration parameters.
type Config struct {
	// Profile is the shared-config AWS profile name.
	Profile string
	// Region optionally overrides the profile's region.
	Region string
}

// kafkaAPI is the subset of the MSK client in use.
type kafkaAPI interface {
	kafka.ListClustersAPIClient
	kafka.ListNodesAPIClient
}

type client struct {
	c kafkaAPI
}

// NewClient takes a Config and returns a Client authenticated via
// the named profile, along with any credential resolution errors.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithSharedConfigProfile(cfg.Profile),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	acfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &APIError{Request: "load aws config", Message: err.Error()}
	}

	return client{c: kafka.NewFromConfig(acfg)}, nil
}

// Clusters lists every cluster visible to the profile.
func (c client) Clusters(ctx context.Context) ([]Cluster, error) {
	var out []Cluster

	p := kafka.NewListClustersPaginator(c.c, &kafka.ListClustersInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, &APIError{Request: "list clusters", Message: apiErrorMessage(err)}
		}
		for _, ci := range page.ClusterInfoList {
			out = append(out, Cluster{
				Name: aws.ToString(ci.ClusterName),
				ARN:  aws.ToString(ci.ClusterArn),
			})
		}
	}

	return out, nil
}

// Brokers lists the broker nodes of cl.
func (c client) Brokers(ctx context.Context, cl Cluster) ([]Broker, error) {
	var out []Broker

	p := kafka.NewListNodesPaginator(c.c, &kafka.ListNodesInput{
		ClusterArn: aws.String(cl.ARN),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, &APIError{Request: "list nodes", Message: apiErrorMessage(err)}
		}
		for _, n := range page.NodeInfoList {
			bni := n.BrokerNodeInfo
			if bni == nil {
				continue
			}

			b := Broker{
				ClusterName:  cl.Name,
				ID:           int(aws.ToFloat64(bni.BrokerId)),
				Name:         absent,
				InstanceType: absent,
			}
			if len(bni.Endpoints) > 0 {
				b.Name = bni.Endpoints[0]
			}
			if it := aws.ToString(n.InstanceType); it != "" {
				b.InstanceType = it
			}

			out = append(out, b)
		}
	}

	return out, nil
}
