package mskadmin

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kafka"
	"github.com/aws/aws-sdk-go-v2/service/kafka/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafkaAPI struct {
	clusterPages []*kafka.ListClustersOutput
	nodePages    map[string][]*kafka.ListNodesOutput
	err          error

	clusterCalls int
	nodeCalls    map[string]int
}

func (f *fakeKafkaAPI) ListClusters(_ context.Context, _ *kafka.ListClustersInput, _ ...func(*kafka.Options)) (*kafka.ListClustersOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	page := f.clusterPages[f.clusterCalls]
	f.clusterCalls++
	return page, nil
}

func (f *fakeKafkaAPI) ListNodes(_ context.Context, params *kafka.ListNodesInput, _ ...func(*kafka.Options)) (*kafka.ListNodesOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.nodeCalls == nil {
		f.nodeCalls = map[string]int{}
	}
	arn := aws.ToString(params.ClusterArn)
	page := f.nodePages[arn][f.nodeCalls[arn]]
	f.nodeCalls[arn]++
	return page, nil
}

func TestClustersPagination(t *testing.T) {
	f := &fakeKafkaAPI{
		clusterPages: []*kafka.ListClustersOutput{
			{
				ClusterInfoList: []types.ClusterInfo{
					{ClusterName: aws.String("c1"), ClusterArn: aws.String("arn:1")},
				},
				NextToken: aws.String("t1"),
			},
			{
				ClusterInfoList: []types.ClusterInfo{
					{ClusterName: aws.String("c2"), ClusterArn: aws.String("arn:2")},
				},
			},
		},
	}
	c := client{c: f}

	got, err := c.Clusters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Cluster{
		{Name: "c1", ARN: "arn:1"},
		{Name: "c2", ARN: "arn:2"},
	}, got)
	assert.Equal(t, 2, f.clusterCalls)
}

func TestClustersError(t *testing.T) {
	c := client{c: &fakeKafkaAPI{err: errors.New("denied")}}

	_, err := c.Clusters(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "list clusters", apiErr.Request)
	assert.Contains(t, apiErr.Message, "denied")
}

func TestBrokersFieldMapping(t *testing.T) {
	f := &fakeKafkaAPI{
		nodePages: map[string][]*kafka.ListNodesOutput{
			"arn:1": {
				{
					NodeInfoList: []types.NodeInfo{
						{
							BrokerNodeInfo: &types.BrokerNodeInfo{
								BrokerId:  aws.Float64(1),
								Endpoints: []string{"b-1.c1.abc123.kafka.us-east-1.amazonaws.com"},
							},
							InstanceType: aws.String("kafka.m5.large"),
						},
						// No endpoints and no instance type.
						{
							BrokerNodeInfo: &types.BrokerNodeInfo{
								BrokerId: aws.Float64(2),
							},
						},
						// Zookeeper nodes carry no broker info.
						{},
					},
				},
			},
		},
	}
	c := client{c: f}

	got, err := c.Brokers(context.Background(), Cluster{Name: "c1", ARN: "arn:1"})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, Broker{
		ClusterName:  "c1",
		ID:           1,
		Name:         "b-1.c1.abc123.kafka.us-east-1.amazonaws.com",
		InstanceType: "kafka.m5.large",
	}, got[0])
	assert.Equal(t, Broker{
		ClusterName:  "c1",
		ID:           2,
		Name:         "N/A",
		InstanceType: "N/A",
	}, got[1])
}
