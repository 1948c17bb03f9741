package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args        []string
		withCluster bool
		want        runArgs
	}{
		{[]string{"prod"}, true, runArgs{Profile: "prod", Account: "AWS"}},
		{[]string{"prod", "alpha"}, true, runArgs{Profile: "prod", Cluster: "alpha", Account: "AWS"}},
		{[]string{"prod", "alpha", "acct"}, true, runArgs{Profile: "prod", Cluster: "alpha", Account: "acct"}},
		{[]string{"prod", "acct"}, false, runArgs{Profile: "prod", Account: "acct"}},
		{nil, true, runArgs{Account: "AWS"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseArgs(tt.args, tt.withCluster))
	}
}

func TestStatusInfo(t *testing.T) {
	assert.Equal(t, "zbxmsk brokers prod Kafka", statusInfo(brokersCmd, "prod"))
	assert.Equal(t, "zbxmsk cluster-items prod Kafka", statusInfo(clusterItemsCmd, "prod"))
}
