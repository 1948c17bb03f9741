package cloudwatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ctlops/zbxmsk/mskmetrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	in  *cw.GetMetricDataInput
	out *cw.GetMetricDataOutput
	err error
}

func (f *fakeAPI) GetMetricData(_ context.Context, params *cw.GetMetricDataInput, _ ...func(*cw.Options)) (*cw.GetMetricDataOutput, error) {
	f.in = params
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

var fixedNow = time.Date(2025, 5, 26, 12, 0, 0, 0, time.UTC)

func newTestHandler(f *fakeAPI) *cwHandler {
	return &cwHandler{
		c:        f,
		lookback: defaultLookback,
		period:   60,
		now:      func() time.Time { return fixedNow },
	}
}

func TestGetMetricsWindow(t *testing.T) {
	f := &fakeAPI{out: &cw.GetMetricDataOutput{}}
	h := newTestHandler(f)

	_, err := h.GetMetrics(context.Background(), mskmetrics.Query{
		ClusterName: "c1",
		BrokerID:    1,
		Metrics:     []mskmetrics.Metric{mskmetrics.CpuUser},
	})
	require.NoError(t, err)
	require.NotNil(t, f.in)

	assert.Equal(t, fixedNow, *f.in.EndTime)
	assert.Equal(t, fixedNow.Add(-time.Minute), *f.in.StartTime)
}

func TestGetMetricsError(t *testing.T) {
	f := &fakeAPI{err: errors.New("throttled")}
	h := newTestHandler(f)

	_, err := h.GetMetrics(context.Background(), mskmetrics.Query{
		ClusterName: "c1",
		Metrics:     []mskmetrics.Metric{mskmetrics.OfflinePartitionsCount},
	})

	var apiErr *mskmetrics.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "metric data query", apiErr.Request)
	assert.Contains(t, apiErr.Message, "throttled")
}

func TestGetMetricsLastSample(t *testing.T) {
	older := fixedNow.Add(-2 * time.Minute)
	newer := fixedNow.Add(-time.Minute)

	f := &fakeAPI{out: &cw.GetMetricDataOutput{
		MetricDataResults: []types.MetricDataResult{
			{
				Id:         aws.String("cpuUser"),
				Timestamps: []time.Time{older, newer},
				Values:     []float64{5.1, 7.468},
			},
			{
				Id: aws.String("kafkaDataLogsDiskUsed"),
			},
		},
	}}
	h := newTestHandler(f)

	s, err := h.GetMetrics(context.Background(), mskmetrics.Query{
		ClusterName: "c1",
		BrokerID:    2,
		Metrics: []mskmetrics.Metric{
			mskmetrics.CpuUser,
			mskmetrics.KafkaDataLogsDiskUsed,
		},
	})
	require.NoError(t, err)

	p, ok := s.Last(mskmetrics.CpuUser.Name)
	require.True(t, ok)
	assert.Equal(t, 7.468, p.Value)
	assert.Equal(t, newer, p.Timestamp)

	// Empty series never produce an entry.
	_, ok = s.Last(mskmetrics.KafkaDataLogsDiskUsed.Name)
	assert.False(t, ok)
}
