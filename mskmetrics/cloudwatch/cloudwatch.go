// Package cloudwatch implements a mskmetrics Handler over the
// CloudWatch GetMetricData API.
package cloudwatch

import (
	"context"
	"time"

	"github.com/ctlops/zbxmsk/mskmetrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

// namespace holds all MSK metrics.
const namespace = "AWS/Kafka"

const (
	defaultLookback = time.Minute
	defaultPeriod   = 60 * time.Second
)

// Config holds Handler configuration parameters.
type Config struct {
	// Profile is the shared-config AWS profile name.
	Profile string
	// Region optionally overrides the profile's region.
	Region string
	// Lookback is the trailing window each query evaluates.
	Lookback time.Duration
	// Period is the datapoint granularity.
	Period time.Duration
}

// api is the subset of the CloudWatch client in use.
type api interface {
	GetMetricData(ctx context.Context, params *cw.GetMetricDataInput, optFns ...func(*cw.Options)) (*cw.GetMetricDataOutput, error)
}

type cwHandler struct {
	c        api
	lookback time.Duration
	period   int32
	now      func() time.Time
}

// NewHandler takes a Config and returns a Handler authenticated via
// the named profile, along with any credential resolution errors.
func NewHandler(ctx context.Context, c Config) (mskmetrics.Handler, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithSharedConfigProfile(c.Profile),
	}
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}

	acfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &mskmetrics.APIError{
			Request: "load aws config",
			Message: err.Error(),
		}
	}

	lookback := c.Lookback
	if lookback <= 0 {
		lookback = defaultLookback
	}
	period := c.Period
	if period <= 0 {
		period = defaultPeriod
	}

	return &cwHandler{
		c:        cw.NewFromConfig(acfg),
		lookback: lookback,
		period:   int32(period.Seconds()),
		now:      time.Now,
	}, nil
}

// GetMetrics submits one GetMetricData call covering every metric in
// q over the trailing lookback window and returns the series keyed
// by metric name.
func (h *cwHandler) GetMetrics(ctx context.Context, q mskmetrics.Query) (mskmetrics.Set, error) {
	end := h.now().UTC()

	out, err := h.c.GetMetricData(ctx, &cw.GetMetricDataInput{
		StartTime:         aws.Time(end.Add(-h.lookback)),
		EndTime:           aws.Time(end),
		MetricDataQueries: buildQueries(q, h.period),
	})
	if err != nil {
		return nil, &mskmetrics.APIError{
			Request: "metric data query",
			Message: apiErrorMessage(err),
		}
	}

	return setFromResults(q, out.MetricDataResults), nil
}
