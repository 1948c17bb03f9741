package cloudwatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ctlops/zbxmsk/mskmetrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"
)

// queryID derives a GetMetricData query id from a metric name. Ids
// must begin with a lowercase letter.
func queryID(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// buildQueries expands q into one MetricDataQuery per metric. Every
// query carries the Cluster Name dimension; per-broker metrics add
// the Broker ID dimension.
func buildQueries(q mskmetrics.Query, period int32) []types.MetricDataQuery {
	queries := make([]types.MetricDataQuery, 0, len(q.Metrics))

	for _, m := range q.Metrics {
		dims := []types.Dimension{
			{Name: aws.String("Cluster Name"), Value: aws.String(q.ClusterName)},
		}
		if m.PerBroker {
			dims = append(dims, types.Dimension{
				Name:  aws.String("Broker ID"),
				Value: aws.String(strconv.Itoa(q.BrokerID)),
			})
		}

		queries = append(queries, types.MetricDataQuery{
			Id: aws.String(queryID(m.Name)),
			MetricStat: &types.MetricStat{
				Metric: &types.Metric{
					Namespace:  aws.String(namespace),
					MetricName: aws.String(m.Name),
					Dimensions: dims,
				},
				Period: aws.Int32(period),
				Stat:   aws.String(string(m.Stat)),
			},
			ReturnData: aws.Bool(true),
		})
	}

	return queries
}

// setFromResults maps result series back to metric names. Series
// with no datapoints produce no entry.
func setFromResults(q mskmetrics.Query, results []types.MetricDataResult) mskmetrics.Set {
	byID := make(map[string]mskmetrics.Metric, len(q.Metrics))
	for _, m := range q.Metrics {
		byID[queryID(m.Name)] = m
	}

	s := mskmetrics.Set{}
	for _, r := range results {
		m, ok := byID[aws.ToString(r.Id)]
		if !ok || len(r.Timestamps) == 0 {
			continue
		}

		pts := make([]mskmetrics.Point, 0, len(r.Timestamps))
		for i := range r.Timestamps {
			pts = append(pts, mskmetrics.Point{
				Timestamp: r.Timestamps[i],
				Value:     r.Values[i],
			})
		}
		s[m.Name] = pts
	}

	return s
}

// apiErrorMessage unpacks smithy operation errors into the service,
// operation and cause.
func apiErrorMessage(err error) string {
	var oe *smithy.OperationError
	if errors.As(err, &oe) {
		return fmt.Sprintf("%s %s: %v", oe.Service(), oe.Operation(), oe.Unwrap())
	}
	return err.Error()
}
