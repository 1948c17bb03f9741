package mskmetrics

import (
	"context"
	"time"
)

// Mock mocks the Handler interface.
type Mock struct {
	// Err, if set, is returned for every query.
	Err error
	// Empty, if set, returns sets with no samples.
	Empty bool
}

var mockTime = time.Date(2025, 5, 26, 12, 0, 0, 0, time.UTC)

// GetMetrics returns deterministic canned samples: average metrics
// scale with the broker ID, sum metrics are always 1.
func (m *Mock) GetMetrics(_ context.Context, q Query) (Set, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	s := Set{}
	if m.Empty {
		return s, nil
	}

	for _, metric := range q.Metrics {
		switch metric.Stat {
		case StatSum:
			s[metric.Name] = []Point{{Timestamp: mockTime, Value: 1}}
		default:
			s[metric.Name] = []Point{{Timestamp: mockTime, Value: 7.5 + float64(q.BrokerID)}}
		}
	}

	return s, nil
}
