package zabbix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAverage(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7, "7.00"},
		{7.468, "7.47"},
		{0, "0.00"},
		{99.999, "100.00"},
		{12.3, "12.30"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatAverage(tc.in))
	}
}

func TestFormatRaw(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{60, "60.0"},
		{7.5, "7.5"},
		{0, "0.0"},
		{3.14159, "3.14159"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRaw(tc.in))
	}
}
