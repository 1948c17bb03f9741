package zabbix

import (
	"math"
	"strconv"
)

// FormatAverage renders v with exactly two decimal places, the
// form used for average-type metric values.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatRaw renders v the way the legacy scripts serialized floats:
// integral values keep one decimal ("60.0"), everything else uses
// the shortest exact form.
func FormatRaw(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
