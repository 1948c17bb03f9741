// Package zabbix builds the low-level-discovery JSON documents
// consumed by the monitoring server. Every document is a single
// "data" array whose first element is a status row describing the
// run, followed by zero or more discovery rows.
package zabbix

import (
	"encoding/json"
)

// Discovery is the top-level LLD document.
type Discovery struct {
	Data []any `json:"data"`
}

// Wrap builds a Discovery for res followed by rows. The status row
// is always data[0].
func Wrap(info string, res Result, rows ...any) *Discovery {
	d := &Discovery{Data: make([]any, 0, len(rows)+1)}
	d.Data = append(d.Data, res.Status(info))
	d.Data = append(d.Data, rows...)
	return d
}

// MarshalCompact renders the document with no whitespace between
// tokens, the form the agent hands to the server.
func (d *Discovery) MarshalCompact() ([]byte, error) {
	return json.Marshal(d)
}

// Rows returns the discovery rows following the status row.
func (d *Discovery) Rows() []any {
	if len(d.Data) < 2 {
		return nil
	}
	return d.Data[1:]
}
