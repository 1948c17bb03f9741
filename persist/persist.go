// Package persist writes the optional JSON/CSV side artifacts and
// daily log files some discovery variants produce. All writes are
// best effort: callers log failures and continue.
package persist

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBaseDir is where the monitoring hosts install the
// integration.
const DefaultBaseDir = "/usr/lib/nagios/plugins/aws_integration"

// BaseDir returns dir when it exists, otherwise the directory of
// the running executable.
func BaseDir(dir string) string {
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Store resolves and writes artifacts under a base directory.
type Store struct {
	Base string
}

// QueriesPath is the JSON dump destination for profile and tag.
func (s Store) QueriesPath(profile, tag string) string {
	return filepath.Join(s.Base, "dbs", "queries", fmt.Sprintf("%s.%s.queries.json", profile, tag))
}

// CSVPath is the CSV dump destination for profile and tag.
func (s Store) CSVPath(profile, tag string) string {
	return filepath.Join(s.Base, "dbs", "csv", fmt.Sprintf("%s.%s.metrics.csv", profile, tag))
}

// WriteJSON dumps v indented to the queries path and returns it.
func (s Store) WriteJSON(profile, tag string, v any) (string, error) {
	path := s.QueriesPath(profile, tag)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, err
	}

	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return path, err
	}

	return path, os.WriteFile(path, b, 0o644)
}

// WriteCSV writes header followed by records to the CSV path using
// comma as the field delimiter, and returns the path.
func (s Store) WriteCSV(profile, tag string, comma rune, header []string, records [][]string) (string, error) {
	path := s.CSVPath(profile, tag)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, err
	}

	f, err := os.Create(path)
	if err != nil {
		return path, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma

	if err := w.Write(header); err != nil {
		return path, err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return path, err
		}
	}

	w.Flush()
	return path, w.Error()
}
