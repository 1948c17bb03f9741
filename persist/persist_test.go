package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePaths(t *testing.T) {
	s := Store{Base: "/base"}

	assert.Equal(t, "/base/dbs/queries/prod.Kafka.queries.json", s.QueriesPath("prod", "Kafka"))
	assert.Equal(t, "/base/dbs/csv/prod.Kafka.Cluster.metrics.csv", s.CSVPath("prod", "Kafka.Cluster"))
}

func TestWriteJSON(t *testing.T) {
	s := Store{Base: t.TempDir()}

	path, err := s.WriteJSON("prod", "Kafka", map[string]string{"ClusterName": "c1"})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"ClusterName\": \"c1\"\n}", string(b))
}

func TestWriteCSV(t *testing.T) {
	s := Store{Base: t.TempDir()}

	path, err := s.WriteCSV("prod", "Kafka.Cluster", ';',
		[]string{"Namespace", "MetricName", "Dimensions", "Value", "Sum"},
		[][]string{{"AWS/Kafka", "OfflinePartitionsCount", "ClusterName", "c1", "0"}},
	)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Namespace;MetricName;Dimensions;Value;Sum\nAWS/Kafka;OfflinePartitionsCount;ClusterName;c1;0\n", string(b))
}

func TestBaseDirFallback(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, BaseDir(dir))

	// A missing directory falls back to the executable's directory.
	got := BaseDir(filepath.Join(dir, "missing"))
	assert.NotEqual(t, filepath.Join(dir, "missing"), got)
	assert.NotEmpty(t, got)
}

func TestOpenDailyLog(t *testing.T) {
	base := t.TempDir()

	l, closeLog, err := OpenDailyLog(base, "zbxmsk.cluster-dump", true)
	require.NoError(t, err)

	l.Info("Inicio del script")
	require.NoError(t, closeLog())

	entries, err := os.ReadDir(filepath.Join(base, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	b, err := os.ReadFile(filepath.Join(base, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - Inicio del script\n$`, string(b))

	// Truncate mode regenerates the file on reopen.
	l2, closeLog2, err := OpenDailyLog(base, "zbxmsk.cluster-dump", true)
	require.NoError(t, err)
	l2.Info("segunda corrida")
	require.NoError(t, closeLog2())

	b, err = os.ReadFile(filepath.Join(base, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "Inicio del script")
	assert.Contains(t, string(b), "segunda corrida")
}
