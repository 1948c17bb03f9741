package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ctlops/zbxmsk/discovery"
	"github.com/ctlops/zbxmsk/mskmetrics"
	"github.com/ctlops/zbxmsk/persist"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// dumpTag names the cluster dump artifacts: <profile>.Kafka.Cluster
// under dbs/, Kafka.Cluster in the daily log file name.
const dumpTag = "Kafka.Cluster"

var clusterDumpCmd = &cobra.Command{
	Use:   "cluster-dump <aws_profile> [aws_account]",
	Short: "Dump full cluster metric documents and persist JSON/CSV artifacts",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runClusterDump,
}

func init() {
	rootCmd.AddCommand(clusterDumpCmd)
}

func runClusterDump(cmd *cobra.Command, args []string) {
	ra := parseArgs(args, false)
	ctx := cmd.Context()
	base := baseDir(cmd)

	// The dump log is regenerated on every run.
	log, closeLog, err := persist.OpenDailyLog(base, "script_"+dumpTag, true)
	if err != nil {
		logrus.Warnf("no se pudo abrir el log: %v", err)
		log = logrus.New()
		log.SetOutput(io.Discard)
		closeLog = func() error { return nil }
	}
	defer closeLog()

	log.Info("Inicio del script")

	if !checkTools() {
		log.Info("Error: Comandos necesarios no encontrados.")
		closeLog()
		os.Exit(1)
	}

	r, err := newRunner(ctx, cmd, ra.Profile)
	if err != nil {
		fmt.Println(err)
		log.Infof("Error obteniendo clusters: %v", err)
		return
	}
	r.Log = log

	snaps, err := r.CollectClusters(ctx, discovery.Job{
		Metrics: []mskmetrics.Metric{mskmetrics.OfflinePartitionsCount},
	})
	if err != nil {
		fmt.Println(err)
		log.Infof("Error obteniendo clusters: %v", err)
		return
	}
	if snaps == nil {
		snaps = []discovery.ClusterSnapshot{}
	}

	b, err := json.MarshalIndent(snaps, "", "    ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(b))

	store := persist.Store{Base: base}
	if path, err := store.WriteJSON(ra.Profile, dumpTag, snaps); err != nil {
		log.Infof("Error guardando JSON en %s: %v", path, err)
	} else {
		log.Infof("Datos JSON guardados en %s", path)
	}
	if path, err := discovery.WriteClusterCSV(store, ra.Profile, dumpTag, snaps); err != nil {
		log.Infof("Error guardando CSV en %s: %v", path, err)
	} else {
		log.Infof("Datos CSV guardados en %s", path)
	}
}
