package commands

import (
	"os"

	"github.com/ctlops/zbxmsk/discovery"
	"github.com/ctlops/zbxmsk/mskmetrics"
	"github.com/ctlops/zbxmsk/persist"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var brokerItemsCmd = &cobra.Command{
	Use:   "broker-items <aws_profile> [aws_account]",
	Short: "Discover broker metrics in the legacy row scheme and persist JSON/CSV dumps",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runBrokerItems,
}

func init() {
	rootCmd.AddCommand(brokerItemsCmd)
}

func runBrokerItems(cmd *cobra.Command, args []string) {
	ra := parseArgs(args, false)
	info := statusInfo(cmd, ra.Profile)
	ctx := cmd.Context()

	if !checkTools() {
		os.Exit(1)
	}

	r, err := newRunner(ctx, cmd, ra.Profile)
	if err != nil {
		emitError(info, err.Error())
		return
	}

	j := discovery.Job{
		Info: info,
		Metrics: []mskmetrics.Metric{
			mskmetrics.CpuUser,
			mskmetrics.KafkaDataLogsDiskUsed,
			mskmetrics.OfflinePartitionsCount,
		},
		Scheme: discovery.SchemeLegacyBroker,
	}

	snaps, err := r.CollectBrokers(ctx, j)
	if err != nil {
		emitError(info, err.Error())
		return
	}
	if snaps == nil {
		snaps = []discovery.BrokerSnapshot{}
	}

	emit(discovery.ShapeBrokers(j, snaps))

	// Dumps are side artifacts; failures are reported on stderr and
	// never affect what was already printed.
	store := persist.Store{Base: baseDir(cmd)}
	if path, err := store.WriteJSON(ra.Profile, "Kafka", snaps); err != nil {
		logrus.Warnf("no se pudo guardar el JSON en %s: %v", path, err)
	}
	if path, err := discovery.WriteBrokerCSV(store, ra.Profile, "Kafka", snaps); err != nil {
		logrus.Warnf("no se pudo guardar el CSV en %s: %v", path, err)
	}
}
