package commands

import (
	"os"

	"github.com/ctlops/zbxmsk/discovery"
	"github.com/ctlops/zbxmsk/mskmetrics"

	"github.com/spf13/cobra"
)

var brokersCmd = &cobra.Command{
	Use:   "brokers <aws_profile> [cluster_name] [aws_account]",
	Short: "Discover broker metrics plus per-cluster offline partition sums",
	Args:  cobra.RangeArgs(1, 3),
	Run:   runBrokers,
}

func init() {
	rootCmd.AddCommand(brokersCmd)
}

func runBrokers(cmd *cobra.Command, args []string) {
	ra := parseArgs(args, true)
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

	emit(r.Run(ctx, discovery.Job{
		Info:          info,
		Profile:       ra.Profile,
		ClusterFilter: ra.Cluster,
		Metrics: []mskmetrics.Metric{
			mskmetrics.CpuUser,
			mskmetrics.KafkaDataLogsDiskUsed,
			mskmetrics.OfflinePartitionsCount,
		},
		Scheme:        discovery.SchemeBroker,
		EmptyIsReview: true,
	}))
}
