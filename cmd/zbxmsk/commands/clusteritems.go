package commands

import (
	"os"

	"github.com/ctlops/zbxmsk/discovery"
	"github.com/ctlops/zbxmsk/mskmetrics"

	"github.com/spf13/cobra"
)

var clusterItemsCmd = &cobra.Command{
	Use:   "cluster-items <aws_profile> [cluster_name] [aws_account]",
	Short: "Discover per-cluster offline partition aggregates",
	Args:  cobra.RangeArgs(1, 3),
	Run:   runClusterItems,
}

func init() {
	rootCmd.AddCommand(clusterItemsCmd)
}

func runClusterItems(cmd *cobra.Command, args []string) {
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
		Metrics:       []mskmetrics.Metric{mskmetrics.OfflinePartitionsCount},
		Scheme:        discovery.SchemeCluster,
	}))
}
