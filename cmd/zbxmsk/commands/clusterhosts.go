package commands

import (
	"os"

	"github.com/ctlops/zbxmsk/discovery"

	"github.com/spf13/cobra"
)

var clusterHostsCmd = &cobra.Command{
	Use:   "cluster-hosts <aws_profile> [cluster_name] [aws_account]",
	Short: "Discover cluster identities for host prototypes",
	Args:  cobra.RangeArgs(1, 3),
	Run:   runClusterHosts,
}

func init() {
	rootCmd.AddCommand(clusterHostsCmd)
}

func runClusterHosts(cmd *cobra.Command, args []string) {
	ra := parseArgs(args, true)
	info := statusInfo(cmd, ra.Profile)
	ctx := cmd.Context()

	if !checkTools() {
		os.Exit(1)
	}

	// Host discovery never queries CloudWatch.
	admin, err := newAdmin(ctx, cmd, ra.Profile)
	if err != nil {
		emitError(info, err.Error())
		return
	}

	r := discovery.Runner{Admin: admin}
	emit(r.Run(ctx, discovery.Job{
		Info:          info,
		Profile:       ra.Profile,
		ClusterFilter: ra.Cluster,
		Scheme:        discovery.SchemeClusterHost,
	}))
}
