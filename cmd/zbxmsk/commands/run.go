package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ctlops/zbxmsk/discovery"
	"github.com/ctlops/zbxmsk/mskadmin"
	"github.com/ctlops/zbxmsk/mskmetrics/cloudwatch"
	"github.com/ctlops/zbxmsk/persist"
	"github.com/ctlops/zbxmsk/zabbix"

	"github.com/spf13/cobra"
)

// runArgs are the positional arguments the discovery subcommands
// share: <aws_profile> [cluster_name] [aws_account]. The account is
// accepted for template compatibility and never used.
type runArgs struct {
	Profile string
	Cluster string
	Account string
}

// parseArgs splits positionals. Subcommands without a cluster
// filter treat the second positional as the account.
func parseArgs(args []string, withCluster bool) runArgs {
	ra := runArgs{Account: "AWS"}
	if len(args) == 0 {
		return ra
	}

	ra.Profile = args[0]
	rest := args[1:]
	if withCluster && len(rest) > 0 {
		ra.Cluster = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		ra.Account = rest[0]
	}

	return ra
}

// statusInfo builds the {#INFO} identity for a subcommand run.
func statusInfo(cmd *cobra.Command, profile string) string {
	return fmt.Sprintf("zbxmsk %s %s Kafka", cmd.Name(), profile)
}

// newAdmin builds the control-plane client for one run.
func newAdmin(ctx context.Context, cmd *cobra.Command, profile string) (mskadmin.Client, error) {
	region, _ := cmd.Flags().GetString("region")
	return mskadmin.NewClient(ctx, mskadmin.Config{Profile: profile, Region: region})
}

// newRunner wires the AWS collaborators for one run.
func newRunner(ctx context.Context, cmd *cobra.Command, profile string) (discovery.Runner, error) {
	region, _ := cmd.Flags().GetString("region")
	lookback, _ := cmd.Flags().GetDuration("lookback")
	period, _ := cmd.Flags().GetDuration("period")

	admin, err := newAdmin(ctx, cmd, profile)
	if err != nil {
		return discovery.Runner{}, err
	}

	metrics, err := cloudwatch.NewHandler(ctx, cloudwatch.Config{
		Profile:  profile,
		Region:   region,
		Lookback: lookback,
		Period:   period,
	})
	if err != nil {
		return discovery.Runner{}, err
	}

	return discovery.Runner{Admin: admin, Metrics: metrics}, nil
}

// emit prints d as the single compact JSON line the agent consumes.
func emit(d *zabbix.Discovery) {
	b, err := d.MarshalCompact()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}

// emitError prints an error envelope. The process still exits 0
// once an envelope made it to stdout; {#EXIT} carries the failure.
func emitError(info, msg string) {
	emit(zabbix.Wrap(info, zabbix.Err(msg)))
}

func baseDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("base-dir")
	return persist.BaseDir(dir)
}
