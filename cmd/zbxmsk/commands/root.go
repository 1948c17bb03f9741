// Package commands implements the zbxmsk subcommands. Each
// discovery subcommand prints exactly one line of compact JSON to
// stdout; everything else goes to stderr or log files.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/ctlops/zbxmsk/persist"

	"github.com/jamiealquiza/envy"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zbxmsk",
	Short: "AWS MSK discovery for Zabbix",
	Long: `zbxmsk enumerates AWS MSK clusters and brokers, fetches their
CloudWatch metrics over the trailing minute and prints Zabbix
low-level-discovery JSON documents.`,
}

func Execute() {
	envy.ParseCobra(rootCmd, envy.CobraConfig{
		Prefix:     "ZBXMSK",
		Persistent: true,
		Recursive:  true,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("region", "", "AWS region override (defaults to the profile's region)")
	rootCmd.PersistentFlags().String("base-dir", persist.DefaultBaseDir, "Base directory for JSON/CSV dumps and log files")
	rootCmd.PersistentFlags().Duration("lookback", time.Minute, "Trailing window each metric query evaluates")
	rootCmd.PersistentFlags().Duration("period", 60*time.Second, "Metric datapoint granularity")
}
