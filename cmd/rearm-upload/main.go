// Author @gajzzs
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/gajzzs/rearm-upload/internal/app"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:   "rearm-upload",
	Short: "Locate the mass-storage drive of a USB-mounted board before upload",
	Long: "rearm-upload finds the drive exposed by a board such as the Re-ARM (volume label REARM\n" +
		"or marker file FIRMWARE.CUR) and points the build tool's upload step at it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// glog defaults to log files under /tmp; a build hook should log to stderr.
	flag.Set("logtostderr", "true")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	opts.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.AddCommand(
		app.NewResolveCommand(&opts),
		app.NewHookCommand(&opts),
		app.NewDrivesCommand(),
		app.NewVersionCommand(),
	)
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
