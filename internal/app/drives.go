package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gajzzs/rearm-upload/internal/platform"
)

var listDevices = platform.ListDevices

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func NewDrivesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List mounted drives the OS reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := listDevices()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				for _, d := range devices {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%t\n", d.Name, d.Path, d.MountPoint, d.FSType, d.Removable)
				}
				return nil
			}

			if len(devices) == 0 {
				fmt.Fprintln(out, "No mounted drives found")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEVICE\tMOUNT\tFS\tREMOVABLE")
			for _, d := range devices {
				mount := d.MountPoint
				if mount == "" {
					mount = "(not mounted)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", d.Name, d.Path, mount, d.FSType, d.Removable)
			}
			return tw.Flush()
		},
	}
}
