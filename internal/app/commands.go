package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gajzzs/rearm-upload/internal/buildenv"
	"github.com/gajzzs/rearm-upload/internal/config"
)

var Version = "0.1.0"

func NewResolveCommand(opts *Options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the mount point of the target board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Load()
			if err != nil {
				return err
			}

			res, err := opts.Enumerator(cfg).Resolve(cfg.Target())
			if err != nil {
				return err
			}

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), res.Path)
				return nil
			}
			out := struct {
				Path        string `json:"path"`
				Match       string `json:"match"`
				UploadFlags string `json:"upload_flags,omitempty"`
			}{Path: res.Path, Match: res.Match.String()}
			if res.SetUploadFlags {
				out.UploadFlags = cfg.UploadFlags
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func NewHookCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Run as the build tool's pre-upload action",
		Long: "Resolves the target drive against the process environment (PIOENV, UPLOAD_PORT)\n" +
			"and prints the updated build variables as shell assignments on stdout.\n" +
			"Diagnostics go to stderr. The command never fails the build.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := buildenv.NewProcessEnv()

			cfg, err := opts.Load()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), buildenv.Diagnostic(err.Error(), config.DefaultBuildDir, env.Get(buildenv.KeyEnvName)))
				return nil
			}

			hook := &buildenv.Hook{
				Enumerator:  opts.Enumerator(cfg),
				Target:      cfg.Target(),
				UploadFlags: cfg.UploadFlags,
				BuildDir:    cfg.BuildDir,
				Out:         cmd.ErrOrStderr(),
			}
			if hook.BeforeUpload(env) {
				for _, line := range env.Exports() {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rearm-upload version %s\n", Version)
		},
	}
}
