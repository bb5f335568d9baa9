package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func buildVersionCommand(env *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := env.info
			data := map[string]string{
				"version": info.Version,
				"commit":  info.Commit,
				"date":    info.Date,
			}
			return env.succeed("version", data, func(w io.Writer) {
				fmt.Fprintf(w, "scrolldemo %s (commit: %s, built: %s)\n", info.Version, info.Commit, info.Date)
			})
		},
	}
}
