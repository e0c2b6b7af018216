package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo holds build information injected via -ldflags
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// newVersionCommand creates the version command
func newVersionCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		Aliases: []string{"v", "ver"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "yt-thumbnails %s\n", a.version.Version)

			if detailed, _ := cmd.Flags().GetBool("detailed"); detailed {
				fmt.Fprintf(out, "Version:    %s\n", a.version.Version)
				fmt.Fprintf(out, "Commit:     %s\n", a.version.Commit)
				fmt.Fprintf(out, "Build Date: %s\n", a.version.Date)
				fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
				fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}

	cmd.Flags().BoolP("detailed", "d", false, "print detailed build information")
	return cmd
}
