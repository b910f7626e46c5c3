package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"skeletor.dev/pkg/skeletor/internal/adapter"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the skeletor build version, the Go toolchain and the default remote template.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines renders build info; info may be nil when the binary was built
// without module support.
func versionLines(info *debug.BuildInfo) []string {
	version, goVersion := unknownVersion, unknownVersion
	if info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
	}

	return []string{
		"skeletor version\t" + version,
		"go version\t" + goVersion,
		fmt.Sprintf("remote template\t%s/%s", adapter.DefaultOrganization, adapter.DefaultRepository),
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
