package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

const unknownVersion = "unknown"

// buildVersion reports the module version and, when stamped, the VCS revision.
func buildVersion(info *debug.BuildInfo) (string, string) {
	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	revision := ""

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			revision = setting.Value
		}
	}

	return version, revision
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the sccremover build, the config and report format versions it reads and writes, and the Go toolchain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("config format\t", currentConfigVersion)
			cmd.Println("report format\t", m.CurrentReportVersion)

			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("sccremover\t", unknownVersion)
				return
			}

			version, revision := buildVersion(info)
			cmd.Println("sccremover\t", version)

			if revision != "" {
				cmd.Println("revision\t", revision)
			}

			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
