package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sccremover.dev/pkg/sccremover/internal/domain"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

var errReportPathRequired = errors.New("report path is required (argument or " + reportPathKey + ")")

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a stored run report",
		Long:  "Print the log lines and per-step counts of a report written by remove --report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := viper.GetString(reportPathKey)
			if len(args) == 1 {
				reportPath = args[0]
			}

			if reportPath == "" {
				return errReportPathRequired
			}

			wf := newWorkflow(cmd, viper.GetBool(plainUIKey))

			return wf.View(cmd.Context(), domain.ViewArgs{Report: m.Path(reportPath)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
