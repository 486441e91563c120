package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sccremover.dev/pkg/sccremover/internal/domain"
	m "sccremover.dev/pkg/sccremover/internal/model"
)

// errRunEndedEarly makes the process exit non-zero after an aborted run.
var errRunEndedEarly = errors.New("removal run ended early, see log for details")

var rootDirFlag string
var dirsFlag string
var yesFlag bool
var saveFlag bool
var reportFlag string
var plainFlag bool

const removeLongDescription = `Remove the source-control footprint below a root directory.

The run deletes the configured default file types and directories, the
user directories given with --dirs, Scc* lines from *.*proj files and the
TeamFoundationVersionControl section from *.sln files, in that order.

The root is taken from the argument, --root or remove.working_dir.

Exit status is 0 when the run finished or the confirmation was declined.
Failures on single files or directories are reported in the log and do not
change the exit status. It is 1 when the run could not start (invalid
configuration, another run holds the lock, report not written) or ended
early because the root could not be processed.`

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "remove [root]",
		Short:        "Remove source-control footprints",
		Long:         removeLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := viper.GetString(workingDirKey)
			if len(args) == 1 {
				root = args[0]
			}

			if saveFlag {
				if err := saveSettings(root); err != nil {
					return err
				}
			}

			wf := newWorkflow(cmd, viper.GetBool(plainUIKey))

			summary, err := wf.Remove(cmd.Context(), domain.RunArgs{
				Root:               m.Path(root),
				ExtraDirectories:   viper.GetString(userDirectoriesKey),
				DefaultFileTypes:   viper.GetString(defaultFileTypesKey),
				DefaultDirectories: viper.GetString(defaultDirectoriesKey),
				AssumeYes:          viper.GetBool(assumeYesKey),
				Report:             m.Path(viper.GetString(reportPathKey)),
			})
			if errors.Is(err, domain.ErrRunCancelled) {
				cmd.Println("Removal cancelled.")
				return nil
			}

			if err != nil {
				return err
			}

			if summary.Aborted {
				return errRunEndedEarly
			}

			return nil
		},
	}

	configureRemoveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func configureRemoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&rootDirFlag, rootFlagName, "r", viper.GetString(workingDirKey), "root directory of the source tree")
	bindFlagToConfig(cmd.Flags().Lookup(rootFlagName), workingDirKey)

	cmd.Flags().StringVarP(&dirsFlag, dirsFlagName, "d", viper.GetString(userDirectoriesKey), "additional directory names to delete, ';' separated")
	bindFlagToConfig(cmd.Flags().Lookup(dirsFlagName), userDirectoriesKey)

	cmd.Flags().BoolVarP(&yesFlag, yesFlagName, "y", viper.GetBool(assumeYesKey), "skip the confirmation prompt")
	bindFlagToConfig(cmd.Flags().Lookup(yesFlagName), assumeYesKey)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportPathKey), "write a YAML run report to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportPathKey)

	cmd.Flags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainUIKey), "use plain line output even on a terminal")
	bindFlagToConfig(cmd.Flags().Lookup(plainFlagName), plainUIKey)

	cmd.Flags().BoolVar(&saveFlag, saveFlagName, false, "store the root and --dirs in "+configFileName)
}

// saveSettings writes the current settings, root and user directories
// included, to the config file in the working directory.
func saveSettings(root string) error {
	viper.Set(workingDirKey, root)

	if err := viper.WriteConfigAs(configFilePath()); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
