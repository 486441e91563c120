package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var forceInitFlag bool

const initLongDescription = `Create ` + configFileName + ` in the current working directory with the current
settings so it can be edited manually. The file holds:

  ` + defaultFileTypesKey + `    file extensions deleted on every run (` + defaultFileTypes + `)
  ` + defaultDirectoriesKey + `   directory names deleted on every run (` + defaultDirectories + `)
  ` + userDirectoriesKey + `      extra directory names, as given with --dirs
  ` + workingDirKey + `           root used when remove gets no argument
  log.*                         log file name, level and rotation

An existing file is left alone unless --force is given.`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default " + configFileName + " configuration file",
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			write := viper.SafeWriteConfigAs
			if forceInitFlag {
				write = viper.WriteConfigAs
			}

			if err := write(configFilePath()); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", configFilePath())

			return nil
		},
	}

	cmd.Flags().BoolVar(&forceInitFlag, "force", false, "overwrite an existing "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
