// Package cmd provides the root command and CLI setup for sccremover.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sccremover.dev/pkg/sccremover/internal/adapter"
	"sccremover.dev/pkg/sccremover/internal/controller"
	"sccremover.dev/pkg/sccremover/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var runLocker adapter.RunLocker
var remover domain.Remover

// newWorkflow builds the workflow for one command invocation. The UI is
// chosen per invocation since --plain and the terminal decide it.
var newWorkflow = func(cmd *cobra.Command, plain bool) domain.Workflow {
	ui := controller.NewUI(cmd, !plain && controller.IsTTY(os.Stdout))
	return domain.NewWorkflow(fsAdapter, reportStore, runLocker, ui, remover)
}

var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	runLocker = adapter.NewFileRunLocker("")
	remover = domain.NewRemover(fsAdapter)
}

const rootLongDescription = `sccremover strips the footprint of a legacy source-control integration
from a .NET source tree: per-user and source-control binding files,
build output and test result directories, Scc* entries in project files
and the TeamFoundationVersionControl section of solution files.

List options use ';' as separator and name files or directories exactly,
without wildcards.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sccremover",
		Short: "Remove source-control footprints from a source tree",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
