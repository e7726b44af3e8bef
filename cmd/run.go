package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ismaelsanroman/mutgate/internal/adapter"
	"github.com/ismaelsanroman/mutgate/internal/domain"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

var engineCommandFlag string
var engineResultsFlag string
var engineTimeoutFlag int64
var engineWorkDirFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the mutation engine, then check the score",
		Long: `Invoke the configured external mutation testing engine, collect its
results and apply the same gate as 'check'.

The engine command is required (--engine or engine.command in
mutgate.yaml). When a results command is configured (e.g. "mutmut
results") its output is parsed directly; otherwise the results are read
from the report path.`,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checkArgs, err := checkArgsFromConfig()
			if err != nil {
				return err
			}

			_, err = workflow.Run(cmd.Context(), domain.RunArgs{
				CheckArgs: checkArgs,
				Engine: adapter.EngineConfig{
					RunCommand:     splitCommand(viper.GetString(engineCommandConfigKey)),
					ResultsCommand: splitCommand(viper.GetString(engineResultsConfigKey)),
					WorkDir:        viper.GetString(engineWorkDirConfigKey),
					Timeout:        time.Duration(viper.GetInt64(engineTimeoutConfigKey)) * time.Second,
					Report:         m.Path(viper.GetString(reportConfigKey)),
					Format:         checkArgs.Format,
				},
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&engineCommandFlag, engineCommandFlagName, "e",
		viper.GetString(engineCommandConfigKey), "mutation engine run command (e.g. \"mutmut run\")")
	bindFlagToConfig(cmd.Flags().Lookup(engineCommandFlagName), engineCommandConfigKey)

	cmd.Flags().StringVar(&engineResultsFlag, engineResultsFlagName,
		viper.GetString(engineResultsConfigKey), "engine results query command (e.g. \"mutmut results\")")
	bindFlagToConfig(cmd.Flags().Lookup(engineResultsFlagName), engineResultsConfigKey)

	cmd.Flags().Int64Var(&engineTimeoutFlag, engineTimeoutFlagName,
		viper.GetInt64(engineTimeoutConfigKey), "engine invocation timeout in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(engineTimeoutFlagName), engineTimeoutConfigKey)

	cmd.Flags().StringVar(&engineWorkDirFlag, engineWorkDirFlagName,
		viper.GetString(engineWorkDirConfigKey), "working directory for engine commands")
	bindFlagToConfig(cmd.Flags().Lookup(engineWorkDirFlagName), engineWorkDirConfigKey)
}

// splitCommand splits a configured command line on whitespace.
func splitCommand(command string) []string {
	return strings.Fields(command)
}
