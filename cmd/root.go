// Package cmd provides the root command and CLI setup for mutgate.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ismaelsanroman/mutgate/internal/adapter"
	"github.com/ismaelsanroman/mutgate/internal/controller"
	"github.com/ismaelsanroman/mutgate/internal/domain"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

var reportStore adapter.ReportStore
var survivorsStore adapter.SurvivorsStore
var ui controller.UI
var workflow domain.Workflow

// Root-level flags shared by the commands that evaluate the gate.
var reportPathFlag string
var reportFormatFlag string
var minScoreFlag float64
var policyFlag string
var failOnSurvivorsFlag bool
var survivorsLogFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	survivorsStore = adapter.NewSurvivorsStore()
	workflow = domain.NewWorkflow(reportStore, survivorsStore, ui,
		func(cfg adapter.EngineConfig) adapter.EngineAdapter {
			return adapter.NewLocalEngineAdapter(cfg, reportStore)
		})
}

const formatsHelp = `Supported report formats:
  - auto         detect the format from the artifact contents
  - mutmut       'mutmut results' style text
  - cosmic-ray   cosmic-ray line-delimited JSON session dump
  - summary      condensed {"mutation_score": N} JSON report
  - mutgate      mutgate's own YAML report`

const rootLongDescription = `Mutgate is a quality gate for mutation testing: it reads the results of
an external mutation testing engine, computes the fraction of mutants
your tests killed, and fails the commit or pipeline when the score is
below the configured minimum.

Exit codes: 0 when the threshold is met, 1 when it is not, 2 on a
parse or configuration error.

` + formatsHelp

const checkLongDescription = `Check a mutation testing results artifact against the minimum score.

The report path may be a single artifact or a directory of shard files,
which are merged in name order.

` + formatsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutgate",
		Short: "Mutation testing quality gate",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportPathFlag, reportFlagName, "r",
			viper.GetString(reportConfigKey),
			"path to the results artifact (file or shard directory)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportConfigKey)

	cmd.PersistentFlags().
		StringVarP(
			&reportFormatFlag, formatFlagName, "f",
			viper.GetString(formatConfigKey),
			"results artifact format (auto, mutmut, cosmic-ray, summary, mutgate)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().
		Float64VarP(
			&minScoreFlag, minScoreFlagName, "m",
			viper.GetFloat64(minScoreConfigKey),
			"minimum mutation score in percent",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(minScoreFlagName), minScoreConfigKey)

	cmd.PersistentFlags().
		StringVar(
			&policyFlag, policyFlagName,
			viper.GetString(policyConfigKey),
			"counting policy for timeouts and suspicious results (killable, strict)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(policyFlagName), policyConfigKey)

	cmd.PersistentFlags().
		BoolVar(
			&failOnSurvivorsFlag, failOnSurvivorsFlagName,
			viper.GetBool(failOnSurvivorsConfigKey),
			"fail whenever any mutant survived, even above the threshold",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(failOnSurvivorsFlagName), failOnSurvivorsConfigKey)

	cmd.PersistentFlags().
		StringVar(
			&survivorsLogFlag, survivorsLogFlagName,
			viper.GetString(survivorsLogConfigKey),
			"markdown file for surviving mutants on failure (empty disables)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(survivorsLogFlagName), survivorsLogConfigKey)

	cmd.PersistentFlags().
		BoolVarP(&verboseFlag, verboseFlagName, "v",
			viper.GetBool(logVerboseKey), "enable debug logging")
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
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes a quality failure from an internal error so
// pipelines can tell them apart.
func exitCode(err error) int {
	if errors.Is(err, m.ErrParse) || errors.Is(err, m.ErrConfig) {
		return 2
	}

	return 1
}

// checkArgsFromConfig builds the gate arguments from the resolved
// flag/config/env values, validating the enumerated options.
func checkArgsFromConfig() (domain.CheckArgs, error) {
	policy, err := m.ParsePolicy(viper.GetString(policyConfigKey))
	if err != nil {
		return domain.CheckArgs{}, err
	}

	format, err := adapter.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return domain.CheckArgs{}, err
	}

	return domain.CheckArgs{
		Report: m.Path(viper.GetString(reportConfigKey)),
		Format: format,
		Gate: domain.GateConfig{
			MinScore:        viper.GetFloat64(minScoreConfigKey),
			Policy:          policy,
			FailOnSurvivors: viper.GetBool(failOnSurvivorsConfigKey),
		},
		SurvivorsLog: m.Path(viper.GetString(survivorsLogConfigKey)),
	}, nil
}
