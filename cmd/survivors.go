package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ismaelsanroman/mutgate/internal/adapter"
	"github.com/ismaelsanroman/mutgate/internal/domain"
	m "github.com/ismaelsanroman/mutgate/internal/model"
)

// survivorsCmd represents the survivors command.
var survivorsCmd = newSurvivorsCmd()

func newSurvivorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "survivors",
		Short:        "Show surviving mutants from the last run",
		Long:         "List the mutants that survived in a results artifact. Interactive on a terminal.",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := adapter.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Survivors(cmd.Context(), domain.SurvivorsArgs{
				Report: m.Path(viper.GetString(reportConfigKey)),
				Format: format,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(survivorsCmd)
}
