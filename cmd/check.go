package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Check mutation results against the minimum score",
		Long:         checkLongDescription,
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := checkArgsFromConfig()
			if err != nil {
				return err
			}

			_, err = workflow.Check(cmd.Context(), args)

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
