package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
)

var resetProjectChoicesCmd = &cobra.Command{
	Use:   "reset-project-choices",
	Short: "Reset claude's approval choices for project-scoped servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		message, err := reg.ResetProjectChoices(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to reset project choices")
		}

		presenter.Success(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetProjectChoicesCmd)
}
