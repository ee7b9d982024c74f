package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
)

var testConnectionCmd = &cobra.Command{
	Use:   "test-connection NAME",
	Short: "Check whether claude can resolve an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		message, err := reg.TestConnection(ctx, args[0])
		if err != nil {
			return errors.Wrapf(err, "connection test for %q failed", args[0])
		}

		presenter.Success(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testConnectionCmd)
}
