package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
)

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Unregister an MCP server from claude",
	Long: `Unregister an MCP server from the claude CLI.

The server's entry in .mcp.json, if any, is left in place; edit or delete the
file entry to drop the disabled-state tracking as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		message, err := reg.Remove(ctx, args[0])
		if err != nil {
			return errors.Wrapf(err, "failed to remove MCP server %q", args[0])
		}

		presenter.Success(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
