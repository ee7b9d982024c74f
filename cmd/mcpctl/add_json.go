package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var addJSONCmd = &cobra.Command{
	Use:   "add-json NAME JSON",
	Short: "Register an MCP server from a raw JSON configuration",
	Long: `Register an MCP server with claude from a raw JSON configuration string.

Example:
  mcpctl add-json weather '{"type":"stdio","command":"npx","args":["-y","weather-server"]}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		scope, _ := cmd.Flags().GetString("scope")

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		result, err := reg.AddJSON(ctx, args[0], args[1], registry.Scope(scope))
		if err != nil {
			return errors.Wrap(err, "failed to add MCP server from JSON")
		}

		if !result.Success {
			presenter.Error(errors.New(result.Message), "Failed to add server")
			return errors.New(result.Message)
		}

		presenter.Success(result.Message)
		return nil
	},
}

func init() {
	addJSONCmd.Flags().StringP("scope", "s", "local", "Registration scope (local, project, or user)")
	rootCmd.AddCommand(addJSONCmd)
}
