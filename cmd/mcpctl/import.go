package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import MCP servers from Claude Desktop",
	Long: `Import MCP servers from the Claude Desktop configuration file into claude.

Each server is imported independently; a failing entry is reported but does
not stop the rest of the batch.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		scope, _ := cmd.Flags().GetString("scope")

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		result, err := reg.ImportFromClaudeDesktop(ctx, registry.Scope(scope))
		if err != nil {
			return errors.Wrap(err, "failed to import from Claude Desktop")
		}

		presenter.Section(fmt.Sprintf("Imported %d servers, %d failed", result.ImportedCount, result.FailedCount))
		for _, server := range result.Servers {
			if server.Success {
				presenter.Success(server.Name)
			} else {
				presenter.Error(errors.New(server.Error), server.Name)
			}
		}

		if err := result.Err(); err != nil {
			return errors.Wrap(err, "some servers failed to import")
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("scope", "s", "local", "Registration scope for imported servers (local, project, or user)")
	rootCmd.AddCommand(importCmd)
}
