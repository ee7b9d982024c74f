package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered MCP servers",
	Long: `List all MCP servers registered with claude, merged with the disabled
flags from the project's .mcp.json file.

Use --check to probe whether each server's command is currently running
(advisory only) and --json for machine-readable output.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		check, _ := cmd.Flags().GetBool("check")

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		servers, err := reg.List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list MCP servers")
		}

		if check {
			for i := range servers {
				servers[i].Status = registry.CheckStatus(ctx, &servers[i])
			}
		}

		if jsonOutput {
			output, err := json.MarshalIndent(servers, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal JSON output")
			}
			fmt.Println(string(output))
			return nil
		}

		if len(servers) == 0 {
			presenter.Info("No MCP servers configured.")
			return nil
		}

		presenter.Section(fmt.Sprintf("MCP Servers (%d)", len(servers)))
		for _, server := range servers {
			state := ""
			if server.Disabled {
				state = " [disabled]"
			}
			if check && server.Status.Running {
				state += " [running]"
			}
			fmt.Printf("  %s%s: %s\n", server.Name, state, server.Command)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Output as JSON")
	listCmd.Flags().Bool("check", false, "Probe whether each server's command is running")
	rootCmd.AddCommand(listCmd)
}
