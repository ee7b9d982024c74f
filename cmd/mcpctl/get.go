package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show details for one MCP server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := args[0]

		jsonOutput, _ := cmd.Flags().GetBool("json")
		check, _ := cmd.Flags().GetBool("check")

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		server, err := reg.Get(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to get MCP server %q", name)
		}

		if check {
			server.Status = registry.CheckStatus(ctx, server)
		}

		if jsonOutput {
			output, err := json.MarshalIndent(server, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal JSON output")
			}
			fmt.Println(string(output))
			return nil
		}

		presenter.Section(server.Name)
		fmt.Printf("  Transport: %s\n", server.Transport)
		fmt.Printf("  Scope:     %s\n", server.Scope)
		if server.Command != "" {
			fmt.Printf("  Command:   %s\n", server.Command)
		}
		if len(server.Args) > 0 {
			fmt.Printf("  Args:      %s\n", strings.Join(server.Args, " "))
		}
		if server.URL != "" {
			fmt.Printf("  URL:       %s\n", server.URL)
		}
		fmt.Printf("  Disabled:  %t\n", server.Disabled)
		if check {
			fmt.Printf("  Running:   %t\n", server.Status.Running)
		}

		return nil
	},
}

func init() {
	getCmd.Flags().Bool("json", false, "Output as JSON")
	getCmd.Flags().Bool("check", false, "Probe whether the server's command is running")
	rootCmd.AddCommand(getCmd)
}
