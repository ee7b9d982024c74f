package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
)

var enableCmd = &cobra.Command{
	Use:   "enable NAME",
	Short: "Mark an MCP server as enabled in .mcp.json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, args[0], false)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable NAME",
	Short: "Mark an MCP server as disabled in .mcp.json",
	Long: `Mark an MCP server as disabled in the project's .mcp.json file.

claude has no native notion of a disabled server, so this only rewrites the
sidecar file; the server stays registered with claude and can be re-enabled
at any time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, args[0], true)
	},
}

func runToggle(cmd *cobra.Command, name string, disabled bool) error {
	ctx := cmd.Context()

	reg, err := newRegistry()
	if err != nil {
		return errors.Wrap(err, "failed to initialize registry")
	}

	message, err := reg.ToggleDisabled(ctx, name, disabled)
	if err != nil {
		return errors.Wrapf(err, "failed to toggle MCP server %q", name)
	}

	presenter.Success(message)
	return nil
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
