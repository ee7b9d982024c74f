package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penumbra-labs/mcpctl/pkg/claudecli"
	"github.com/penumbra-labs/mcpctl/pkg/presenter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start claude itself as an MCP server",
	Long: `Start the claude CLI as an MCP server (claude mcp serve).

The server is spawned detached and keeps running after mcpctl exits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		binaryPath, err := claudecli.FindBinary(viper.GetString("claude.binary"))
		if err != nil {
			return errors.Wrap(err, "failed to locate claude binary")
		}

		var allowList []string
		if viper.IsSet("env_passthrough") {
			allowList = viper.GetStringSlice("env_passthrough")
		}
		runner := claudecli.NewExecRunner(binaryPath, allowList)

		if err := runner.Serve(ctx); err != nil {
			return errors.Wrap(err, "failed to start MCP server")
		}

		presenter.Success("claude MCP server started")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
