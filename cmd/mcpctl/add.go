package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var addCmd = &cobra.Command{
	Use:   "add NAME [-- COMMAND [ARGS...]]",
	Short: "Register a new MCP server with claude",
	Long: `Register a new MCP server with the claude CLI.

For stdio servers, pass the command (and its arguments) after the name.
For SSE servers, pass --transport sse and --url instead.

Examples:
  mcpctl add weather -- npx -y weather-server
  mcpctl add tickets --transport sse --url https://tickets.internal/sse
  mcpctl add db -e DATABASE_URL=postgres://localhost/dev -- node db-server.js`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		transport, _ := cmd.Flags().GetString("transport")
		url, _ := cmd.Flags().GetString("url")
		scope, _ := cmd.Flags().GetString("scope")
		envFlags, _ := cmd.Flags().GetStringArray("env")

		env := map[string]string{}
		for _, kv := range envFlags {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return errors.Errorf("invalid env flag %q, expected KEY=VALUE", kv)
			}
			env[key] = value
		}

		req := registry.AddRequest{
			Name:      args[0],
			Transport: registry.Transport(transport),
			Env:       env,
			URL:       url,
			Scope:     registry.Scope(scope),
		}
		if len(args) > 1 {
			req.Command = args[1]
			req.Args = args[2:]
		}

		reg, err := newRegistry()
		if err != nil {
			return errors.Wrap(err, "failed to initialize registry")
		}

		result, err := reg.Add(ctx, req)
		if err != nil {
			return errors.Wrap(err, "failed to add MCP server")
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
	addCmd.Flags().String("transport", "stdio", "Server transport (stdio or sse)")
	addCmd.Flags().String("url", "", "Server URL (sse transport only)")
	addCmd.Flags().StringP("scope", "s", "local", "Registration scope (local, project, or user)")
	addCmd.Flags().StringArrayP("env", "e", nil, "Environment variable for the server (KEY=VALUE, repeatable)")
	rootCmd.AddCommand(addCmd)
}
