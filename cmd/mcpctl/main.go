package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penumbra-labs/mcpctl/pkg/claudecli"
	"github.com/penumbra-labs/mcpctl/pkg/logger"
	"github.com/penumbra-labs/mcpctl/pkg/presenter"
	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("MCPCTL")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.mcpctl")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "mcpctl",
	Short: "Manage MCP server registrations for the claude CLI",
	Long: `mcpctl manages the MCP (Model Context Protocol) servers registered with the
claude coding-assistant CLI: adding, listing, inspecting, enabling/disabling,
importing, and removing server entries.

The disabled state of a server is tracked in the project's .mcp.json file,
which mcpctl owns; everything else lives in claude's own configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			presenter.SetQuiet(true)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

// newRegistry wires a Registry against the real claude binary, using the
// configured binary override, env allow-list, and project path.
func newRegistry() (*registry.Registry, error) {
	binaryPath, err := claudecli.FindBinary(viper.GetString("claude.binary"))
	if err != nil {
		return nil, err
	}

	var allowList []string
	if viper.IsSet("env_passthrough") {
		allowList = viper.GetStringSlice("env_passthrough")
	}
	runner := claudecli.NewExecRunner(binaryPath, allowList)

	opts := []registry.Option{}
	if projectPath := viper.GetString("project_path"); projectPath != "" {
		opts = append(opts, registry.WithProjectPath(projectPath))
	}

	return registry.New(runner, opts...), nil
}

func main() {
	// Global flags
	rootCmd.PersistentFlags().String("project", "", "Project directory containing the .mcp.json file (defaults to the current directory)")
	rootCmd.PersistentFlags().String("claude-binary", "", "Path to the claude binary (overrides discovery)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	// Bind flags to viper
	viper.BindPFlag("project_path", rootCmd.PersistentFlags().Lookup("project"))
	viper.BindPFlag("claude.binary", rootCmd.PersistentFlags().Lookup("claude-binary"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
