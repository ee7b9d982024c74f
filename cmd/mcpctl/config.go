package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/penumbra-labs/mcpctl/pkg/registry"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the project's .mcp.json configuration",
	Long: `Print the project's .mcp.json sidecar configuration as JSON.

A missing file prints an empty configuration; a malformed one is an error.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectPath := viper.GetString("project_path")
		if projectPath == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "failed to determine project directory")
			}
			projectPath = cwd
		}

		config, err := registry.ReadProjectConfig(projectPath)
		if err != nil {
			return errors.Wrap(err, "failed to read project config")
		}

		output, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal project config")
		}
		fmt.Println(string(output))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
