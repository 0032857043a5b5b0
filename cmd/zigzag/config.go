package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/zigzag/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Resolve the configuration the same way 'zigzag play' does and print it.

Examples:
  zigzag config dump
  zigzag config dump --difficulty hard
  zigzag config dump --config ./my-zigzag.yaml > zigzag.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadZigzag(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyZigzagPreset(&cfg, config.ParsePreset(flagDifficulty))

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	r := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := r.Reflect(new(config.ZigzagConfig))

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
