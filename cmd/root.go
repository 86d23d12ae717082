package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renjen/cse132a-hw3/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fdnorm",
	Short: "Decompose relational schemas into 3NF and BCNF",
	Long: `fdnorm takes a relation schema (attributes plus functional dependencies),
computes a reduced cover and one minimal key, and decomposes the schema
into Third Normal Form and Boyce-Codd Normal Form. Schemas are read from
JSON files or introspected from a live PostgreSQL table.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (required for introspect)")
}

// loadConfig loads the YAML config named by --config. Only the
// introspect command needs it.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	return config.Load(cfgPath)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
