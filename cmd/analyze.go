package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renjen/cse132a-hw3/internal/input"
	"github.com/renjen/cse132a-hw3/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.json>",
	Short: "Report a schema's cover, key, and BCNF violations",
	Long: `Reads a schema file and prints its functional dependencies, the reduced
cover, one minimal key, and which FDs violate BCNF, without performing
any decomposition.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file not found: %s", path)
		}

		s, err := input.Load(path)
		if err != nil {
			return err
		}

		return report.WriteText(os.Stdout, report.Analyze(s))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
