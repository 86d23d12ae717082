package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/renjen/cse132a-hw3/internal/input"
	"github.com/renjen/cse132a-hw3/internal/report"
)

var (
	decomposeFormat string
	outputPath      string
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <input.json>",
	Short: "Decompose a schema into 3NF and BCNF",
	Long: `Reads a schema file (relation name, attributes, functional dependencies),
runs 3NF synthesis and BCNF decomposition, and outputs both relation
lists in the specified format.`,
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

		a := report.Decompose(s)

		w, closeFn, err := openOutput(outputPath)
		if err != nil {
			return err
		}
		defer closeFn()

		switch decomposeFormat {
		case "json":
			return input.WriteJSON(w, a.Result)
		case "text":
			return report.WriteText(w, a)
		case "mermaid":
			return report.WriteMermaid(w, a)
		default:
			return fmt.Errorf("unknown format: %s (supported: json, text, mermaid)", decomposeFormat)
		}
	},
}

// openOutput resolves the output destination: stdout for "" or "-",
// a freshly created file otherwise.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func init() {
	decomposeCmd.Flags().StringVar(&decomposeFormat, "format", "json", "output format: json, text, or mermaid")
	decomposeCmd.Flags().StringVar(&outputPath, "output", "", "output file path (default stdout)")
	rootCmd.AddCommand(decomposeCmd)
}
