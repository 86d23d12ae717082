package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renjen/cse132a-hw3/internal/db"
	"github.com/renjen/cse132a-hw3/internal/input"
	"github.com/renjen/cse132a-hw3/internal/report"
	"github.com/renjen/cse132a-hw3/internal/schema"
)

var (
	introspectTable string
	introspectRun   bool
)

var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Derive a schema from a PostgreSQL table",
	Long: `Connects to the database, reads the table's columns and key constraints
(primary key and unique), and builds a schema whose FDs map each key
constraint to the columns it determines. By default the schema is
emitted as an input document; with --run it is decomposed directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if introspectTable == "" {
			return fmt.Errorf("--table is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		schemaName := cfg.Schema
		tableName := introspectTable
		if qualifier, rest, ok := strings.Cut(introspectTable, "."); ok {
			schemaName, tableName = qualifier, rest
		}

		ctx := context.Background()

		pool, err := db.NewPool(ctx, &cfg.Connection)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		s, err := schema.IntrospectTable(ctx, pool, schemaName, tableName)
		if err != nil {
			return fmt.Errorf("introspecting table: %w", err)
		}

		if len(s.FDs) == 0 {
			fmt.Fprintf(os.Stderr, "warning: %s has no key constraints; schema carries no FDs\n", s.Name)
		}

		if introspectRun {
			return input.WriteJSON(os.Stdout, report.Decompose(s).Result)
		}
		return input.WriteRequest(os.Stdout, input.NewRequest(s))
	},
}

func init() {
	introspectCmd.Flags().StringVar(&introspectTable, "table", "", "table to introspect, optionally schema-qualified")
	introspectCmd.Flags().BoolVar(&introspectRun, "run", false, "decompose the introspected schema instead of emitting it")
	rootCmd.AddCommand(introspectCmd)
}
