package schema

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IntrospectTable queries PostgreSQL catalogs and builds a Schema for
// one table: its columns become the attribute set, and each key
// constraint (primary key or unique) becomes one FD per non-key column,
// key columns on the left.
func IntrospectTable(ctx context.Context, pool *pgxpool.Pool, schemaName, tableName string) (*Schema, error) {
	columns, err := queryColumns(ctx, pool, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s.%s not found", schemaName, tableName)
	}

	constraints, err := queryKeyConstraints(ctx, pool, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying key constraints: %w", err)
	}

	attrs := NewAttrSet(columns...)

	var fds []FD
	for _, key := range constraints {
		left := NewAttrSet(key...)
		for _, col := range columns {
			if left[col] {
				continue
			}
			fds = append(fds, FD{Left: left.Clone(), Right: col})
		}
	}

	return &Schema{
		Name:       schemaName + "." + tableName,
		Attributes: attrs,
		FDs:        fds,
	}, nil
}

// queryColumns returns the table's column names in ordinal order.
func queryColumns(ctx context.Context, pool *pgxpool.Pool, schemaName, tableName string) ([]string, error) {
	query := `
		SELECT a.attname
		FROM pg_class c
		JOIN pg_namespace n ON n.oid = c.relnamespace
		JOIN pg_attribute a ON a.attrelid = c.oid
		WHERE c.relkind = 'r'
			AND a.attnum > 0
			AND NOT a.attisdropped
			AND n.nspname = $1
			AND c.relname = $2
		ORDER BY a.attnum
	`

	rows, err := pool.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}

	return columns, rows.Err()
}

// queryKeyConstraints returns the column lists of the table's primary
// key and unique constraints, ordered by constraint name for
// deterministic FD order.
func queryKeyConstraints(ctx context.Context, pool *pgxpool.Pool, schemaName, tableName string) ([][]string, error) {
	query := `
		SELECT con.conname, a.attname, u.ord
		FROM pg_constraint con
		JOIN pg_class c ON c.oid = con.conrelid
		JOIN pg_namespace n ON n.oid = c.relnamespace
		CROSS JOIN LATERAL unnest(con.conkey) WITH ORDINALITY AS u(attnum, ord)
		JOIN pg_attribute a ON a.attrelid = c.oid AND a.attnum = u.attnum
		WHERE con.contype IN ('p', 'u')
			AND n.nspname = $1
			AND c.relname = $2
		ORDER BY con.conname, u.ord
	`

	rows, err := pool.Query(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byName := make(map[string][]string)
	for rows.Next() {
		var conName, colName string
		var ord int
		if err := rows.Scan(&conName, &colName, &ord); err != nil {
			return nil, err
		}
		byName[conName] = append(byName[conName], colName)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make([][]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, byName[name])
	}
	return keys, nil
}
