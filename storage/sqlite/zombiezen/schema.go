package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds the SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchema executes the embedded docs schema script. All
// statements are idempotent, so running it on an existing database is
// safe.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/docs.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	// ExecuteScript handles multi-statement strings.
	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute schema script: %w", err)
	}
	return nil
}
