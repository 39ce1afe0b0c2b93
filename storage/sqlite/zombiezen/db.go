// Package zombiezen stores documents in SQLite through the
// zombiezen.com/go/sqlite driver: one row per document, one row per
// sentence segment, and a lemma index for searches.
package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool creates a SQLite connection pool with reasonable defaults
// (e.g., WAL mode enabled) and the schema applied.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s", dbPath)

	// sqlitex.NewPool with default options uses flags:
	// sqlite.OpenReadWrite | sqlite.OpenCreate | sqlite.OpenWAL | sqlite.OpenURI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}

	if err := CreateSchema(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
