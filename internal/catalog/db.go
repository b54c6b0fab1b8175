// Copyright 2025 Lexpath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/go-libsql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// defaultBusyTimeoutMs is how long a connection waits on a locked
// database before failing. Two CLI invocations sharing a catalog file
// is the expected contention case.
const defaultBusyTimeoutMs = 5000

// execPragma runs a PRAGMA statement using Query (not Exec) because
// libsql returns rows for PRAGMA statements. The rows are drained and
// closed.
func execPragma(db *sql.DB, pragma string) error {
	rows, err := db.Query(pragma)
	if err != nil {
		return err
	}
	rows.Close()
	return nil
}

// applyPragmas sets essential PRAGMAs after opening a libsql
// connection. libsql ignores DSN-based _pragma=value parameters, so
// all PRAGMAs are set explicitly once the connection is open.
func applyPragmas(db *sql.DB) error {
	// Busy timeout first so the journal_mode conversion below waits on
	// transient locks instead of failing immediately.
	if err := execPragma(db, fmt.Sprintf("PRAGMA busy_timeout = %d", defaultBusyTimeoutMs)); err != nil {
		return fmt.Errorf("failed to set busy_timeout: %w", err)
	}
	if err := execPragma(db, "PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to set journal_mode=WAL: %w", err)
	}
	if err := execPragma(db, "PRAGMA synchronous=NORMAL"); err != nil {
		return fmt.Errorf("failed to set synchronous=NORMAL: %w", err)
	}
	return nil
}

// execStatements splits a multi-statement SQL string and executes each
// statement individually for libsql compatibility.
func execStatements(db *sql.DB, script string) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}

// openDB opens (or creates) the catalog database file, applies the
// PRAGMAs, ensures the schema, and wraps the connection with Bun's
// type-safe query builder. A flock beside the database file guards
// schema creation across processes.
func openDB(file string) (*bun.DB, *flock.Flock, error) {
	lock := flock.New(file + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, nil, fmt.Errorf("failed to acquire catalog lock: %w", err)
	}

	sqlDB, err := sql.Open("libsql", "file:"+file)
	if err != nil {
		lock.Unlock()
		return nil, nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if err := applyPragmas(sqlDB); err != nil {
		sqlDB.Close()
		lock.Unlock()
		return nil, nil, err
	}

	if err := execStatements(sqlDB, catalogSchema); err != nil {
		sqlDB.Close()
		lock.Unlock()
		return nil, nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if err := lock.Unlock(); err != nil {
		log.WithError(err).Warn("failed to release catalog lock after open")
	}

	return bun.NewDB(sqlDB, sqlitedialect.New()), lock, nil
}
