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

// Package catalog persists normalized paths in a SQLite file so runs
// of the CLI can build on earlier ones. Every stored text is the
// normalized form; lookups normalize their argument the same way, so
// "/a/./b" and "/a/b" resolve to the same row.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"lexpath/internal/common"
	"lexpath/internal/pathalg"
	"lexpath/internal/util"
)

// Catalog is a handle on one catalog database file.
type Catalog struct {
	db   *bun.DB
	lock *flock.Flock
	env  pathalg.Env
}

// Open opens or creates the catalog at file. Paths written through the
// returned handle are normalized with env.
func Open(file string, env pathalg.Env) (*Catalog, error) {
	db, lock, err := openDB(file)
	if err != nil {
		return nil, err
	}
	return &Catalog{db: db, lock: lock, env: env}, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	if c.db == nil {
		return common.ErrClosed
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// canonical maps any spelling of a path to the one text the catalog
// stores: normalized, with no trailing separator beyond the root
// marker. Directoriness is a column, not a spelling.
func (c *Catalog) canonical(text string) string {
	n := c.env.Normalize(text, false)
	info := pathalg.Classify(n)
	for len(n) > info.PrefixLen && pathalg.IsSeparator(n[len(n)-1]) {
		n = n[:len(n)-1]
	}
	return n
}

// Put upserts a path. The text is canonicalized before storage and the
// parent, name, kind, and rootedness columns are derived from the
// canonical form. runID tags which ingest run touched the entry.
func (c *Catalog) Put(ctx context.Context, text string, isDir bool, runID string) (*EntryModel, error) {
	if c.db == nil {
		return nil, common.ErrClosed
	}
	normalized := c.canonical(text)
	if normalized == "" {
		return nil, fmt.Errorf("put %q: %w", text, common.ErrInvalidPath)
	}

	info := pathalg.Classify(normalized)
	parent, _ := pathalg.Parent(normalized)
	now := time.Now().UTC()
	model := &EntryModel{
		Text:      normalized,
		Parent:    parent,
		Name:      pathalg.Name(normalized),
		Kind:      info.Kind.String(),
		HasRoot:   info.HasRoot,
		IsDir:     isDir,
		RunID:     runID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := util.Retry(ctx, func() error {
		_, err := c.db.NewInsert().
			Model(model).
			On("CONFLICT (text) DO UPDATE").
			Set("is_dir = EXCLUDED.is_dir").
			Set("run_id = EXCLUDED.run_id").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("put %q: %w", normalized, err)
	}
	return model, nil
}

// Get returns the entry for a path, canonicalizing the argument first.
func (c *Catalog) Get(ctx context.Context, text string) (*EntryModel, error) {
	if c.db == nil {
		return nil, common.ErrClosed
	}
	normalized := c.canonical(text)
	model := new(EntryModel)
	err := c.db.NewSelect().
		Model(model).
		Where("text = ?", normalized).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %q: %w", normalized, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", normalized, err)
	}
	return model, nil
}

// Children lists the entries whose parent is the given path, ordered
// by name. The argument is canonicalized before matching.
func (c *Catalog) Children(ctx context.Context, text string) ([]*EntryModel, error) {
	if c.db == nil {
		return nil, common.ErrClosed
	}
	normalized := c.canonical(text)
	var models []*EntryModel
	err := c.db.NewSelect().
		Model(&models).
		Where("parent = ?", normalized).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("children of %q: %w", normalized, err)
	}
	return models, nil
}

// Rename moves an entry and all its descendants from oldText to
// newText in a single transaction. Descendants are matched by text
// prefix under the old path's subtree.
func (c *Catalog) Rename(ctx context.Context, oldText, newText string) error {
	if c.db == nil {
		return common.ErrClosed
	}
	oldNorm := c.canonical(oldText)
	newNorm := c.canonical(newText)
	if newNorm == "" {
		return fmt.Errorf("rename to %q: %w", newText, common.ErrInvalidPath)
	}

	// Exclusive flock across the whole subtree move; the per-statement
	// busy_timeout is not enough when another process interleaves
	// between the update statements.
	if err := c.lock.Lock(); err != nil {
		return fmt.Errorf("rename %q: %w", oldNorm, err)
	}
	defer func() {
		if err := c.lock.Unlock(); err != nil {
			log.WithError(err).Warn("failed to release catalog lock after rename")
		}
	}()

	return util.Retry(ctx, func() error {
		return c.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			res, err := tx.NewUpdate().
				Model((*EntryModel)(nil)).
				Set("text = ?", newNorm).
				Set("parent = ?", firstString(pathalg.Parent(newNorm))).
				Set("name = ?", pathalg.Name(newNorm)).
				Set("updated_at = ?", time.Now().UTC()).
				Where("text = ?", oldNorm).
				Exec(ctx)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("rename %q: %w", oldNorm, common.ErrNotFound)
			}

			// Descendants share the old text as a separator-terminated
			// prefix. A direct child's parent is the old text itself,
			// without the separator, so it cannot go through the prefix
			// rewrite: substr past its end would leave a trailing
			// separator the canonical form never carries.
			sep := string(pathalg.Style(oldNorm))
			newSep := string(pathalg.Style(newNorm))
			oldPrefix := strings.TrimSuffix(oldNorm, sep) + sep
			newPrefix := strings.TrimSuffix(newNorm, newSep) + newSep
			_, err = tx.NewUpdate().
				Model((*EntryModel)(nil)).
				Set("text = ? || substr(text, ?)", newPrefix, len(oldPrefix)+1).
				Set("parent = CASE WHEN parent = ? THEN ? ELSE ? || substr(parent, ?) END",
					oldNorm, newNorm, newPrefix, len(oldPrefix)+1).
				Set("updated_at = ?", time.Now().UTC()).
				Where("text LIKE ? ESCAPE '\\'", escapeLike(oldPrefix)+"%").
				Exec(ctx)
			return err
		})
	})
}

// Remove deletes an entry and all its descendants. Removing a path
// that is not cataloged returns ErrNotFound.
func (c *Catalog) Remove(ctx context.Context, text string) error {
	if c.db == nil {
		return common.ErrClosed
	}
	normalized := c.canonical(text)
	return util.Retry(ctx, func() error {
		return c.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			res, err := tx.NewDelete().
				Model((*EntryModel)(nil)).
				Where("text = ?", normalized).
				Exec(ctx)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("remove %q: %w", normalized, common.ErrNotFound)
			}

			sep := string(pathalg.Style(normalized))
			prefix := strings.TrimSuffix(normalized, sep) + sep
			_, err = tx.NewDelete().
				Model((*EntryModel)(nil)).
				Where("text LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
				Exec(ctx)
			return err
		})
	})
}

// Count returns the number of cataloged entries.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	if c.db == nil {
		return 0, common.ErrClosed
	}
	return util.RetryWithResult(ctx, func() (int, error) {
		return c.db.NewSelect().Model((*EntryModel)(nil)).Count(ctx)
	})
}

// firstString drops the bool from Parent's two-value return for use
// in a query builder chain. A parentless path stores the empty string.
func firstString(s string, ok bool) string {
	if !ok {
		return ""
	}
	return s
}

// escapeLike escapes LIKE metacharacters in a literal prefix. Path
// text can legitimately contain "_" and "%".
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
