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
	"time"

	"github.com/uptrace/bun"
)

// EntryModel is a cataloged path. Text is the normalized form and is
// unique; Parent and Name are the derived split so children can be
// listed without re-deriving them per query.
type EntryModel struct {
	bun.BaseModel `bun:"table:entries"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Text      string    `bun:"text,notnull,unique"`
	Parent    string    `bun:"parent,notnull"`
	Name      string    `bun:"name,notnull"`
	Kind      string    `bun:"kind,notnull"`
	HasRoot   bool      `bun:"has_root,notnull"`
	IsDir     bool      `bun:"is_dir,notnull"`
	RunID     string    `bun:"run_id,notnull,default:''"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// catalogSchema creates the entries table. Statements are executed
// individually for libsql compatibility.
const catalogSchema = `
CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL UNIQUE,
    parent TEXT NOT NULL,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    has_root INTEGER NOT NULL,
    is_dir INTEGER NOT NULL,
    run_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_parent ON entries(parent);
CREATE INDEX IF NOT EXISTS idx_entries_run_id ON entries(run_id);
`
