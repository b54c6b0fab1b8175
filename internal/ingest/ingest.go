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

// Package ingest walks a filesystem tree and catalogs every path it
// finds. The walk is the only place lexpath touches a filesystem; the
// path algebra underneath stays pure.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"lexpath/internal/catalog"
	"lexpath/internal/pathalg"
)

// Options controls which walked paths are cataloged.
type Options struct {
	// Gitignore applies .gitignore rules found in the tree.
	Gitignore bool
	// Includes force-indexes paths even when gitignored.
	Includes []string
	// Excludes force-skips paths. Takes precedence over Includes.
	Excludes []string
}

// Result summarizes one ingest run.
type Result struct {
	RunID   string
	Indexed int
	Skipped int
}

// Run walks fs from root and upserts each surviving path into cat.
// Catalog texts are root joined with the walked relative path, so the
// stored entries share root's prefix convention. Each run gets a fresh
// UUID that tags the rows it touched.
func Run(ctx context.Context, fs billy.Filesystem, root string, cat *catalog.Catalog, opts Options) (*Result, error) {
	runID := uuid.New().String()
	logger := log.WithFields(log.Fields{
		"run_id": runID,
		"root":   root,
	})
	logger.Info("ingest started")

	filter := BuildFileFilter(fs, root, opts.Gitignore, opts.Includes, opts.Excludes)
	result := &Result{RunID: runID}

	err := util.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			logger.WithError(err).WithField("path", p).Warn("walk error, skipping")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel := relativeTo(root, p)
		if rel == "" {
			return nil
		}
		if !filter(rel, info.IsDir()) {
			result.Skipped++
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		text := pathalg.Cd(root, rel)
		if _, err := cat.Put(ctx, text, info.IsDir(), runID); err != nil {
			return fmt.Errorf("catalog %q: %w", text, err)
		}
		result.Indexed++
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ingest failed")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"indexed": result.Indexed,
		"skipped": result.Skipped,
	}).Info("ingest finished")
	return result, nil
}
