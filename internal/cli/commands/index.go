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

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"lexpath/internal/catalog"
	"lexpath/internal/config"
	"lexpath/internal/ingest"
)

var indexCmd = &cobra.Command{
	Use:   "index [dir]",
	Short: "Walk a directory tree and catalog every path",
	Long: `Index a directory tree into the catalog database. Paths are stored in
normalized form so later lookups are spelling-insensitive. Honors the
gitignore, includes, and excludes settings from config.

Examples:
  lexpath index
  lexpath index ~/projects/app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cat, err := catalog.Open(cfg.Catalog, algEnv())
	if err != nil {
		return err
	}
	defer cat.Close()

	result, err := ingest.Run(cmd.Context(), osfs.New("/"), root, cat, ingest.Options{
		Gitignore: cfg.GitignoreEnabled(),
		Includes:  cfg.Includes,
		Excludes:  cfg.Excludes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Run: %s\n", result.RunID)
	fmt.Printf("Indexed: %d\n", result.Indexed)
	fmt.Printf("Skipped: %d\n", result.Skipped)
	return nil
}
