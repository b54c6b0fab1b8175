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

	"github.com/spf13/cobra"

	"lexpath/internal/catalog"
)

var lsCmd = &cobra.Command{
	Use:   "ls <path>",
	Short: "List cataloged children of a path",
	Long: `List the entries the catalog holds directly under a path. The argument
is normalized first, so any spelling of the same path works.

Examples:
  lexpath ls /projects/app
  lexpath ls '/projects/./app'`,
	Args: cobra.ExactArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Open(cfg.Catalog, algEnv())
	if err != nil {
		return err
	}
	defer cat.Close()

	children, err := cat.Children(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, child := range children {
		name := child.Name
		if child.IsDir {
			name += "/"
		}
		fmt.Println(name)
	}
	return nil
}
