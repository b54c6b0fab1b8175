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

	"lexpath/internal/archive"
)

var entryNameDir bool

var entryNameCmd = &cobra.Command{
	Use:   "entry-name <path>",
	Short: "Map a path to its zip archive entry name",
	Long: `Print the archive entry name for a path: root markers stripped,
separators rewritten to slashes, a trailing slash for directories.

Examples:
  lexpath entry-name 'C:\Windows\notepad.exe'
  lexpath entry-name --dir /var/log`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized := algEnv().Normalize(args[0], entryNameDir)
		fmt.Println(archive.EntryName(normalized, entryNameDir))
		return nil
	},
}

func init() {
	entryNameCmd.Flags().BoolVar(&entryNameDir, "dir", false, "treat the path as a directory")
	rootCmd.AddCommand(entryNameCmd)
}
