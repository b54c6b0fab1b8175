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
)

var normDir bool

var normCmd = &cobra.Command{
	Use:   "norm <path>",
	Short: "Normalize a path string",
	Long: `Collapse "." and ".." segments, repeated separators, and the "~" home
symbol without touching the filesystem.

Examples:
  lexpath norm /foo/../bar
  lexpath norm 'C:\..\bar'
  lexpath norm --dir build`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(algEnv().Normalize(args[0], normDir))
		return nil
	},
}

func init() {
	normCmd.Flags().BoolVar(&normDir, "dir", false, "treat the path as a directory (keep trailing separator)")
	rootCmd.AddCommand(normCmd)
}
