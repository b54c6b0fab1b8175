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

var absCmd = &cobra.Command{
	Use:   "abs <path>",
	Short: "Anchor a relative path at the configured working directory",
	Long: `Resolve a path against the working directory. Already-rooted paths pass
through unchanged. The working directory comes from config or --cwd; the
real process directory is only a fallback.

Examples:
  lexpath abs docs/readme.md
  lexpath --cwd /srv abs logs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(algEnv().Absolute(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(absCmd)
}
