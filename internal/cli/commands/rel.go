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

var relCmd = &cobra.Command{
	Use:   "rel <source> <target>",
	Short: "Express target relative to source",
	Long: `Compute the relative path from source to target. When the two share no
root convention the target is returned unchanged.

Examples:
  lexpath rel /data/system/bin /home
  lexpath rel 'C:\a\b' 'C:\a\c\d'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(algEnv().Rel(args[0], args[1]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(relCmd)
}
