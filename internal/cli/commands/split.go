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

	"lexpath/internal/pathalg"
)

var splitCmd = &cobra.Command{
	Use:   "split <path>",
	Short: "List the components of a path, one per line",
	Long: `Split a path into its root marker (if any) followed by each segment.

Examples:
  lexpath split /usr/local/bin
  lexpath split 'C:\Users\me'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, part := range pathalg.Split(args[0]) {
			fmt.Println(part)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
}
