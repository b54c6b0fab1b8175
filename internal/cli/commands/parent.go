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

var parentCmd = &cobra.Command{
	Use:   "parent <path>",
	Short: "Show the containing path",
	Long: `Print the parent of a path string. Roots and bare names have no parent.

Examples:
  lexpath parent /usr/local/bin
  lexpath parent 'C:\Windows'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, ok := pathalg.Parent(args[0])
		if !ok {
			return fmt.Errorf("%q has no parent", args[0])
		}
		fmt.Println(parent)
		return nil
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <path>",
	Short: "Show the final path component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(pathalg.Name(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentCmd)
	rootCmd.AddCommand(nameCmd)
}
