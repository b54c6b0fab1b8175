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

var joinCmd = &cobra.Command{
	Use:   "join <part>...",
	Short: "Join path fragments",
	Long: `Join fragments left to right. A rooted fragment restarts the result,
so the last rooted fragment wins.

Examples:
  lexpath join usr local bin
  lexpath join /etc ../var log`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(pathalg.Join(args...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)
}
