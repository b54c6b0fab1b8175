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
	"gopkg.in/yaml.v3"

	"lexpath/internal/pathalg"
)

var classifyYAML bool

var classifyCmd = &cobra.Command{
	Use:   "classify <path>",
	Short: "Show the root convention a path string uses",
	Long: `Classify a path string by its leading root marker.

Examples:
  lexpath classify /etc/hosts
  lexpath classify 'C:\Windows'
  lexpath classify '\\server\share'
  lexpath classify '~/docs'`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyYAML, "yaml", false, "emit the classification as YAML")
	rootCmd.AddCommand(classifyCmd)
}

type classification struct {
	Kind      string `yaml:"kind"`
	PrefixLen int    `yaml:"prefix_len"`
	HasRoot   bool   `yaml:"has_root"`
	IsRoot    bool   `yaml:"is_root"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	info := pathalg.Classify(args[0])
	c := classification{
		Kind:      info.Kind.String(),
		PrefixLen: info.PrefixLen,
		HasRoot:   info.HasRoot,
		IsRoot:    info.IsRoot,
	}

	if classifyYAML {
		out, err := yaml.Marshal(c)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("Kind: %s\n", c.Kind)
	fmt.Printf("Prefix length: %d\n", c.PrefixLen)
	fmt.Printf("Rooted: %v\n", c.HasRoot)
	fmt.Printf("Is root: %v\n", c.IsRoot)
	return nil
}
