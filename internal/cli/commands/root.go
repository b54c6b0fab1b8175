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
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lexpath/internal/config"
	"lexpath/internal/pathalg"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version info for --version flag
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = getVersionString()
}

// getVersionString returns the version string with build info
func getVersionString() string {
	buildDate := formatBuildDate(date)
	if strings.HasSuffix(version, "-dev") {
		return fmt.Sprintf("%s (%s, commit: %s)", version, buildDate, commit)
	}
	return fmt.Sprintf("%s (%s)", version, buildDate)
}

// formatBuildDate converts epoch timestamp to readable date
func formatBuildDate(epoch string) string {
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return epoch
	}
	return time.Unix(ts, 0).Format("2006-01-02")
}

var (
	flagHome    string
	flagCwd     string
	flagVerbose bool

	// cfg is loaded once in the persistent pre-run and read by every
	// subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lexpath",
	Short: "Pure path string algebra across Unix, Windows, and home conventions",
	Long: `lexpath manipulates path strings without touching the filesystem.
Classification, normalization, joining, and relative-path computation all
work uniformly across Unix roots, Windows drive letters, UNC shares, and
the "~" home convention.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagHome != "" {
			cfg.Home = flagHome
		}
		if flagCwd != "" {
			cfg.WorkingDir = flagCwd
		}

		log.SetLevel(log.WarnLevel)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else if lvl := cfg.LogLevel(); lvl != "" {
			if parsed, err := log.ParseLevel(lvl); err == nil {
				log.SetLevel(parsed)
			}
		}

		return nil
	},
}

// algEnv builds the path environment the algebra commands operate in.
func algEnv() pathalg.Env {
	return pathalg.Env{Home: cfg.Home, WorkingDir: cfg.WorkingDir}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("lexpath version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "home string substituted for \"~\" (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagCwd, "cwd", "", "base for relative paths (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
