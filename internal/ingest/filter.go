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

package ingest

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	ignore "github.com/sabhiram/go-gitignore"
	log "github.com/sirupsen/logrus"
)

// FileFilter decides whether a walked path is indexed. relPath is
// slash-separated and relative to the ingest root.
type FileFilter func(relPath string, isDir bool) bool

// BuildFileFilter creates a FileFilter that:
// 1. Checks excludes list (force-exclude, highest priority)
// 2. Checks includes list (force-include, overrides gitignore)
// 3. Applies gitignore rules collected from the tree
func BuildFileFilter(fs billy.Filesystem, root string, gitignoreEnabled bool, includes, excludes []string) FileFilter {
	var matcher *gitignoreMatcher
	if gitignoreEnabled {
		var err error
		matcher, err = newGitignoreMatcher(fs, root)
		if err != nil {
			log.WithError(err).Warn("failed to build gitignore matcher")
		}
	}

	return func(relPath string, isDir bool) bool {
		for _, exc := range excludes {
			if relPath == exc || strings.HasPrefix(relPath, exc+"/") {
				return false
			}
		}

		for _, inc := range includes {
			if relPath == inc || strings.HasPrefix(relPath, inc+"/") {
				return true
			}
		}

		if matcher != nil && matcher.isIgnored(relPath, isDir) {
			return false
		}

		return true
	}
}

// gitignoreMatcher collects .gitignore rules from a tree. Each file's
// rules apply only beneath its own directory.
type gitignoreMatcher struct {
	matchers []scopedMatcher
}

type scopedMatcher struct {
	dirPrefix string
	ignore    *ignore.GitIgnore
}

func newGitignoreMatcher(fs billy.Filesystem, root string) (*gitignoreMatcher, error) {
	m := &gitignoreMatcher{}

	err := util.Walk(fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if info.Name() == ".git" && p != root {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != ".gitignore" {
			return nil
		}

		data, readErr := util.ReadFile(fs, p)
		if readErr != nil {
			return nil
		}

		relDir := relativeTo(root, path.Dir(p))
		lines := strings.Split(string(data), "\n")
		m.matchers = append(m.matchers, scopedMatcher{
			dirPrefix: relDir,
			ignore:    ignore.CompileIgnoreLines(lines...),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *gitignoreMatcher) isIgnored(relPath string, isDir bool) bool {
	if m == nil || len(m.matchers) == 0 {
		return false
	}

	checkPath := relPath
	if isDir {
		checkPath = relPath + "/"
	}

	for _, sm := range m.matchers {
		var pathToCheck string
		if sm.dirPrefix == "" {
			pathToCheck = checkPath
		} else {
			prefix := sm.dirPrefix + "/"
			if !strings.HasPrefix(relPath, prefix) {
				continue
			}
			pathToCheck = strings.TrimPrefix(checkPath, prefix)
		}

		if sm.ignore.MatchesPath(pathToCheck) {
			return true
		}
	}
	return false
}

// relativeTo strips root from p, returning a slash-separated relative
// path or "" when p is the root itself.
func relativeTo(root, p string) string {
	if p == root {
		return ""
	}
	rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/")+"/")
	return strings.Trim(rel, "/")
}
