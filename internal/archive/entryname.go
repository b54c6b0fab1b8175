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

// Package archive maps normalized path strings to zip archive entry
// names. Entry names are always slash-separated, never carry a root
// marker, and directory entries end with a single slash.
package archive

import (
	"strings"

	"lexpath/internal/pathalg"
)

// EntryName converts a normalized path into an archive entry name.
// The root marker is stripped: "/x" and "C:\x" and "~/x" all map to
// "x", while a UNC path keeps its server and share as leading entry
// segments. Separators are rewritten to the zip convention.
func EntryName(normalized string, isDir bool) string {
	info := pathalg.Classify(normalized)
	rest := normalized[info.PrefixLen:]

	var b strings.Builder
	b.Grow(len(rest) + 1)
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '\\' {
			c = '/'
		}
		b.WriteByte(c)
	}

	name := strings.Trim(b.String(), "/")
	if isDir && name != "" {
		name += "/"
	}
	return name
}
