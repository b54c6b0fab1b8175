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

package pathalg

import "strings"

// Env carries the two process-supplied values the algebra is allowed
// to see. Callers obtain them once (process environment, config file)
// and pass them in; the algebra itself never reads globals, so
// concurrent callers cannot observe a working-directory change
// mid-computation.
type Env struct {
	Home       string
	WorkingDir string
}

// Normalize rewrites text into canonical form: one separator style,
// no duplicate separators, "." segments dropped and ".." segments
// collapsed where that is legal. A leading ".." on an unrooted path is
// preserved, since collapsing it would silently change meaning; a
// leading ".." on a rooted path clamps at the root.
//
// isDir controls the trailing separator: when false and the input did
// not end in a separator, the result carries none. The bare home
// symbol ("~", "~/") is substituted with the injected home value; this
// is the only place the algebra consumes it.
func (e Env) Normalize(text string, isDir bool) string {
	info := Classify(text)
	sep := Style(text)

	switch {
	case text == "":
		return ""
	case info.Kind == KindHomeRoot,
		info.Kind == KindHomeRelative && len(text) == info.PrefixLen:
		if e.Home != "" {
			return e.Home
		}
		return text
	case allSeparators(text):
		return info.Prefix(text, sep)
	case !strings.ContainsAny(text, `/\.~`):
		return text
	}

	out := make([]string, 0, 8)
	for _, seg := range splitFrom(text, info.PrefixLen) {
		switch seg {
		case "", ".":
			// redundant
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else if !info.HasRoot {
				out = append(out, "..")
			}
			// rooted with nothing emitted: ".." above the root clamps
		default:
			out = append(out, seg)
		}
	}

	// A home-anchored path whose segments all resolved away denotes the
	// home directory itself, same as the bare symbol.
	if len(out) == 0 && (info.Kind == KindHomeRoot || info.Kind == KindHomeRelative) {
		if e.Home != "" {
			return e.Home
		}
		return info.Prefix(text, sep)
	}

	var b strings.Builder
	b.WriteString(info.Prefix(text, sep))
	for i, seg := range out {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(seg)
	}
	if len(out) > 0 && (isDir || IsSeparator(text[len(text)-1])) {
		b.WriteByte(sep)
	}
	result := b.String()

	// Dropping "." segments from an unprefixed path must not surface a
	// new root marker ("./~" collapsing to "~" would change meaning).
	// Keep one explicit current-directory segment in front.
	if info.Kind == KindNone && Classify(result).Kind != KindNone {
		return "." + string(sep) + result
	}
	return result
}

func allSeparators(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !IsSeparator(text[i]) {
			return false
		}
	}
	return true
}
