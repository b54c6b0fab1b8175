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

// Cd combines a base path with an addition the way a shell cd does: an
// addition that carries (or is) a root discards the base entirely.
// Exactly one separator is inserted between base and addition, in the
// base's style. The result is not normalized; callers normalize
// afterward if they need canonical form.
func Cd(base, addition string) string {
	info := Classify(addition)
	if info.HasRoot || info.IsRoot {
		return addition
	}
	if base == "" {
		// Concatenating onto nothing must not invent a root.
		return addition
	}
	if IsSeparator(base[len(base)-1]) {
		return base + addition
	}
	return base + string(Style(base)) + addition
}

// Join folds parts onto each other with Cd, skipping empty parts. When
// more than one part carries a root, the part where a root appears
// last is taken as the beginning of the result.
func Join(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out == "" {
			out = p
			continue
		}
		out = Cd(out, p)
	}
	return out
}

// Absolute resolves text against the injected working directory and
// returns the normalized result. Text that already carries a root is
// absolute by definition and is returned verbatim.
func (e Env) Absolute(text string) string {
	if Classify(text).HasRoot {
		return text
	}
	joined := Cd(e.WorkingDir, text)
	isDir := joined != "" && IsSeparator(joined[len(joined)-1])
	return e.Normalize(joined, isDir)
}
