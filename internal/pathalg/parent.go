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

// Parent computes the lexical parent of text. ok is false when the
// path has no parent; that is a legitimate terminal value, not an
// error. Roots of any kind ("/", "C:", "C:\", "\\server", "~"), "."
// and "..", and bare names have no parent.
//
// A drive-root parent keeps its trailing separator ("C:\Windows" →
// "C:\"), and a path that ended in a separator keeps one on its parent
// too ("foo/../../" → "foo/../"). Parent never collapses ".."; only
// Normalize does.
func Parent(text string) (parent string, ok bool) {
	info := Classify(text)
	if info.IsRoot || text == "." || text == ".." || text == "" {
		return "", false
	}

	hadTrailing := len(text) > info.PrefixLen && IsSeparator(text[len(text)-1])
	end := len(text)
	if hadTrailing {
		end--
	}
	for i := end - 1; i >= info.PrefixLen; i-- {
		if IsSeparator(text[i]) {
			if hadTrailing {
				return text[:i+1], true
			}
			return text[:i], true
		}
	}

	// No separator beyond the prefix.
	switch info.Kind {
	case KindNone:
		return "", false
	case KindUNCRoot:
		// "\\server" is a share root in its own right.
		return "", false
	default:
		return text[:info.PrefixLen], true
	}
}

// Name returns the final name segment of text: everything after the
// last separator, ignoring a trailing one. Roots have no name.
func Name(text string) string {
	info := Classify(text)
	if info.IsRoot {
		return ""
	}
	end := len(text)
	for end > info.PrefixLen && IsSeparator(text[end-1]) {
		end--
	}
	start := end
	for start > info.PrefixLen && !IsSeparator(text[start-1]) {
		start--
	}
	return text[start:end]
}
