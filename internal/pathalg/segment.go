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

// Style returns the separator style of text: '\\' when the first
// separator that appears is a backslash, '/' otherwise. Normalized
// output uses exactly one style.
func Style(text string) byte {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			return '\\'
		case '/':
			return '/'
		}
	}
	return '/'
}

// Split breaks a path into its ordered name segments. When the path
// carries a root marker, the marker substring is the first element.
// Empty segments are dropped; callers are expected to pass text that
// already went through Normalize.
func Split(text string) []string {
	info := Classify(text)
	segs := splitFrom(text, info.PrefixLen)
	out := make([]string, 0, len(segs)+1)
	if info.PrefixLen > 0 {
		out = append(out, text[:info.PrefixLen])
	}
	for _, s := range segs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitFrom splits text[from:] on either separator style. Empty
// segments are kept; callers decide what they mean.
func splitFrom(text string, from int) []string {
	if from > len(text) {
		panic("pathalg: prefix length out of range")
	}
	var segs []string
	start := from
	for i := from; i < len(text); i++ {
		if IsSeparator(text[i]) {
			segs = append(segs, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		segs = append(segs, text[start:])
	}
	return segs
}
