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

// Package pathalg is a pure, filesystem-free path string algebra. It
// classifies, normalizes, joins and relates path strings across four
// root conventions: Unix roots ("/"), Windows drive labels ("C:",
// "C:\"), UNC shares ("\\server") and the home-directory symbol ("~").
//
// Every function is total: any input string, including the empty
// string, yields a deterministic result. Nothing here touches the
// disk, blocks, or reads process globals; the two ambient values the
// algebra needs (home directory, working directory) are injected
// through Env.
package pathalg

// PrefixKind identifies the root convention a path string is anchored to.
type PrefixKind int

const (
	// KindNone marks a plain relative path with no root marker.
	KindNone PrefixKind = iota
	// KindUnixRoot marks a path starting with a single separator.
	KindUnixRoot
	// KindDriveRelative marks a drive label with no following separator
	// ("C:file.txt"), relative to that drive's current directory.
	KindDriveRelative
	// KindDriveRoot marks a drive label followed by a separator ("C:\").
	KindDriveRoot
	// KindUNCRoot marks a network-share path starting with two separators.
	KindUNCRoot
	// KindHomeRelative marks "~" followed by a separator.
	KindHomeRelative
	// KindHomeRoot marks the bare home symbol "~".
	KindHomeRoot
)

func (k PrefixKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnixRoot:
		return "unix-root"
	case KindDriveRelative:
		return "drive-relative"
	case KindDriveRoot:
		return "drive-root"
	case KindUNCRoot:
		return "unc-root"
	case KindHomeRelative:
		return "home-relative"
	case KindHomeRoot:
		return "home-root"
	}
	return "invalid"
}

// PrefixInfo describes the leading root marker of a path string.
type PrefixInfo struct {
	Kind PrefixKind
	// PrefixLen is the count of leading characters that belong to the
	// root marker: 3 for "C:\", 2 for "\\" and "~/", 1 for "/" and "~".
	PrefixLen int
	// HasRoot reports whether the path is anchored to some root, even
	// if not fully resolved. A drive-relative path has a prefix but no
	// root.
	HasRoot bool
	// IsRoot reports whether the path is the root itself, with no
	// further segments.
	IsRoot bool
}

// IsSeparator reports whether c is a path separator. Both styles count.
func IsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Classify inspects the leading characters of text and returns its root
// metadata. Total: every input, including "", yields a result.
//
// Candidates are checked in priority order, first match wins:
// home symbol, UNC, drive label, unix root, none.
func Classify(text string) PrefixInfo {
	n := len(text)
	switch {
	case n >= 1 && text[0] == '~' && (n == 1 || IsSeparator(text[1])):
		if n == 1 {
			return PrefixInfo{Kind: KindHomeRoot, PrefixLen: 1, HasRoot: true, IsRoot: true}
		}
		return PrefixInfo{Kind: KindHomeRelative, PrefixLen: 2, HasRoot: true}
	case n >= 2 && IsSeparator(text[0]) && IsSeparator(text[1]):
		return PrefixInfo{Kind: KindUNCRoot, PrefixLen: 2, HasRoot: true, IsRoot: n == 2}
	case n >= 2 && text[1] == ':' && isDriveLetter(text[0]):
		if n >= 3 && IsSeparator(text[2]) {
			return PrefixInfo{Kind: KindDriveRoot, PrefixLen: 3, HasRoot: true, IsRoot: n == 3}
		}
		return PrefixInfo{Kind: KindDriveRelative, PrefixLen: 2, IsRoot: n == 2}
	case n >= 1 && IsSeparator(text[0]):
		return PrefixInfo{Kind: KindUnixRoot, PrefixLen: 1, HasRoot: true, IsRoot: n == 1}
	default:
		return PrefixInfo{Kind: KindNone}
	}
}

// Prefix returns the root-marker substring of text, canonicalized to
// the given separator style. A forward-slash UNC prefix carries no
// share semantics and collapses to the plain root.
func (i PrefixInfo) Prefix(text string, sep byte) string {
	switch i.Kind {
	case KindNone:
		return ""
	case KindUnixRoot:
		return string(sep)
	case KindUNCRoot:
		if sep == '/' {
			return "/"
		}
		return `\\`
	case KindDriveRelative:
		return text[:2]
	case KindDriveRoot:
		return text[:2] + string(sep)
	case KindHomeRoot:
		return "~"
	case KindHomeRelative:
		return "~" + string(sep)
	}
	panic("pathalg: invalid prefix kind")
}
