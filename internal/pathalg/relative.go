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

// Rel computes the minimal relative expression that leads from source
// to target. Equal paths (after normalization) yield ".". Paths under
// different roots (different drive, one UNC and the other not, rooted
// versus unrooted) cannot be bridged by a relative expression; the
// target is returned unchanged.
func (e Env) Rel(source, target string) string {
	src := e.Normalize(source, false)
	dst := e.Normalize(target, false)
	if src == dst {
		return "."
	}

	si := Classify(src)
	di := Classify(dst)
	if si.Kind != di.Kind || src[:si.PrefixLen] != dst[:di.PrefixLen] {
		return target
	}

	a := splitFrom(src, si.PrefixLen)
	b := splitFrom(dst, di.PrefixLen)
	a = dropEmpty(a)
	b = dropEmpty(b)

	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}

	parts := make([]string, 0, len(a)+len(b)-2*common)
	for range a[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, b[common:]...)
	if len(parts) == 0 {
		return "."
	}

	sep := Style(dst)
	if !strings.ContainsAny(dst, `/\`) {
		sep = Style(src)
	}
	return strings.Join(parts, string(sep))
}

func dropEmpty(segs []string) []string {
	out := segs[:0]
	for _, s := range segs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
