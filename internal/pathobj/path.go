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

// Package pathobj wraps a raw path string together with the values
// derived from it (classification, normalized form, parent, name,
// absolute form), memoized in a single immutable record.
//
// The record is swapped in wholesale through an atomic pointer: a
// reader either sees an underived record and materializes a fresh one,
// or a fully filled record. Racing readers may duplicate work, but a
// partially computed record can never be observed. Renaming the path
// replaces the record, which drops every derived value at once.
package pathobj

import (
	"sync/atomic"

	"lexpath/internal/pathalg"
)

// Path is a handle on a path string with memoized derived values.
// Safe for concurrent use.
type Path struct {
	env   pathalg.Env
	state atomic.Pointer[derived]
}

// derived carries the text and everything computed from it. Immutable
// after publication.
type derived struct {
	text   string
	filled bool

	info       pathalg.PrefixInfo
	normalized string
	absolute   string
	parent     string
	hasParent  bool
	name       string
}

// New creates a Path over text. env supplies the injected home and
// working-directory values used by derivations.
func New(env pathalg.Env, text string) *Path {
	p := &Path{env: env}
	p.state.Store(&derived{text: text})
	return p
}

// Text returns the current raw text.
func (p *Path) Text() string {
	return p.state.Load().text
}

// Rename replaces the backing text. Every memoized derived value is
// dropped in the same swap.
func (p *Path) Rename(text string) {
	p.state.Store(&derived{text: text})
}

// materialize returns a fully derived record for the current text,
// computing and publishing one if needed.
func (p *Path) materialize() *derived {
	d := p.state.Load()
	if d.filled {
		return d
	}
	nd := &derived{
		text:   d.text,
		filled: true,

		info:       pathalg.Classify(d.text),
		normalized: p.env.Normalize(d.text, false),
		absolute:   p.env.Absolute(d.text),
		name:       pathalg.Name(d.text),
	}
	nd.parent, nd.hasParent = pathalg.Parent(d.text)
	// Publish unless a rename slipped in. Either way nd is correct for
	// the text it was computed from.
	p.state.CompareAndSwap(d, nd)
	return nd
}

// Info returns the root classification of the path.
func (p *Path) Info() pathalg.PrefixInfo {
	return p.materialize().info
}

// Normalized returns the canonical form of the path.
func (p *Path) Normalized() string {
	return p.materialize().normalized
}

// Absolute returns the path resolved against the environment's working
// directory.
func (p *Path) Absolute() string {
	return p.materialize().absolute
}

// Parent returns the lexical parent, and false when the path has none.
func (p *Path) Parent() (string, bool) {
	d := p.materialize()
	return d.parent, d.hasParent
}

// Name returns the final name segment.
func (p *Path) Name() string {
	return p.materialize().name
}
