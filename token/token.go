/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the placeholder type used in templated filenames.
//
// A token is a bare identifier wrapped in an escape character on both
// sides, e.g. "$size$" for the name "size" with the default escape "$".
package token

import (
	"fmt"
	"regexp"
	"sync"
)

// DefaultEscape is the delimiter used when no escape is given.
const DefaultEscape = "$"

// Token is a named placeholder. The zero value is not valid; use New or
// NewWithEscape.
type Token struct {
	name   string
	escape string
}

// Key is the comparable identity of a token. Two tokens are equal iff their
// keys are equal, which makes Key suitable as a map key for deduplication.
type Key struct {
	Name   string
	Escape string
}

// New parses a token delimited by DefaultEscape, e.g. "$size$".
func New(raw string) (*Token, error) {
	return NewWithEscape(raw, DefaultEscape)
}

// NewWithEscape parses raw as escape + name + escape.
// Returns ErrInvalidToken if raw does not have that exact shape.
func NewWithEscape(raw, escape string) (*Token, error) {
	if escape == "" {
		escape = DefaultEscape
	}
	t := &Token{escape: escape}
	if err := t.SetName(raw); err != nil {
		return nil, err
	}
	return t, nil
}

// Must is like New but panics on error. Intended for tests and literals.
func Must(raw string) *Token {
	t, err := New(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the bare token name without delimiters.
func (t Token) Name() string {
	return t.name
}

// Escape returns the delimiter character.
func (t Token) Escape() string {
	return t.escape
}

// SetName replaces the token name. raw must be in delimited form and is
// validated exactly as at construction; on error the name is unchanged.
func (t *Token) SetName(raw string) error {
	m := anchoredPattern(t.escape).FindStringSubmatch(raw)
	if m == nil {
		return fmt.Errorf("%w: %q does not match %s<name>%s", ErrInvalidToken, raw, t.escape, t.escape)
	}
	t.name = m[1]
	return nil
}

// Delimited returns the token with its escape characters, e.g. "$size$".
func (t Token) Delimited() string {
	return t.escape + t.name + t.escape
}

// String implements fmt.Stringer and renders the delimited form, which is
// also how an unresolved token appears inside a path.
func (t Token) String() string {
	return t.Delimited()
}

// Key returns the token's identity.
func (t Token) Key() Key {
	return Key{Name: t.name, Escape: t.escape}
}

// Equal reports whether other is a Token (or *Token) with the same name and
// escape. Any other value, including nil, compares unequal.
func (t Token) Equal(other any) bool {
	switch o := other.(type) {
	case Token:
		return t.Key() == o.Key()
	case *Token:
		return o != nil && t.Key() == o.Key()
	default:
		return false
	}
}

var (
	patternMu sync.Mutex
	// detection patterns keyed by escape, compiled on first use
	detectCache   = map[string]*regexp.Regexp{}
	anchoredCache = map[string]*regexp.Regexp{}
)

// Pattern returns the unanchored detection pattern escape\w+escape for the
// given escape. The result is cached.
func Pattern(escape string) *regexp.Regexp {
	return cachedPattern(detectCache, escape, `%s\w+%s`)
}

func anchoredPattern(escape string) *regexp.Regexp {
	return cachedPattern(anchoredCache, escape, `^%s(\w+)%s$`)
}

func cachedPattern(cache map[string]*regexp.Regexp, escape, format string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := cache[escape]; ok {
		return re
	}
	q := regexp.QuoteMeta(escape)
	re := regexp.MustCompile(fmt.Sprintf(format, q, q))
	cache[escape] = re
	return re
}
