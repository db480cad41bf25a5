/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename

import "bennypowers.dev/fptokens/token"

// Segment is one element of a folder or base list: either a literal string
// or a token. Segments are values; copying one never shares state.
type Segment struct {
	text  string
	tok   token.Token
	isTok bool
}

// Literal returns a literal segment.
func Literal(s string) Segment {
	return Segment{text: s}
}

// Placeholder returns a segment holding t.
func Placeholder(t token.Token) Segment {
	return Segment{tok: t, isTok: true}
}

// Literals converts strings to literal segments.
func Literals(parts ...string) []Segment {
	segs := make([]Segment, len(parts))
	for i, p := range parts {
		segs[i] = Literal(p)
	}
	return segs
}

// IsToken reports whether the segment holds a token.
func (s Segment) IsToken() bool {
	return s.isTok
}

// Token returns the held token and true, or the zero Token and false for a
// literal segment.
func (s Segment) Token() (token.Token, bool) {
	return s.tok, s.isTok
}

// String renders the segment as it appears in a path. Unresolved tokens
// render in their delimited form.
func (s Segment) String() string {
	if s.isTok {
		return s.tok.Delimited()
	}
	return s.text
}

// Equal reports whether both segments are the same kind with the same content.
func (s Segment) Equal(o Segment) bool {
	if s.isTok != o.isTok {
		return false
	}
	if s.isTok {
		return s.tok.Key() == o.tok.Key()
	}
	return s.text == o.text
}

func segmentsEqual(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
