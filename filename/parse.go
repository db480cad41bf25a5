/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename

import (
	"strconv"
	"strings"

	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/token"
)

// SegmentError reports a problem with one segment of a Filename.
type SegmentError struct {
	// List is "folders" or "base".
	List string
	// Index is the segment's position within List.
	Index int
	// Raw is the segment as it appears in the path.
	Raw string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *SegmentError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.List)
	sb.WriteString("[")
	sb.WriteString(strconv.Itoa(e.Index))
	sb.WriteString("] ")
	sb.WriteString(strconv.Quote(e.Raw))
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Parse detects tokens in literal segments of Folders then Base and replaces
// each matching segment in place with a token. A literal with one match is
// replaced whole, so any text around the token is dropped. A literal with
// more than one match fails with token.ErrTooManyTokens; segments converted
// before the failure stay converted. Segments that already hold a token are
// skipped, which makes Parse idempotent.
func (f *Filename) Parse() error {
	pattern := token.Pattern(f.escape())
	lists := []struct {
		name string
		segs []Segment
	}{
		{"folders", f.Folders},
		{"base", f.Base},
	}

	for _, l := range lists {
		for i, s := range l.segs {
			if s.IsToken() {
				continue
			}
			matches := pattern.FindAllString(s.text, -1)
			switch len(matches) {
			case 0:
				continue
			case 1:
				tok, err := token.NewWithEscape(matches[0], f.escape())
				if err != nil {
					return &SegmentError{List: l.name, Index: i, Raw: s.text, Err: err}
				}
				l.segs[i] = Placeholder(*tok)
				logger.Debug("detected token %s in %s[%d]", tok, l.name, i)
			default:
				return &SegmentError{List: l.name, Index: i, Raw: s.text, Err: token.ErrTooManyTokens}
			}
		}
	}
	return nil
}

func (f *Filename) escape() string {
	if f.Escape == "" {
		return token.DefaultEscape
	}
	return f.Escape
}
