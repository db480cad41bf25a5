/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package filename models file paths whose folder and base segments may hold
// tokens, and expands them into concrete paths.
package filename

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/fptokens/fs"
	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/token"
)

// Defaults applied by New.
const (
	DefaultSeparator = "_"
	DefaultExtension = "jpg"
)

// Filename is a templated path: root, folder segments, base segments joined
// by Separator, and an extension.
type Filename struct {
	// Root is the base directory. It is never checked for existence.
	Root string

	// Folders are the directory segments below Root.
	Folders []Segment

	// Base are the filename stem segments, joined by Separator.
	Base []Segment

	// Separator joins Base segments.
	Separator string

	// Extension is appended to the stem after a dot.
	Extension string

	// Escape is the token delimiter used by Parse.
	Escape string
}

// Option configures a Filename in New.
type Option func(*Filename)

// WithFolders sets literal folder segments.
func WithFolders(folders ...string) Option {
	return func(f *Filename) { f.Folders = Literals(folders...) }
}

// WithBase sets literal base segments.
func WithBase(base ...string) Option {
	return func(f *Filename) { f.Base = Literals(base...) }
}

// WithSeparator sets the base separator.
func WithSeparator(sep string) Option {
	return func(f *Filename) { f.Separator = sep }
}

// WithExtension sets the extension, without the leading dot.
func WithExtension(ext string) Option {
	return func(f *Filename) { f.Extension = strings.TrimPrefix(ext, ".") }
}

// WithEscape sets the token delimiter.
func WithEscape(escape string) Option {
	return func(f *Filename) {
		if escape != "" {
			f.Escape = escape
		}
	}
}

// New creates a Filename rooted at root. Segments are stored as literals;
// call Parse to detect tokens.
func New(root string, opts ...Option) *Filename {
	f := &Filename{
		Root:      root,
		Separator: DefaultSeparator,
		Extension: DefaultExtension,
		Escape:    token.DefaultEscape,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dirname returns Root joined with every folder segment.
func (f *Filename) Dirname() string {
	parts := make([]string, 0, len(f.Folders)+1)
	parts = append(parts, f.Root)
	for _, s := range f.Folders {
		parts = append(parts, s.String())
	}
	return filepath.Join(parts...)
}

// Basename returns the base segments joined by Separator plus the extension.
func (f *Filename) Basename() string {
	parts := make([]string, len(f.Base))
	for i, s := range f.Base {
		parts[i] = s.String()
	}
	return strings.Join(parts, f.Separator) + "." + f.Extension
}

// Path returns Dirname joined with Basename without making it absolute.
func (f *Filename) Path() string {
	return filepath.Join(f.Dirname(), f.Basename())
}

// FullPath returns the absolute, cleaned path. Relative roots are resolved
// against the working directory; nothing on disk is inspected.
func (f *Filename) FullPath() (string, error) {
	return filepath.Abs(f.Path())
}

// Tokens returns the distinct tokens in Folders and Base, in order of first
// appearance.
func (f *Filename) Tokens() []token.Token {
	var tokens []token.Token
	seen := make(map[token.Key]bool)
	for _, segs := range [][]Segment{f.Folders, f.Base} {
		for _, s := range segs {
			t, ok := s.Token()
			if !ok || seen[t.Key()] {
				continue
			}
			seen[t.Key()] = true
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Materialize creates Dirname and any missing parents on fsys. It fails with
// token.ErrUnresolvedToken, creating nothing, while any folder still holds a
// token.
func (f *Filename) Materialize(fsys fs.FileSystem) error {
	for i, s := range f.Folders {
		if s.IsToken() {
			return &SegmentError{List: "folders", Index: i, Raw: s.String(), Err: token.ErrUnresolvedToken}
		}
	}
	dir := f.Dirname()
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	logger.Debug("created directory %s", dir)
	return nil
}

// Clone returns a deep copy of f.
func (f *Filename) Clone() *Filename {
	c := *f
	c.Folders = slices.Clone(f.Folders)
	c.Base = slices.Clone(f.Base)
	return &c
}

// Equal reports structural equality on root, folders, basename, separator
// and extension.
func (f *Filename) Equal(o *Filename) bool {
	if f == nil || o == nil {
		return f == o
	}
	return filepath.Clean(f.Root) == filepath.Clean(o.Root) &&
		segmentsEqual(f.Folders, o.Folders) &&
		f.Basename() == o.Basename() &&
		f.Separator == o.Separator &&
		f.Extension == o.Extension
}

// String implements fmt.Stringer.
func (f *Filename) String() string {
	return "<Filename: " + f.Path() + ">"
}
