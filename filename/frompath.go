/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename

import (
	"path"
	"path/filepath"
	"strings"

	"bennypowers.dev/fptokens/token"
)

// FromPath builds a Filename from a slash-separated template such as
// "assets/$size$/untitled_$size$.jpg". The directory part becomes Folders,
// the final element is split into Base on the separator and Extension after
// the last dot. A separator inside a delimited token never splits it. If the
// final element has no dot, the configured extension is kept.
//
// An absolute template keeps its leading slash as Root, and leading ".."
// elements of a relative one are moved into Root, so the template never
// changes location. Otherwise Root is empty.
//
// Options are applied before splitting, so WithSeparator and WithEscape take
// effect.
func FromPath(p string, opts ...Option) *Filename {
	f := New("", opts...)

	p = path.Clean(p)
	var root string
	if path.IsAbs(p) {
		root = "/"
		p = strings.TrimPrefix(p, "/")
	} else {
		for p == ".." || strings.HasPrefix(p, "../") {
			root = path.Join(root, "..")
			p = strings.TrimPrefix(strings.TrimPrefix(p, ".."), "/")
		}
	}
	if p == "." {
		p = ""
	}
	f.Root = filepath.FromSlash(root)
	dir, file := path.Split(p)

	if dir = strings.Trim(dir, "/"); dir != "" {
		f.Folders = Literals(strings.Split(dir, "/")...)
	}

	if i := strings.LastIndex(file, "."); i > 0 {
		f.Extension = file[i+1:]
		file = file[:i]
	}
	if file != "" {
		f.Base = Literals(splitOutsideTokens(file, f.Separator, f.escape())...)
	}
	return f
}

// splitOutsideTokens splits s on sep, skipping occurrences that fall inside
// a delimited token.
func splitOutsideTokens(s, sep, escape string) []string {
	if sep == "" {
		return []string{s}
	}
	spans := token.Pattern(escape).FindAllStringIndex(s, -1)
	inToken := func(i int) bool {
		for _, sp := range spans {
			if i >= sp[0] && i < sp[1] {
				return true
			}
		}
		return false
	}

	var parts []string
	start := 0
	for i := 0; i+len(sep) <= len(s); {
		if s[i:i+len(sep)] == sep && !inToken(i) {
			parts = append(parts, s[start:i])
			i += len(sep)
			start = i
			continue
		}
		i++
	}
	return append(parts, s[start:])
}
