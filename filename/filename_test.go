/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"bennypowers.dev/fptokens/filename"
	"bennypowers.dev/fptokens/fs"
	"bennypowers.dev/fptokens/internal/mapfs"
	"bennypowers.dev/fptokens/token"
)

// fixture mirrors the common case: a token folder and a token in the stem.
func fixture(root string) *filename.Filename {
	return filename.New(root,
		filename.WithFolders("$token$", "subfolder"),
		filename.WithBase("this", "file", "$token2$"),
	)
}

func mustParse(t *testing.T, f *filename.Filename) {
	t.Helper()
	if err := f.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
}

func tokenNames(f *filename.Filename) []string {
	var names []string
	for _, tok := range f.Tokens() {
		names = append(names, tok.Name())
	}
	return names
}

func TestNew_Defaults(t *testing.T) {
	f := filename.New("/out")
	if f.Separator != "_" || f.Extension != "jpg" || f.Escape != "$" {
		t.Errorf("defaults: got separator %q, extension %q, escape %q", f.Separator, f.Extension, f.Escape)
	}
	if len(f.Folders) != 0 || len(f.Base) != 0 {
		t.Errorf("expected no segments, got %v / %v", f.Folders, f.Base)
	}

	f = filename.New("/out", filename.WithExtension(".png"), filename.WithSeparator("-"), filename.WithEscape(">"))
	if f.Separator != "-" || f.Extension != "png" || f.Escape != ">" {
		t.Errorf("options: got separator %q, extension %q, escape %q", f.Separator, f.Extension, f.Escape)
	}
}

func TestBasename(t *testing.T) {
	f := fixture("")
	want := "this_file_$token2$.jpg"
	if got := f.Basename(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	mustParse(t, f)
	if got := f.Basename(); got != want {
		t.Errorf("tokens must render in delimited form: got %q, want %q", got, want)
	}
}

func TestDirname(t *testing.T) {
	f := fixture("/root")
	want := filepath.Join("/root", "$token$", "subfolder")
	if got := f.Dirname(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	mustParse(t, f)
	if got := f.Dirname(); got != want {
		t.Errorf("after Parse: got %q, want %q", got, want)
	}
}

func TestFullPath(t *testing.T) {
	dir := t.TempDir()
	f := fixture(dir)

	got, err := f.FullPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dir, "$token$", "subfolder", "this_file_$token2$.jpg"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := os.Stat(got); !os.IsNotExist(err) {
		t.Errorf("FullPath must not touch the filesystem, stat err = %v", err)
	}

	rel := filename.New("rel", filename.WithBase("a"))
	got, err = rel.FullPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "rel", "a.jpg"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	f := fixture("")
	if n := len(f.Tokens()); n != 0 {
		t.Fatalf("expected no tokens before Parse, got %d", n)
	}

	mustParse(t, f)
	if got, want := tokenNames(f), []string{"token", "token2"}; !slices.Equal(got, want) {
		t.Errorf("tokens: got %v, want %v", got, want)
	}
	if !f.Folders[0].IsToken() || f.Folders[1].IsToken() || !f.Base[2].IsToken() {
		t.Errorf("unexpected segment kinds: folders %v, base %v", f.Folders, f.Base)
	}
}

func TestParse_Idempotent(t *testing.T) {
	f := fixture("")
	mustParse(t, f)
	first := tokenNames(f)
	before := f.Clone()

	mustParse(t, f)
	if got := tokenNames(f); !slices.Equal(got, first) {
		t.Errorf("tokens changed: got %v, want %v", got, first)
	}
	if !before.Equal(f) {
		t.Errorf("second Parse changed the path: %s vs %s", before, f)
	}
}

func TestParse_Dedup(t *testing.T) {
	f := filename.New("",
		filename.WithFolders("assets", "$sizes$", "$colors$"),
		filename.WithBase("untitled", "$sizes$", "$colors$"),
	)
	mustParse(t, f)

	if got, want := tokenNames(f), []string{"sizes", "colors"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_TooManyTokens(t *testing.T) {
	tests := []struct {
		name    string
		folders []string
		base    []string
		list    string
		index   int
	}{
		{name: "repeated token in folder", folders: []string{"$token$$token$", "subfolder"}, base: []string{"this"}, list: "folders", index: 0},
		{name: "two tokens in base", folders: []string{"a"}, base: []string{"x", "$a$$b$"}, list: "base", index: 1},
		{name: "tokens with text between", folders: []string{"$a$-$b$"}, list: "folders", index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filename.New("", filename.WithFolders(tt.folders...), filename.WithBase(tt.base...))
			err := f.Parse()
			if !errors.Is(err, token.ErrTooManyTokens) || !errors.Is(err, token.ErrToken) {
				t.Fatalf("expected ErrTooManyTokens, got %v", err)
			}

			var segErr *filename.SegmentError
			if !errors.As(err, &segErr) {
				t.Fatalf("expected *SegmentError, got %T", err)
			}
			if segErr.List != tt.list || segErr.Index != tt.index {
				t.Errorf("got %s[%d], want %s[%d]", segErr.List, segErr.Index, tt.list, tt.index)
			}
		})
	}
}

func TestParse_EmbeddedTokenReplacesSegment(t *testing.T) {
	f := filename.New("", filename.WithBase("untitled$sizes$", "x"))
	mustParse(t, f)

	tok, ok := f.Base[0].Token()
	if !ok || tok.Name() != "sizes" {
		t.Fatalf("expected token sizes, got %v (%v)", tok, ok)
	}
	if got, want := f.Basename(), "$sizes$_x.jpg"; got != want {
		t.Errorf("surrounding literal text must be dropped: got %q, want %q", got, want)
	}
}

func TestParse_CustomEscape(t *testing.T) {
	f := filename.New("",
		filename.WithFolders(">size>", "$literal$"),
		filename.WithEscape(">"),
	)
	mustParse(t, f)

	tokens := f.Tokens()
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if want := (token.Key{Name: "size", Escape: ">"}); tokens[0].Key() != want {
		t.Errorf("got %+v, want %+v", tokens[0].Key(), want)
	}
	if f.Folders[1].IsToken() {
		t.Error("$literal$ must stay literal with escape >")
	}
}

func TestTokens_PrebuiltPlaceholders(t *testing.T) {
	f := filename.New("")
	f.Folders = []filename.Segment{filename.Placeholder(*token.Must("$a$"))}
	f.Base = []filename.Segment{filename.Placeholder(*token.Must("$a$")), filename.Literal("b")}

	if n := len(f.Tokens()); n != 1 {
		t.Errorf("expected 1 token, got %d", n)
	}
	mustParse(t, f)
	if n := len(f.Tokens()); n != 1 {
		t.Errorf("expected 1 token after Parse, got %d", n)
	}
}

func TestMaterialize(t *testing.T) {
	mfs := mapfs.New()
	f := filename.New("/out", filename.WithFolders("assets", "big"), filename.WithBase("x"))

	if err := f.Materialize(mfs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := mfs.Dirs(), []string{"/out/assets/big"}; !slices.Equal(got, want) {
		t.Errorf("dirs: got %v, want %v", got, want)
	}

	// Existing directories are not an error.
	if err := f.Materialize(mfs); err != nil {
		t.Errorf("second Materialize: %v", err)
	}
}

func TestMaterialize_UnresolvedToken(t *testing.T) {
	mfs := mapfs.New()
	f := fixture("/out")
	mustParse(t, f)

	if err := f.Materialize(mfs); !errors.Is(err, token.ErrUnresolvedToken) {
		t.Fatalf("expected ErrUnresolvedToken, got %v", err)
	}
	if mfs.MkdirCalls() != 0 || mfs.Exists("/out") {
		t.Error("nothing may be created for an unresolved folder")
	}
}

func TestMaterialize_TokenOnlyInBase(t *testing.T) {
	mfs := mapfs.New()
	f := filename.New("/out", filename.WithFolders("a"), filename.WithBase("$name$"))
	mustParse(t, f)

	if err := f.Materialize(mfs); err != nil {
		t.Fatalf("tokens in the base must not block directory creation: %v", err)
	}
	if !mfs.Exists("/out/a") {
		t.Error("expected /out/a")
	}
}

func TestMaterialize_OS(t *testing.T) {
	root := t.TempDir()
	f := filename.New(root, filename.WithFolders("x", "y"))

	if err := f.Materialize(fs.NewOSFileSystem()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(filepath.Join(root, "x", "y"))
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestEqual(t *testing.T) {
	dir := t.TempDir()
	f1 := fixture(dir)
	f2 := fixture(dir)
	if !f1.Equal(f2) {
		t.Error("identical paths must be equal")
	}

	f2.Folders = append(f2.Folders, filename.Literal("another_subfolder"))
	if f1.Equal(f2) {
		t.Error("extra folder must make paths unequal")
	}

	f3 := fixture(dir)
	mustParse(t, f3)
	if f1.Equal(f3) {
		t.Error("a literal and a token are different segments")
	}

	if f1.Equal(nil) {
		t.Error("nil must compare unequal")
	}
}

func TestClone(t *testing.T) {
	f := fixture("/r")
	c := f.Clone()
	mustParse(t, c)

	if f.Folders[0].IsToken() {
		t.Error("parsing a clone must leave the original alone")
	}
	if !c.Folders[0].IsToken() {
		t.Error("clone was not parsed")
	}
}

func TestString(t *testing.T) {
	f := filename.New("/r", filename.WithBase("a"))
	if got, want := f.String(), "<Filename: "+filepath.Join("/r", "a.jpg")+">"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
