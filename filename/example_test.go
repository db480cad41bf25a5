/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filename_test

import (
	"fmt"

	"bennypowers.dev/fptokens/filename"
)

func ExampleFilename_Resolve() {
	f := filename.New("out",
		filename.WithFolders("assets", "$size$"),
		filename.WithBase("cover", "$size$", "$lang$"),
		filename.WithExtension("png"),
	)
	if err := f.Parse(); err != nil {
		panic(err)
	}

	paths, err := f.Resolve(filename.Values{
		"size": {"small", "large"},
		"lang": {"en", "fr"},
	})
	if err != nil {
		panic(err)
	}
	for p := range paths {
		fmt.Println(p.Path())
	}
	// Output:
	// out/assets/small/cover_small_en.png
	// out/assets/small/cover_small_fr.png
	// out/assets/large/cover_large_en.png
	// out/assets/large/cover_large_fr.png
}

func ExampleFromPath() {
	f := filename.FromPath("assets/$sizes$/untitled_$sizes$.jpg")
	fmt.Println(f.Folders, f.Base, f.Extension)
	// Output: [assets $sizes$] [untitled $sizes$] jpg
}
