// Package data holds sample input files for tests.
package data

import (
	"embed"
	"io/fs"
)

//go:embed root/*
var testFS embed.FS

// FS serves each file under root/ by its bare name, e.g. "test.txt".
var FS = mustSub(testFS, "root")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
