// Package versionfile names successive versions of a file by appending
// an increasing numeric extension to a fixed base name: for base
// /var/backups/db.dump the versions are /var/backups/db.dump.1,
// /var/backups/db.dump.2 and so on.
package versionfile

import (
	"path/filepath"
	"sort"
	"strconv"

	"github.com/liftgrid/liftgrid/internal/fsutil"
)

// File tracks the versions sharing one base name.
type File struct {
	base string
}

// New returns a File for the given base name.
func New(basename string) *File {
	return &File{base: basename}
}

// Base returns the base name versions are derived from.
func (f *File) Base() string { return f.base }

// Sorted returns the existing version files, highest number first.
// Files whose extension is not an integer are ignored.
func (f *File) Sorted() ([]string, error) {
	matches, err := filepath.Glob(f.base + ".*")
	if err != nil {
		return nil, err
	}

	numbered := make([]string, 0, len(matches))
	numbers := make(map[string]int, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(fsutil.FileExt(m))
		if err != nil {
			continue
		}
		numbered = append(numbered, m)
		numbers[m] = n
	}
	sort.Slice(numbered, func(i, j int) bool {
		return numbers[numbered[i]] > numbers[numbered[j]]
	})
	return numbered, nil
}

// Next returns the name the next version should be written to. With no
// versions on disk it returns base.1.
func (f *File) Next() (string, error) {
	files, err := f.Sorted()
	if err != nil {
		return "", err
	}
	last := 0
	if len(files) > 0 {
		last, _ = strconv.Atoi(fsutil.FileExt(files[0]))
	}
	return f.base + "." + strconv.Itoa(last+1), nil
}
