// Package scan enumerates the JPEG files of an input directory.
package scan

import (
	"io/fs"
	"path"
)

// jpegExtensions lists the accepted extensions verbatim. Matching is
// case-exact so coverage on case-sensitive filesystems is explicit rather
// than an accident of folding.
var jpegExtensions = []string{".jpg", ".JPG", ".jpeg", ".JPEG"}

// Files returns the JPEG files in the root of fsys, in name order.
// Subdirectories are not entered.
func Files(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	// fs.ReadDir returns entries sorted by name.
	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasJPEGExt(entry.Name()) {
			matches = append(matches, entry.Name())
		}
	}
	return matches, nil
}

func hasJPEGExt(name string) bool {
	ext := path.Ext(name)
	for _, want := range jpegExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
