package filedialog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParentEntry is always the first entry of a listing.
const ParentEntry = ".."

// ListDirectory returns the entries the dialog shows for dir: ".." first,
// then visible subdirectories, then PNG files, each group sorted by name.
func ListDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("filedialog: list %s: %w", dir, err)
	}

	var dirs, files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if isDir(dir, e) {
			dirs = append(dirs, name)
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".png") {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	out := make([]string, 0, 1+len(dirs)+len(files))
	out = append(out, ParentEntry)
	out = append(out, dirs...)
	return append(out, files...), nil
}

// isDir follows symlinks so linked folders can be browsed.
func isDir(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
