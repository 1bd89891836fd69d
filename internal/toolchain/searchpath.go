package toolchain

import (
	"path/filepath"
	"strings"
)

// ListSeparator delimits entries in the persisted search-path string.
const ListSeparator = ";"

// normalizePath lower-cases a path and folds both separator styles to "/" so
// entries written with either style compare equal. Windows paths compare
// case-insensitively.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = strings.TrimRight(p, "/")
	return strings.ToLower(filepath.ToSlash(p))
}

// IsManagedEntry reports whether a search-path entry was written by a
// previous switch: it lives under the managed root and ends in the bin
// subdirectory. Entries that merely mention the root elsewhere, or point at
// an install root without /bin, are not managed.
func IsManagedEntry(entry, managedRoot string) bool {
	e := normalizePath(entry)
	root := normalizePath(managedRoot)
	if root == "" || e == "" {
		return false
	}
	if !strings.HasPrefix(e, root+"/") {
		return false
	}
	return strings.HasSuffix(e, "/"+binDirName)
}

// RebuildSearchPath removes every managed entry from the delimited search
// path and prepends binDir as the new first segment. Unrelated entries are
// preserved verbatim in their original order, so rebuilding twice with the
// same binDir is a no-op after the first time.
func RebuildSearchPath(current, binDir, managedRoot string) string {
	segments := []string{binDir}
	for _, segment := range strings.Split(current, ListSeparator) {
		if segment == "" {
			continue
		}
		if IsManagedEntry(segment, managedRoot) {
			continue
		}
		segments = append(segments, segment)
	}
	return strings.Join(segments, ListSeparator)
}
