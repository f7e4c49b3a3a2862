package vfs

import "strings"

// Resolution rules, applied against the session's current directory:
//
//   - "/"  resolves to the root, unconditionally
//   - ".." resolves to the parent; at the root this is the benign ErrAtRoot
//     outcome rather than a failure
//   - "."  resolves to the current directory itself
//   - a path with a leading "/" is absolute: split on "/" and walked from
//     the root, segment by segment, through child lookups
//   - anything else is a single-segment name looked up in the current
//     directory
//
// Multi-segment relative paths ("a/b") are not supported; only absolute
// paths or single names resolve. This is a scope limit of the design, not
// an accident: the mutation operations stay free of path resolution and
// callers needing deep navigation chdir first.
//
// Resolution never creates entries; it only traverses.

// resolve maps a path string to an entry per the rules above.
func (fs *Filesystem) resolve(path string) (Entry, error) {
	switch path {
	case "/":
		return fs.root, nil
	case "..":
		if fs.cwd.IsRoot() {
			return nil, &NamespaceError{
				Code:    ErrAtRoot,
				Message: "Already at root directory",
			}
		}
		return fs.cwd.Parent(), nil
	case ".":
		return fs.cwd, nil
	}

	if strings.HasPrefix(path, "/") {
		return fs.resolveAbsolute(path)
	}

	entry := fs.cwd.Get(path)
	if entry == nil {
		return nil, &NamespaceError{
			Code:    ErrNotFound,
			Message: "'" + path + "' not found",
			Path:    path,
		}
	}
	return entry, nil
}

// resolveAbsolute walks an absolute path from the root. Any segment that is
// missing, or that is looked up inside a non-directory, fails the whole
// resolution with ErrNotFound; no partial progress is retained.
func (fs *Filesystem) resolveAbsolute(path string) (Entry, error) {
	notFound := &NamespaceError{
		Code:    ErrNotFound,
		Message: "'" + path + "' not found",
		Path:    path,
	}

	var current Entry = fs.root
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		dir, ok := current.(*Directory)
		if !ok {
			return nil, notFound
		}
		next := dir.Get(segment)
		if next == nil {
			return nil, notFound
		}
		current = next
	}
	return current, nil
}
