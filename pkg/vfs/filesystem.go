package vfs

// Filesystem is one user session's namespace: a private root directory plus
// a current-directory cursor.
//
// Every mutation operates relative to the current directory (navigation
// aside) and validates all of its preconditions before touching the tree,
// so an operation either fully applies or leaves the namespace unchanged.
//
// Concurrency:
// A Filesystem serves exactly one caller at a time; the command loop
// processes one operation to completion before the next. Instances are NOT
// safe for concurrent use. A deployment that shares a session between
// goroutines must wrap each Filesystem in its own exclusive guard, since
// concurrent mutations (say, a delete racing a move of the same name) would
// race on the children map.
type Filesystem struct {
	root *Directory
	cwd  *Directory
}

// New creates a filesystem with an empty root owned by the given user.
// The cursor starts at the root.
func New(owner string) *Filesystem {
	root := NewDirectory("/", owner, nil)
	return &Filesystem{
		root: root,
		cwd:  root,
	}
}

// Root returns the root directory.
func (fs *Filesystem) Root() *Directory { return fs.root }

// CurrentDir returns the directory the cursor points at.
func (fs *Filesystem) CurrentDir() *Directory { return fs.cwd }

// CurrentPath returns the absolute path of the current directory,
// reconstructed by walking parent references up to the root.
func (fs *Filesystem) CurrentPath() string {
	return fs.cwd.Path()
}

// CreateFile creates a new file in the current directory.
//
// Fails with ErrAlreadyExists if any entry with that name exists.
func (fs *Filesystem) CreateFile(name, owner, content string) error {
	return fs.cwd.Add(NewFile(name, content, owner))
}

// CreateDirectory creates a new subdirectory of the current directory.
//
// Fails with ErrInvalidName for the reserved names "." and "..", and with
// ErrAlreadyExists if any entry with that name exists.
func (fs *Filesystem) CreateDirectory(name, owner string) error {
	if name == "." || name == ".." {
		return &NamespaceError{
			Code:    ErrInvalidName,
			Message: "Invalid directory name",
			Path:    name,
		}
	}
	return fs.cwd.Add(NewDirectory(name, owner, fs.cwd))
}

// ChangeDirectory moves the cursor to the directory named by path,
// resolved per the rules in resolve.go.
//
// Fails with ErrNotFound if the path does not resolve, ErrNotDirectory if
// it resolves to a file, and ErrAtRoot for ".." at the root (a benign
// outcome; the cursor is already where it would end up).
func (fs *Filesystem) ChangeDirectory(path string) error {
	entry, err := fs.resolve(path)
	if err != nil {
		return err
	}
	dir, ok := entry.(*Directory)
	if !ok {
		return &NamespaceError{
			Code:    ErrNotDirectory,
			Message: "Directory '" + path + "' not found",
			Path:    path,
		}
	}
	fs.cwd = dir
	return nil
}

// List returns the current directory's children sorted lexicographically
// by name, each with kind-appropriate metadata. An empty directory yields
// an empty slice, not an error.
func (fs *Filesystem) List() []EntryInfo {
	return fs.cwd.List()
}

// ReadFile returns the payload of the named file in the current directory.
//
// Fails with ErrNotFound if absent and ErrIsDirectory if the name refers
// to a directory.
func (fs *Filesystem) ReadFile(name string) (string, error) {
	entry := fs.cwd.Get(name)
	if entry == nil {
		return "", &NamespaceError{
			Code:    ErrNotFound,
			Message: "File '" + name + "' not found",
			Path:    name,
		}
	}
	file, ok := entry.(*File)
	if !ok {
		return "", &NamespaceError{
			Code:    ErrIsDirectory,
			Message: "'" + name + "' is a directory, not a file",
			Path:    name,
		}
	}
	return file.Read(), nil
}

// WriteFile replaces the payload of the named file, creating the file if
// it does not exist. The returned flag reports whether a new file was
// created rather than an existing one updated.
//
// Fails with ErrIsDirectory if the name refers to a directory.
func (fs *Filesystem) WriteFile(name, content, owner string) (created bool, err error) {
	entry := fs.cwd.Get(name)
	if entry == nil {
		return true, fs.CreateFile(name, owner, content)
	}
	file, ok := entry.(*File)
	if !ok {
		return false, &NamespaceError{
			Code:    ErrIsDirectory,
			Message: "'" + name + "' is a directory, not a file",
			Path:    name,
		}
	}
	file.Write(content)
	return false, nil
}

// AppendFile concatenates content onto the named file's payload.
//
// Fails with ErrNotFound if absent and ErrIsDirectory if the name refers
// to a directory.
func (fs *Filesystem) AppendFile(name, content string) error {
	entry := fs.cwd.Get(name)
	if entry == nil {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "File '" + name + "' not found",
			Path:    name,
		}
	}
	file, ok := entry.(*File)
	if !ok {
		return &NamespaceError{
			Code:    ErrIsDirectory,
			Message: "'" + name + "' is a directory, not a file",
			Path:    name,
		}
	}
	file.Append(content)
	return nil
}

// Delete removes the named entry from the current directory. Files are
// always deletable; directories only when empty.
//
// Fails with ErrNotFound if absent and ErrNotEmpty for a directory that
// still has children.
func (fs *Filesystem) Delete(name string) error {
	entry := fs.cwd.Get(name)
	if entry == nil {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "'" + name + "' not found",
			Path:    name,
		}
	}
	if dir, ok := entry.(*Directory); ok && dir.Len() > 0 {
		return &NamespaceError{
			Code:    ErrNotEmpty,
			Message: "Directory '" + name + "' is not empty",
			Path:    name,
		}
	}
	return fs.cwd.Remove(name)
}

// Move relocates the named source entry into the named destination
// directory. Both names are resolved in the current directory: deep moves
// are out of scope and callers chdir first.
//
// All preconditions are checked before the tree is touched, so a failed
// move leaves the source exactly where it was.
//
// Fails with ErrNotFound if source or destination is absent,
// ErrNotDirectory if the destination is a file, ErrInvalidName if source
// and destination are the same directory (the unlink-then-relink would
// detach the directory from the root and make it its own parent), and
// ErrNameCollision if the destination already has a child with the
// source's name.
func (fs *Filesystem) Move(source, destination string) error {
	sourceEntry := fs.cwd.Get(source)
	if sourceEntry == nil {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "Source '" + source + "' not found",
			Path:    source,
		}
	}

	destEntry := fs.cwd.Get(destination)
	if destEntry == nil {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "Destination '" + destination + "' not found",
			Path:    destination,
		}
	}
	destDir, ok := destEntry.(*Directory)
	if !ok {
		return &NamespaceError{
			Code:    ErrNotDirectory,
			Message: "Destination '" + destination + "' is not a directory",
			Path:    destination,
		}
	}

	if sourceEntry.ID() == destDir.ID() {
		return &NamespaceError{
			Code:    ErrInvalidName,
			Message: "Cannot move '" + source + "' into itself",
			Path:    source,
		}
	}

	if destDir.Has(source) {
		return &NamespaceError{
			Code:    ErrNameCollision,
			Message: "'" + source + "' already exists in '" + destination + "'",
			Path:    source,
		}
	}

	// Preconditions hold; unlink then relink. Add updates the parent
	// back-reference when the moved entry is a directory.
	if err := fs.cwd.Remove(source); err != nil {
		return err
	}
	return destDir.Add(sourceEntry)
}

// CopyFile duplicates the named source file under the destination name in
// the current directory. The copy gets the copying user as owner, fresh
// timestamps and an independent payload: mutating one never affects the
// other.
//
// Fails with ErrNotFound if the source is absent, ErrIsDirectory if the
// source is a directory, and ErrAlreadyExists if the destination name is
// taken.
func (fs *Filesystem) CopyFile(source, destination, owner string) error {
	sourceEntry := fs.cwd.Get(source)
	if sourceEntry == nil {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "Source file '" + source + "' not found",
			Path:    source,
		}
	}
	sourceFile, ok := sourceEntry.(*File)
	if !ok {
		return &NamespaceError{
			Code:    ErrIsDirectory,
			Message: "'" + source + "' is not a file",
			Path:    source,
		}
	}
	if fs.cwd.Has(destination) {
		return &NamespaceError{
			Code:    ErrAlreadyExists,
			Message: "File '" + destination + "' already exists",
			Path:    destination,
		}
	}
	return fs.cwd.Add(NewFile(destination, sourceFile.Read(), owner))
}
