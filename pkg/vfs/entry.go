package vfs

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// EntryKind discriminates the two entry variants in the namespace.
//
// The namespace is a closed tagged variant: every entry is either a file or
// a directory, and every operation checks the kind before mutating rather
// than relying on reflective type assertions scattered through callers.
type EntryKind int

const (
	// KindFile is a content entry holding a text payload
	KindFile EntryKind = iota

	// KindDirectory is a container entry holding named children
	KindDirectory
)

// String returns the kind name as shown in directory listings.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry is the common capability of files and directories.
//
// Implementations are exactly File and Directory; the interface exists for
// the children mapping and for listing, not for extension.
type Entry interface {
	// ID is a stable unique identity for the entry, independent of its name
	ID() uuid.UUID

	// Name is the entry's name within its parent directory
	Name() string

	// Owner is the username that created the entry
	Owner() string

	// Kind reports whether the entry is a file or a directory
	Kind() EntryKind

	// CreatedAt is the entry creation time
	CreatedAt() time.Time

	// Info returns the listing row for this entry
	Info() EntryInfo
}

// EntryInfo is a single row of a directory listing.
//
// Size and Modified are only meaningful for files; directory rows render
// size as "<DIR>" and fall back to the creation time.
type EntryInfo struct {
	Name     string
	Kind     EntryKind
	Owner    string
	Size     int
	Created  time.Time
	Modified time.Time
}

// File is a content entry: a named text payload with ownership and
// timestamps. Size always equals the current payload length; it is
// recomputed on every Write and Append and never drifts.
type File struct {
	id         uuid.UUID
	name       string
	owner      string
	content    string
	createdAt  time.Time
	modifiedAt time.Time
}

// NewFile creates a file with the given name, payload and owner.
func NewFile(name, content, owner string) *File {
	now := time.Now()
	return &File{
		id:         uuid.New(),
		name:       name,
		owner:      owner,
		content:    content,
		createdAt:  now,
		modifiedAt: now,
	}
}

func (f *File) ID() uuid.UUID        { return f.id }
func (f *File) Name() string         { return f.name }
func (f *File) Owner() string        { return f.owner }
func (f *File) Kind() EntryKind      { return KindFile }
func (f *File) CreatedAt() time.Time { return f.createdAt }

// ModifiedAt is the last content modification time.
func (f *File) ModifiedAt() time.Time { return f.modifiedAt }

// Size is the current payload length in bytes.
func (f *File) Size() int { return len(f.content) }

// Read returns the file payload.
func (f *File) Read() string { return f.content }

// Write replaces the file payload and updates the modification time.
func (f *File) Write(content string) {
	f.content = content
	f.modifiedAt = time.Now()
}

// Append concatenates content onto the payload and updates the
// modification time.
func (f *File) Append(content string) {
	f.content += content
	f.modifiedAt = time.Now()
}

// Info returns the listing row for this file.
func (f *File) Info() EntryInfo {
	return EntryInfo{
		Name:     f.name,
		Kind:     KindFile,
		Owner:    f.owner,
		Size:     len(f.content),
		Created:  f.createdAt,
		Modified: f.modifiedAt,
	}
}

// Directory is a container entry holding uniquely named children.
//
// Ownership in the tree flows strictly parent→child through the children
// map. The parent pointer is a non-owning back-reference used only for
// upward traversal ("..") and path reconstruction; it is never followed
// when deciding what an entry owns, so the structure stays a tree rather
// than a graph.
type Directory struct {
	id        uuid.UUID
	name      string
	owner     string
	parent    *Directory
	children  map[string]Entry
	createdAt time.Time
}

// NewDirectory creates a directory with the given parent. The root
// directory is created with a nil parent and the name "/".
func NewDirectory(name, owner string, parent *Directory) *Directory {
	return &Directory{
		id:        uuid.New(),
		name:      name,
		owner:     owner,
		parent:    parent,
		children:  make(map[string]Entry),
		createdAt: time.Now(),
	}
}

func (d *Directory) ID() uuid.UUID        { return d.id }
func (d *Directory) Name() string         { return d.name }
func (d *Directory) Owner() string        { return d.owner }
func (d *Directory) Kind() EntryKind      { return KindDirectory }
func (d *Directory) CreatedAt() time.Time { return d.createdAt }

// Parent returns the parent directory, or nil for the root.
func (d *Directory) Parent() *Directory { return d.parent }

// IsRoot reports whether this directory is the root of its tree.
func (d *Directory) IsRoot() bool { return d.parent == nil }

// Len returns the number of children.
func (d *Directory) Len() int { return len(d.children) }

// Get returns the child with the given name, or nil if absent.
func (d *Directory) Get(name string) Entry {
	return d.children[name]
}

// Has reports whether a child with the given name exists.
func (d *Directory) Has(name string) bool {
	_, ok := d.children[name]
	return ok
}

// Add inserts a child entry. If the child is a directory its parent
// back-reference is updated to this directory. Fails with
// ErrAlreadyExists if the name is taken.
func (d *Directory) Add(entry Entry) error {
	if _, exists := d.children[entry.Name()]; exists {
		return &NamespaceError{
			Code:    ErrAlreadyExists,
			Message: "File or directory '" + entry.Name() + "' already exists",
			Path:    entry.Name(),
		}
	}
	if sub, ok := entry.(*Directory); ok {
		sub.parent = d
	}
	d.children[entry.Name()] = entry
	return nil
}

// Remove deletes the child with the given name. Fails with ErrNotFound if
// no such child exists. The caller is responsible for any emptiness check;
// Remove itself only unlinks.
func (d *Directory) Remove(name string) error {
	if _, exists := d.children[name]; !exists {
		return &NamespaceError{
			Code:    ErrNotFound,
			Message: "'" + name + "' not found",
			Path:    name,
		}
	}
	delete(d.children, name)
	return nil
}

// List returns listing rows for all children sorted lexicographically
// by name.
func (d *Directory) List() []EntryInfo {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]EntryInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, d.children[name].Info())
	}
	return infos
}

// Path reconstructs the absolute path of this directory by walking parent
// references up to the root. The root renders as "/".
func (d *Directory) Path() string {
	if d.parent == nil {
		return "/"
	}
	parentPath := d.parent.Path()
	if parentPath == "/" {
		return "/" + d.name
	}
	return parentPath + "/" + d.name
}

// Info returns the listing row for this directory.
func (d *Directory) Info() EntryInfo {
	return EntryInfo{
		Name:    d.name,
		Kind:    KindDirectory,
		Owner:   d.owner,
		Created: d.createdAt,
	}
}
