package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriteReadAppend(t *testing.T) {
	file := NewFile("notes.txt", "", "alice")

	assert.Equal(t, "notes.txt", file.Name())
	assert.Equal(t, "alice", file.Owner())
	assert.Equal(t, KindFile, file.Kind())
	assert.Equal(t, 0, file.Size())

	file.Write("hello")
	assert.Equal(t, "hello", file.Read())
	assert.Equal(t, 5, file.Size())

	file.Append(" world")
	assert.Equal(t, "hello world", file.Read())
	assert.Equal(t, len("hello world"), file.Size())

	// Overwrite shrinks size back down; size tracks the payload exactly
	file.Write("x")
	assert.Equal(t, 1, file.Size())
}

func TestFileInfo(t *testing.T) {
	file := NewFile("report.txt", "content", "bob")
	info := file.Info()

	assert.Equal(t, "report.txt", info.Name)
	assert.Equal(t, KindFile, info.Kind)
	assert.Equal(t, "bob", info.Owner)
	assert.Equal(t, 7, info.Size)
	assert.False(t, info.Created.IsZero())
	assert.False(t, info.Modified.IsZero())
}

func TestDirectoryAddUniqueNames(t *testing.T) {
	dir := NewDirectory("/", "system", nil)

	require.NoError(t, dir.Add(NewFile("a.txt", "", "system")))
	require.True(t, dir.Has("a.txt"))

	// Same name again, regardless of kind, is rejected
	err := dir.Add(NewFile("a.txt", "", "system"))
	require.Error(t, err)
	assert.Equal(t, ErrAlreadyExists, CodeOf(err))

	err = dir.Add(NewDirectory("a.txt", "system", dir))
	require.Error(t, err)
	assert.Equal(t, ErrAlreadyExists, CodeOf(err))

	assert.Equal(t, 1, dir.Len())
}

func TestDirectoryAddSetsParent(t *testing.T) {
	root := NewDirectory("/", "system", nil)
	sub := NewDirectory("docs", "alice", nil)

	require.NoError(t, root.Add(sub))
	assert.Same(t, root, sub.Parent())
}

func TestDirectoryRemove(t *testing.T) {
	dir := NewDirectory("/", "system", nil)
	require.NoError(t, dir.Add(NewFile("a.txt", "", "system")))

	require.NoError(t, dir.Remove("a.txt"))
	assert.False(t, dir.Has("a.txt"))

	err := dir.Remove("a.txt")
	require.Error(t, err)
	assert.Equal(t, ErrNotFound, CodeOf(err))
}

func TestDirectoryListSorted(t *testing.T) {
	dir := NewDirectory("/", "system", nil)
	for _, name := range []string{"zebra", "apple", "mango"} {
		require.NoError(t, dir.Add(NewFile(name, "", "system")))
	}
	require.NoError(t, dir.Add(NewDirectory("banana", "system", dir)))

	infos := dir.List()
	require.Len(t, infos, 4)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []string{"apple", "banana", "mango", "zebra"}, names)
}

func TestDirectoryPath(t *testing.T) {
	root := NewDirectory("/", "system", nil)
	docs := NewDirectory("docs", "alice", nil)
	work := NewDirectory("work", "alice", nil)

	require.NoError(t, root.Add(docs))
	require.NoError(t, docs.Add(work))

	assert.Equal(t, "/", root.Path())
	assert.Equal(t, "/docs", docs.Path())
	assert.Equal(t, "/docs/work", work.Path())
}

func TestEntryIdentity(t *testing.T) {
	a := NewFile("same.txt", "", "alice")
	b := NewFile("same.txt", "", "alice")

	// Identity is per entry, not per name
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
}
