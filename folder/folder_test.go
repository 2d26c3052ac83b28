// nolint
package folder

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestFolderAddRemove(t *testing.T) {
	f := NewFolder("profiles")

	for idx := 0; idx < 5; idx++ {
		assert.Nil(t, f.AddEntry(FileEntry(ItemID(idx))))
	}

	assert.Nil(t, f.AddEntry(FolderEntry(3)))
	assert.EqualValues(t, 6, f.Len())

	assert.True(t, f.RemoveFile(2))
	assert.False(t, f.RemoveFile(2))
	assert.False(t, f.RemoveFolder(4))

	assert.Equal(t, []Entry{FileEntry(0), FileEntry(1), FileEntry(3), FileEntry(4), FolderEntry(3)}, f.Entries())

	// a file and a folder sharing a number are different entries
	assert.True(t, f.RemoveFolder(3))
	assert.Equal(t, []Entry{FileEntry(0), FileEntry(1), FileEntry(3), FileEntry(4)}, f.Entries())

	assert.True(t, f.RemoveFile(4))
	assert.True(t, f.RemoveFile(0))
	assert.Equal(t, []Entry{FileEntry(1), FileEntry(3)}, f.Entries())
}

func TestFolderFull(t *testing.T) {
	f := NewFolder("full")

	for idx := 0; idx < MaxEntries; idx++ {
		assert.Nil(t, f.AddEntry(FileEntry(ItemID(idx))))
	}

	assert.ErrorIs(t, f.AddEntry(FileEntry(99)), commerr.ErrResourceExhausted)

	assert.True(t, f.RemoveFile(0))
	assert.Nil(t, f.AddEntry(FileEntry(99)))
	assert.Equal(t, FileEntry(99), f.Entries()[MaxEntries-1])
}

func TestCollection(t *testing.T) {
	c := NewCollection("root")
	assert.EqualValues(t, 1, c.Len())

	reflow, err := c.AddFolder(RootIndex, "reflow")
	assert.Nil(t, err)

	annealing, err := c.AddFolder(RootIndex, "annealing")
	assert.Nil(t, err)

	leaded, err := c.AddFolder(reflow, "leaded")
	assert.Nil(t, err)

	assert.Nil(t, c.AddFile(leaded, 7))
	assert.Nil(t, c.AddFile(annealing, 8))

	_, err = c.AddFolder(100, "x")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
	assert.ErrorIs(t, c.AddFile(-1, 1), commerr.ErrNotFound)

	var names []string
	var depths []int

	c.Walk(func(idx, depth int, f *Folder) bool {
		names = append(names, f.Name)
		depths = append(depths, depth)

		return true
	})

	assert.Equal(t, []string{"root", "reflow", "leaded", "annealing"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)

	assert.True(t, c.RemoveFolder(RootIndex, reflow))
	assert.False(t, c.RemoveFolder(RootIndex, reflow))
	assert.True(t, c.RemoveFile(annealing, 8))
	assert.False(t, c.RemoveFile(annealing, 8))
	assert.False(t, c.RemoveFile(99, 8))

	names = nil

	c.Walk(func(idx, depth int, f *Folder) bool {
		names = append(names, f.Name)

		return true
	})

	assert.Equal(t, []string{"root", "annealing"}, names)

	f, err := c.Folder(leaded)
	assert.Nil(t, err)
	assert.Equal(t, "leaded", f.Name)
}

func TestCollectionArenaFull(t *testing.T) {
	c := NewCollection("root")

	parent := RootIndex

	for idx := 1; idx < MaxFolders; idx++ {
		child, err := c.AddFolder(parent, "f")
		assert.Nil(t, err)
		assert.Equal(t, idx, child)

		parent = child
	}

	_, err := c.AddFolder(RootIndex, "overflow")
	assert.ErrorIs(t, err, commerr.ErrResourceExhausted)

	count := 0

	c.Walk(func(idx, depth int, f *Folder) bool {
		count++

		return depth < 3
	})

	assert.EqualValues(t, 4, count)
}
