package folder

import "github.com/sgostarter/i/commerr"

// MaxFolders is the arena size of a Collection, root included.
const MaxFolders = 32

// RootIndex is the arena index of the root folder.
const RootIndex = 0

// Collection is a folder tree stored in a fixed arena. Folders reference children by arena
// index, and removed folders keep their slot.
type Collection struct {
	folders [MaxFolders]Folder
	count   int
}

func NewCollection(rootName string) *Collection {
	c := &Collection{}
	c.folders[RootIndex] = NewFolder(rootName)
	c.count = 1

	return c
}

func (c *Collection) Len() int {
	return c.count
}

func (c *Collection) Folder(idx int) (*Folder, error) {
	if idx < 0 || idx >= c.count {
		return nil, commerr.ErrNotFound
	}

	return &c.folders[idx], nil
}

// AddFolder creates a folder and links it under parent, returning its arena index.
func (c *Collection) AddFolder(parent int, name string) (idx int, err error) {
	p, err := c.Folder(parent)
	if err != nil {
		return
	}

	if c.count >= len(c.folders) || p.Len() >= MaxEntries {
		err = commerr.ErrResourceExhausted

		return
	}

	idx = c.count
	c.folders[idx] = NewFolder(name)
	c.count++

	_ = p.AddEntry(FolderEntry(idx))

	return
}

func (c *Collection) AddFile(parent int, id ItemID) error {
	p, err := c.Folder(parent)
	if err != nil {
		return err
	}

	return p.AddEntry(FileEntry(id))
}

func (c *Collection) RemoveFile(parent int, id ItemID) bool {
	p, err := c.Folder(parent)
	if err != nil {
		return false
	}

	return p.RemoveFile(id)
}

// RemoveFolder unlinks child from parent. The child's subtree becomes unreachable.
func (c *Collection) RemoveFolder(parent, child int) bool {
	p, err := c.Folder(parent)
	if err != nil {
		return false
	}

	return p.RemoveFolder(child)
}

// Walk visits every reachable folder depth first, starting at the root, with its depth.
// Returning false from fn stops the walk.
func (c *Collection) Walk(fn func(idx, depth int, f *Folder) bool) {
	var visited [MaxFolders]bool

	c.walk(RootIndex, 0, &visited, fn)
}

func (c *Collection) walk(idx, depth int, visited *[MaxFolders]bool, fn func(idx, depth int, f *Folder) bool) bool {
	if visited[idx] {
		return true
	}

	visited[idx] = true

	f := &c.folders[idx]
	if !fn(idx, depth, f) {
		return false
	}

	for _, entry := range f.entries[:f.count] {
		if entry.Kind != EntryFolder {
			continue
		}

		child := int(entry.ID)
		if child >= c.count {
			continue
		}

		if !c.walk(child, depth+1, visited, fn) {
			return false
		}
	}

	return true
}
