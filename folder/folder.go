package folder

import "github.com/sgostarter/i/commerr"

// ItemID identifies a stored file, e.g. a saved profile.
type ItemID uint64

type EntryKind int

const (
	EntryFile EntryKind = iota + 1
	EntryFolder
)

// Entry points at a file by ItemID or at a child folder by its arena index.
type Entry struct {
	Kind EntryKind
	ID   uint64
}

func FileEntry(id ItemID) Entry {
	return Entry{Kind: EntryFile, ID: uint64(id)}
}

func FolderEntry(idx int) Entry {
	return Entry{Kind: EntryFolder, ID: uint64(idx)}
}

// MaxEntries is the capacity of a single folder.
const MaxEntries = 16

// Folder is a fixed-capacity list of entries kept packed at the front.
type Folder struct {
	Name string

	entries [MaxEntries]Entry
	count   int
}

func NewFolder(name string) Folder {
	return Folder{Name: name}
}

func (f *Folder) Len() int {
	return f.count
}

func (f *Folder) Entries() []Entry {
	return append([]Entry(nil), f.entries[:f.count]...)
}

func (f *Folder) AddEntry(entry Entry) error {
	if f.count >= len(f.entries) {
		return commerr.ErrResourceExhausted
	}

	f.entries[f.count] = entry
	f.count++

	return nil
}

func (f *Folder) RemoveFile(id ItemID) bool {
	return f.remove(FileEntry(id))
}

func (f *Folder) RemoveFolder(idx int) bool {
	return f.remove(FolderEntry(idx))
}

// remove deletes the first matching entry and shifts the rest down to keep their order.
func (f *Folder) remove(entry Entry) bool {
	for idx := 0; idx < f.count; idx++ {
		if f.entries[idx] != entry {
			continue
		}

		copy(f.entries[idx:f.count], f.entries[idx+1:f.count])
		f.entries[f.count-1] = Entry{}
		f.count--

		return true
	}

	return false
}
