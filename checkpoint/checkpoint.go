package checkpoint

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/kv"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libthermctl/tracker"
)

const keyPrefix = ":snapshot:"

// Store keeps the last snapshot of each named session in one file under root, so a restarted
// process can report where a run stopped.
type Store struct {
	logger l.Wrapper
	kv     kv.StorageTiny
}

func NewStore(root string, logger l.Wrapper) *Store {
	return NewStoreEx(root, "checkpoint.dat", logger)
}

func NewStoreEx(root, fileName string, logger l.Wrapper) *Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	_ = pathutils.MustDirExists(root)

	return &Store{
		logger: logger.WithFields(l.StringField(l.ClsKey, "checkpointStore")),
		kv:     mwf.NewKVEx(fileName, rawfs.NewFSStorage(root)),
	}
}

func (s *Store) Save(name string, snap tracker.Snapshot) error {
	err := s.kv.Set(keyPrefix+name, snap)
	if err != nil {
		s.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("save checkpoint failed")
	}

	return err
}

func (s *Store) Load(name string) (snap tracker.Snapshot, exists bool, err error) {
	exists, err = s.kv.Get(keyPrefix+name, &snap)

	return
}

func (s *Store) Delete(name string) error {
	return s.kv.Del(keyPrefix + name)
}
