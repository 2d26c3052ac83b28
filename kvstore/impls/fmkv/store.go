package fmkv

import (
	"errors"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libthermctl/kvstore"
)

type storeD[V any] struct {
	NextID uint64       `json:"next_id"`
	Items  map[uint64]V `json:"items"`
}

func NewFMStore[V any](prefix, root string, storage stg.FileStorage, logger l.Wrapper) kvstore.Store[V] {
	return NewFMStoreEx[V](prefix, root, storage, prefix+".json", logger)
}

// NewFMStoreEx keeps the whole store in memory and rewrites fileName under root on every change.
// The next id is persisted with the items, so keys are never reused across restarts.
func NewFMStoreEx[V any](prefix, root string, storage stg.FileStorage, fileName string,
	logger l.Wrapper) kvstore.Store[V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStoreImpl[V]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "fmStoreImpl"), l.StringField("prefix", prefix)),
		prefix: prefix,
		d: mwf.NewMemWithFile[storeD[V], mwf.Serial, mwf.Lock](storeD[V]{Items: make(map[uint64]V)},
			&mwf.JSONSerial{}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStoreImpl[V any] struct {
	logger l.Wrapper
	prefix string
	d      *mwf.MemWithFile[storeD[V], mwf.Serial, mwf.Lock]
}

func (impl *fmStoreImpl[V]) Prefix() string {
	return impl.prefix
}

func (impl *fmStoreImpl[V]) Insert(v V) (key string, err error) {
	err = impl.d.Change(func(oldD storeD[V]) (storeD[V], error) {
		if oldD.Items == nil {
			oldD.Items = make(map[uint64]V)
		}

		id := oldD.NextID
		oldD.NextID++
		oldD.Items[id] = v

		key = kvstore.FormatKey(impl.prefix, id)

		return oldD, nil
	})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("insert failed")

		key = ""
	}

	return
}

func (impl *fmStoreImpl[V]) Get(key string) (v V, ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	impl.d.Read(func(d storeD[V]) {
		v, ok = d.Items[id]
	})

	return
}

func (impl *fmStoreImpl[V]) Remove(key string) (ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	err = impl.d.Change(func(oldD storeD[V]) (storeD[V], error) {
		if _, exists := oldD.Items[id]; !exists {
			return oldD, commerr.ErrNotFound
		}

		delete(oldD.Items, id)

		return oldD, nil
	})
	if errors.Is(err, commerr.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("remove failed")

		return false, err
	}

	return true, nil
}

func (impl *fmStoreImpl[V]) Keys() (keys []string, err error) {
	var ids []uint64

	impl.d.Read(func(d storeD[V]) {
		for id := range d.Items {
			ids = append(ids, id)
		}
	})

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		keys = append(keys, kvstore.FormatKey(impl.prefix, id))
	}

	return
}
