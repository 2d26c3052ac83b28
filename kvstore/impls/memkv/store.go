package memkv

import (
	"sort"
	"strconv"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libthermctl/kvstore"
	"github.com/spf13/cast"
)

func NewMemStore[V any](prefix string) kvstore.Store[V] {
	return NewMemStoreEx[V](prefix, nil)
}

func NewMemStoreEx[V any](prefix string, idGenerator kvstore.IDGenerator) kvstore.Store[V] {
	if idGenerator == nil {
		idGenerator = kvstore.NewSequenceIDGenerator(0)
	}

	return &memStoreImpl[V]{
		prefix:      prefix,
		idGenerator: idGenerator,
		items:       cache.New(cache.NoExpiration, 0),
	}
}

type memStoreImpl[V any] struct {
	prefix      string
	idGenerator kvstore.IDGenerator
	items       *cache.Cache

	// removeLock makes check-and-delete atomic; go-cache has no compare-and-delete.
	removeLock sync.Mutex
}

func (impl *memStoreImpl[V]) Prefix() string {
	return impl.prefix
}

func (impl *memStoreImpl[V]) Insert(v V) (key string, err error) {
	id := impl.idGenerator.NextID()

	if impl.items.Add(strconv.FormatUint(id, 10), v, cache.NoExpiration) != nil {
		err = commerr.ErrAlreadyExists

		return
	}

	key = kvstore.FormatKey(impl.prefix, id)

	return
}

func (impl *memStoreImpl[V]) Get(key string) (v V, ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	i, ok := impl.items.Get(strconv.FormatUint(id, 10))
	if !ok {
		return
	}

	v, ok = i.(V)

	return
}

func (impl *memStoreImpl[V]) Remove(key string) (ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	idKey := strconv.FormatUint(id, 10)

	impl.removeLock.Lock()
	defer impl.removeLock.Unlock()

	if _, ok = impl.items.Get(idKey); ok {
		impl.items.Delete(idKey)
	}

	return
}

func (impl *memStoreImpl[V]) Keys() ([]string, error) {
	items := impl.items.Items()

	ids := make([]uint64, 0, len(items))

	for k := range items {
		id, err := cast.ToUint64E(k)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, kvstore.FormatKey(impl.prefix, id))
	}

	return keys, nil
}
