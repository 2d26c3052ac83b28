package rediskv

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libthermctl/kvstore"
	"github.com/spf13/cast"
)

// NewRedisStore keeps values JSON encoded in one redis hash per prefix; ids come from an INCR
// counter so they start at 0 and are shared by every process using the same preKey.
func NewRedisStore[V any](preKey, prefix string, redisCli *redis.Client, logger l.Wrapper) kvstore.Store[V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStore"), l.StringField("prefix", prefix))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStoreImpl[V]{
		logger:   logger,
		preKey:   preKey,
		prefix:   prefix,
		redisCli: redisCli,
	}
}

type redisStoreImpl[V any] struct {
	logger   l.Wrapper
	preKey   string
	prefix   string
	redisCli *redis.Client
}

func (impl *redisStoreImpl[V]) itemsKey() string {
	return impl.preKey + ":kv:" + impl.prefix
}

func (impl *redisStoreImpl[V]) seqKey() string {
	return impl.preKey + ":kv-seq:" + impl.prefix
}

func (impl *redisStoreImpl[V]) Prefix() string {
	return impl.prefix
}

func (impl *redisStoreImpl[V]) Insert(v V) (key string, err error) {
	d, err := json.Marshal(v)
	if err != nil {
		return
	}

	n, err := impl.redisCli.Incr(context.Background(), impl.seqKey()).Result()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("incr seq failed")

		return
	}

	id := uint64(n - 1)

	err = impl.redisCli.HSet(context.Background(), impl.itemsKey(), strconv.FormatUint(id, 10), d).Err()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("hset failed")

		return
	}

	key = kvstore.FormatKey(impl.prefix, id)

	return
}

func (impl *redisStoreImpl[V]) Get(key string) (v V, ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	d, err := impl.redisCli.HGet(context.Background(), impl.itemsKey(), strconv.FormatUint(id, 10)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}

	if err != nil {
		return v, false, err
	}

	err = json.Unmarshal(d, &v)
	if err != nil {
		return v, false, err
	}

	return v, true, nil
}

func (impl *redisStoreImpl[V]) Remove(key string) (ok bool, err error) {
	id, ok := kvstore.MatchKey(impl.prefix, key)
	if !ok {
		return
	}

	n, err := impl.redisCli.HDel(context.Background(), impl.itemsKey(), strconv.FormatUint(id, 10)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (impl *redisStoreImpl[V]) Keys() (keys []string, err error) {
	fields, err := impl.redisCli.HKeys(context.Background(), impl.itemsKey()).Result()
	if err != nil {
		return
	}

	ids := make([]uint64, 0, len(fields))

	for _, field := range fields {
		var id uint64

		id, err = cast.ToUint64E(field)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		keys = append(keys, kvstore.FormatKey(impl.prefix, id))
	}

	return
}
