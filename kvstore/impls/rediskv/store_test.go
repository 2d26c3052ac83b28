// nolint
package rediskv

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/libconfig/ut"
	"github.com/sgostarter/libthermctl/curve"
	"github.com/stretchr/testify/assert"
)

func initRedis(dsn string) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	err = cli.Ping(ctx).Err()

	return
}

func TestRedisStore(t *testing.T) {
	cfg := ut.SetupUTConfig4Redis(t)

	redisCli, err := initRedis(cfg.RedisDSN)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	redisCli.Del(context.Background(), "ut:kv:curve", "ut:kv-seq:curve")

	stg := NewRedisStore[[]curve.Point]("ut", "curve", redisCli, nil)

	key, err := stg.Insert([]curve.Point{{Time: 0, Temperature: 20}, {Time: 10, Temperature: 100}})
	assert.Nil(t, err)
	assert.Equal(t, "curve_0", key)

	key, err = stg.Insert([]curve.Point{{Time: 0, Temperature: 30}})
	assert.Nil(t, err)
	assert.Equal(t, "curve_1", key)

	points, ok, err := stg.Get("curve_0")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Len(t, points, 2)

	_, ok, err = stg.Get("other_0")
	assert.Nil(t, err)
	assert.False(t, ok)

	_, ok, err = stg.Get("curve_9")
	assert.Nil(t, err)
	assert.False(t, ok)

	keys, err := stg.Keys()
	assert.Nil(t, err)
	assert.Equal(t, []string{"curve_0", "curve_1"}, keys)

	ok, err = stg.Remove("curve_0")
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = stg.Remove("curve_0")
	assert.Nil(t, err)
	assert.False(t, ok)

	redisCli.Del(context.Background(), "ut:kv:curve", "ut:kv-seq:curve")
}
