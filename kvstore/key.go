package kvstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sgostarter/i/commerr"
)

func FormatKey(prefix string, id uint64) string {
	return prefix + "_" + strconv.FormatUint(id, 10)
}

// ParseKey splits key on its last underscore, so prefixes may contain underscores themselves.
func ParseKey(key string) (prefix string, id uint64, err error) {
	idx := strings.LastIndexByte(key, '_')
	if idx < 0 {
		err = fmt.Errorf("key %q has no prefix: %w", key, commerr.ErrInvalidArgument)

		return
	}

	id, err = strconv.ParseUint(key[idx+1:], 10, 64)
	if err != nil {
		err = fmt.Errorf("key %q has no numeric id: %w", key, commerr.ErrInvalidArgument)

		return
	}

	prefix = key[:idx]

	return
}

// MatchKey returns the id of key when it belongs to prefix.
func MatchKey(prefix, key string) (id uint64, ok bool) {
	keyPrefix, id, err := ParseKey(key)
	if err != nil || keyPrefix != prefix {
		return 0, false
	}

	return id, true
}
