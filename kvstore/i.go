package kvstore

// Store keeps values under generated keys of the form "<prefix>_<id>".
//
// A key with another prefix or a malformed key is simply not found.
type Store[V any] interface {
	Prefix() string

	Insert(v V) (key string, err error)
	Get(key string) (v V, ok bool, err error)
	Remove(key string) (ok bool, err error)
	Keys() ([]string, error)
}

type IDGenerator interface {
	NextID() uint64
}
