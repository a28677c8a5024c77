package kvstore

import (
	"sync"

	"github.com/govapi/govapi/internal/model"
	"github.com/pkg/errors"
)

// ErrNoSuchKey indicates that there's no value for the given key.
var ErrNoSuchKey = errors.New("kvstore: no such key")

// ErrInvalidKey indicates that a key cannot be used as a file name.
var ErrInvalidKey = errors.New("kvstore: invalid key")

// Memory is an in-memory [model.KeyValueStore]. The zero value is ready to use.
type Memory struct {
	// m is the underlying map.
	m map[string][]byte

	// mu provides mutual exclusion
	mu sync.Mutex
}

var _ model.KeyValueStore = &Memory{}

// Get returns the specified key's value. In case of error, the
// error type is such that errors.Is(err, ErrNoSuchKey).
func (kvs *Memory) Get(key string) ([]byte, error) {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()
	value, ok := kvs.m[key]
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchKey, "%q", key)
	}
	return append([]byte{}, value...), nil
}

// Set sets the value of a specific key.
func (kvs *Memory) Set(key string, value []byte) error {
	kvs.mu.Lock()
	defer kvs.mu.Unlock()
	if kvs.m == nil {
		kvs.m = make(map[string][]byte)
	}
	kvs.m[key] = append([]byte{}, value...)
	return nil
}
