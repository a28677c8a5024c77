package kvstore

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/govapi/govapi/internal/model"
	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// FS is a file-system based [model.KeyValueStore]. Each key maps to a file
// inside the base directory and we use file locking, so it is safe to
// share the same directory among several concurrent govapi processes.
type FS struct {
	basedir string
}

var _ model.KeyValueStore = &FS{}

// NewFS creates a new [*FS] rooted at basedir, creating it if needed.
func NewFS(basedir string) (*FS, error) {
	return newFS(basedir, os.MkdirAll)
}

// mkdirAllFunc is the type of [os.MkdirAll].
type mkdirAllFunc func(path string, perm fs.FileMode) error

// newFS is like [NewFS] with a customizable function for creating basedir.
func newFS(basedir string, mkdir mkdirAllFunc) (*FS, error) {
	if err := mkdir(basedir, 0700); err != nil {
		return nil, errors.Wrapf(err, "kvstore: cannot create %s", basedir)
	}
	return &FS{basedir: basedir}, nil
}

// Basedir returns the directory containing the keys.
func (kvs *FS) Basedir() string {
	return kvs.basedir
}

// filename returns the filename for a given key.
func (kvs *FS) filename(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	return filepath.Join(kvs.basedir, key), nil
}

// Get returns the specified key's value. In case of error, the
// error type is such that errors.Is(err, ErrNoSuchKey).
func (kvs *FS) Get(key string) ([]byte, error) {
	filename, err := kvs.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := lockedfile.Read(filename)
	if err != nil {
		return nil, errors.Wrap(ErrNoSuchKey, err.Error())
	}
	return data, nil
}

// Set sets the value of a specific key. The file is only readable by
// the current user because values may contain API tokens.
func (kvs *FS) Set(key string, value []byte) error {
	filename, err := kvs.filename(key)
	if err != nil {
		return err
	}
	return lockedfile.Write(filename, bytes.NewReader(value), 0600)
}
