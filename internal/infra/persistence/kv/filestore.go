package kv

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const entrySuffix = ".entry"

// fileStore keeps one file per key under a root directory. Writes go to a
// temp file in the same directory followed by a rename, so a crash never
// leaves a half-written value behind.
type fileStore struct {
	root string
	mu   sync.RWMutex
}

// NewFileStore opens (creating if needed) a file-backed store rooted at dir.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage root")
	}

	return &fileStore{root: dir}, nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "get canceled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "read key %q", key)
	}

	return string(data), nil
}

func (s *fileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "set canceled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.root, "write-*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for key %q", key)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "write key %q", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "close temp file for key %q", key)
	}

	if err := os.Rename(tmp.Name(), s.pathFor(key)); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "commit key %q", key)
	}

	return nil
}

func (s *fileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "remove canceled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove key %q", key)
	}

	return nil
}

func (s *fileStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "keys canceled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, errors.Wrap(err, "list storage root")
	}

	keys := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || filepath.Ext(name) != entrySuffix {
			continue
		}

		key, err := url.QueryUnescape(name[:len(name)-len(entrySuffix)])
		if err != nil {
			// Not one of ours; skip rather than fail the whole listing.
			continue
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// pathFor escapes the key so any storage key maps to a valid, reversible
// file name.
func (s *fileStore) pathFor(key string) string {
	return filepath.Join(s.root, url.QueryEscape(key)+entrySuffix)
}
