package memory

import (
	"fmt"
	"net/url"

	"github.com/heyLu/treeanalyzer/store"
)

func init() {
	store.Register("memory", open)
}

func open(u *url.URL) (store.Store, error) {
	return New(), nil
}

// New returns an in-process store, useful for tests.
func New() store.Store {
	return &memoryStore{store: map[string][]byte{}}
}

type memoryStore struct {
	store map[string][]byte
}

func (s *memoryStore) Get(id string) ([]byte, error) {
	if data, ok := s.store[id]; ok {
		return data, nil
	}

	return nil, fmt.Errorf("No such object: %s", id)
}

func (s *memoryStore) Put(id string, data []byte) error {
	s.store[id] = data
	return nil
}

func (s *memoryStore) Delete(id string) error {
	delete(s.store, id)
	return nil
}
