package file

import (
	"io/ioutil"
	"net/url"
	"os"
	"path"

	"github.com/heyLu/treeanalyzer/store"
)

func init() {
	store.Register("files", open)
}

func open(u *url.URL) (store.Store, error) {
	path := u.Host + u.Path

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}

	return &fileStore{path}, nil
}

type fileStore struct {
	path string
}

func (s fileStore) blobPath(id string) string {
	if len(id) < 2 {
		return path.Join(s.path, id)
	}
	return path.Join(s.path, id[len(id)-2:], id)
}

func (s fileStore) Get(id string) ([]byte, error) {
	return ioutil.ReadFile(s.blobPath(id))
}

func (s fileStore) Put(id string, data []byte) error {
	p := s.blobPath(id)
	if err := os.MkdirAll(path.Dir(p), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(p, data, 0644)
}

func (s fileStore) Delete(id string) error {
	return os.Remove(s.blobPath(id))
}
