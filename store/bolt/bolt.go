package bolt

import (
	"fmt"
	"net/url"
	"time"

	"github.com/boltdb/bolt"

	"github.com/heyLu/treeanalyzer/store"
)

var bucketName = []byte("treeanalyzer_kvs")

func init() {
	store.Register("bolt", open)
}

func open(u *url.URL) (store.Store, error) {
	path := u.Host + u.Path

	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &boltStore{db}, nil
}

type boltStore struct {
	db *bolt.DB
}

func (s *boltStore) Get(id string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		data = tx.Bucket(bucketName).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("key does not exist")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *boltStore) Put(id string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(id), data)
	})
	return err
}

func (s *boltStore) Delete(id string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(id))
	})
	return err
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
