package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/heyLu/treeanalyzer/store"
)

func init() {
	store.Register("sqlite", open)
}

func open(u *url.URL) (store.Store, error) {
	path := u.Host + u.Path

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS treeanalyzer_kvs (
	id TEXT NOT NULL PRIMARY KEY,
	data BLOB
)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db}, nil
}

type sqliteStore struct {
	db *sql.DB
}

func (s *sqliteStore) Get(id string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM treeanalyzer_kvs WHERE id = ?", id).Scan(&data)
	switch {
	case err == sql.ErrNoRows:
		return nil, fmt.Errorf("key does not exist")
	case err != nil:
		return nil, err
	default:
		return data, nil
	}
}

func (s *sqliteStore) Put(id string, data []byte) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO treeanalyzer_kvs VALUES (?, ?)",
		id, data)
	return err
}

func (s *sqliteStore) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM treeanalyzer_kvs WHERE id = ?", id)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
