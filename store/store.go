// Package store provides blob storage for serialized trees, keyed by id.
// Backends register themselves under a url scheme.
package store

import (
	"errors"
	"fmt"
	"net/url"
)

type Store interface {
	Get(id string) ([]byte, error)
	Put(id string, data []byte) error
	Delete(id string) error
}

type Opener func(u *url.URL) (Store, error)

var registeredOpeners = map[string]Opener{}

func Register(scheme string, opener Opener) {
	if _, ok := registeredOpeners[scheme]; ok {
		panic(fmt.Sprint("duplicate store for ", scheme))
	}

	registeredOpeners[scheme] = opener
}

func Open(u *url.URL) (Store, error) {
	opener, ok := registeredOpeners[u.Scheme]
	if !ok {
		return nil, errors.New(fmt.Sprint("no such store: ", u.Scheme))
	}

	return opener(u)
}
