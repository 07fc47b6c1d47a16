// Package kvstore defines the durable key-value collaborator the repositories
// persist through. Values are whole-collection JSON blobs; keys name a logical
// collection and, optionally, an identifier within it.
package kvstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kvstore: key not found")

// Store is last-writer-wins: Set replaces the previous blob without any
// version check.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key joins a collection name and an identifier, e.g. "attendance:EMP001".
func Key(collection, id string) string {
	return collection + ":" + id
}
