package docstore

import (
	"context"
	"errors"
)

// Store is the document-store capability the repositories build on.
// Documents are opaque JSON blobs grouped into collections and addressed
// by a string key. FindByField is a secondary lookup on a top-level
// document attribute; backends may implement it as a scan.
type Store interface {
	Get(ctx context.Context, collection, key string) ([]byte, error)
	Exists(ctx context.Context, collection, key string) (bool, error)
	Insert(ctx context.Context, collection, key string, doc []byte) error
	Save(ctx context.Context, collection, key string, doc []byte) error
	Delete(ctx context.Context, collection, key string) error
	FindByField(ctx context.Context, collection, field, value string) ([][]byte, error)
}

var (
	// ErrKeyNotFound is returned by Get and Delete for absent keys.
	ErrKeyNotFound = errors.New("docstore: key not found")

	// ErrKeyExists is returned by Insert when the key is already taken.
	ErrKeyExists = errors.New("docstore: key already exists")

	// ErrUnavailable wraps infrastructure failures (connectivity,
	// timeouts). Never returned for plain key misses.
	ErrUnavailable = errors.New("docstore: unavailable")
)
