package core

import (
	"context"
	"time"
)

// Document is a stored payload addressed by collection name.
type Document struct {
	ID         string
	Collection string
	Data       map[string]interface{}
	CreatedAt  time.Time
}

// DocumentStore is a schema-flexible persistence service. Documents are
// immutable once inserted; there is no update or delete.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	List(ctx context.Context, collection string) ([]Document, error)

	// Collections and Ping exist for diagnostics only.
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
