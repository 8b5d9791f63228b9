package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/miasteczkole/backend/core"
)

// InMemStore keeps documents in memory; used in tests and store-less dev runs.
type InMemStore struct {
	mu          sync.RWMutex
	collections map[string][]core.Document
}

var _ core.DocumentStore = (*InMemStore)(nil)

func NewInMemStore() *InMemStore {
	return &InMemStore{collections: make(map[string][]core.Document)}
}

func (s *InMemStore) Insert(_ context.Context, collection string, doc interface{}) (string, error) {
	// round-trip through JSON so stored data matches what a real store returns
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "encoding document")
	}
	var data map[string]interface{}
	if err = json.Unmarshal(payload, &data); err != nil {
		return "", errors.Wrap(err, "decoding document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.collections[collection] = append(s.collections[collection], core.Document{
		ID:         id,
		Collection: collection,
		Data:       data,
		CreatedAt:  time.Now().UTC(),
	})
	return id, nil
}

func (s *InMemStore) List(_ context.Context, collection string) ([]core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]core.Document, len(s.collections[collection]))
	copy(docs, s.collections[collection])
	return docs, nil
}

func (s *InMemStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *InMemStore) Ping(_ context.Context) error { return nil }
