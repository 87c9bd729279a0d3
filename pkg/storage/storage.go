// Package storage archives exported schema documents.
//
// Each call to the HTTP API's export endpoint can be recorded so that a
// document can be fetched again by id without resubmitting the snapshot.
// Three backends implement [Store]:
//
//   - [FileStore]: one JSON file per record, for single-host deployments
//   - [MongoStore]: a MongoDB collection, for shared deployments
//   - [NullStore]: archiving disabled
//
// Documents are stored as the exact JSON produced by the serializer; key
// order survives a round trip through every backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by [Store.Get] when no record has the given id.
var ErrNotFound = errors.New("export not found")

// Record is one archived export.
type Record struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId"`
	RootID    string          `json:"rootId"`
	Hash      string          `json:"hash"`
	CreatedAt time.Time       `json:"createdAt"`
	Document  json.RawMessage `json:"document"`
}

// Store persists export records.
type Store interface {
	// Save stores r and returns its id. An empty r.ID is replaced with a new
	// UUID and a zero r.CreatedAt with the current time.
	Save(ctx context.Context, r Record) (string, error)

	// Get returns the record with the given id or [ErrNotFound].
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first. A limit of zero or
	// less returns all records.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Close releases resources held by the store.
	Close() error
}

func prepare(r *Record) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
