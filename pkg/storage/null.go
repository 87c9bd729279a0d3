package storage

import "context"

// NullStore discards every record.
type NullStore struct{}

// NewNullStore creates a store that archives nothing.
func NewNullStore() Store { return NullStore{} }

// Save assigns an id but stores nothing.
func (NullStore) Save(ctx context.Context, r Record) (string, error) {
	prepare(&r)
	return r.ID, nil
}

// Get always returns [ErrNotFound].
func (NullStore) Get(ctx context.Context, id string) (*Record, error) { return nil, ErrNotFound }

// List always returns no records.
func (NullStore) List(ctx context.Context, limit int) ([]*Record, error) { return nil, nil }

func (NullStore) Close() error { return nil }

var _ Store = NullStore{}
