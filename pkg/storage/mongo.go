package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ontouml/ontokit/pkg/httputil"
)

// DefaultCollection holds export records.
const DefaultCollection = "exports"

// MongoStore keeps records in a MongoDB collection. Documents are stored as
// BSON documents (not strings) so that they can be queried, with their key
// order preserved.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

type mongoRecord struct {
	ID        string    `bson:"_id"`
	ProjectID string    `bson:"projectId"`
	RootID    string    `bson:"rootId"`
	Hash      string    `bson:"hash"`
	CreatedAt time.Time `bson:"createdAt"`
	Document  bson.D    `bson:"document"`
}

// NewMongoStore connects to uri and stores records in database's
// [DefaultCollection]. The initial ping is retried with backoff, so a
// server that is still starting does not fail the caller.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	err = httputil.Retry(ctx, 3, 500*time.Millisecond, func() error {
		return httputil.Retryable(client.Ping(ctx, nil))
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := NewMongoStoreFromClient(client, database)
	s.owned = true
	return s, nil
}

// NewMongoStoreFromClient wraps an existing client. Close does not
// disconnect a client it did not create.
func NewMongoStoreFromClient(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}
}

func (s *MongoStore) Save(ctx context.Context, r Record) (string, error) {
	prepare(&r)

	var doc bson.D
	if len(r.Document) > 0 {
		if err := bson.UnmarshalExtJSON(r.Document, false, &doc); err != nil {
			return "", fmt.Errorf("convert document: %w", err)
		}
	}

	rec := mongoRecord{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		RootID:    r.RootID,
		Hash:      r.Hash,
		CreatedAt: r.CreatedAt,
		Document:  doc,
	}
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	return r.ID, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var rec mongoRecord
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find record: %w", err)
	}
	return rec.toRecord()
}

func (s *MongoStore) List(ctx context.Context, limit int) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer cur.Close(ctx)

	var out []*Record
	for cur.Next(ctx) {
		var rec mongoRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		r, err := rec.toRecord()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, cur.Err()
}

func (s *MongoStore) Close() error {
	if !s.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (rec *mongoRecord) toRecord() (*Record, error) {
	r := &Record{
		ID:        rec.ID,
		ProjectID: rec.ProjectID,
		RootID:    rec.RootID,
		Hash:      rec.Hash,
		CreatedAt: rec.CreatedAt,
	}
	if rec.Document != nil {
		data, err := bson.MarshalExtJSON(rec.Document, false, false)
		if err != nil {
			return nil, fmt.Errorf("convert document %s: %w", rec.ID, err)
		}
		r.Document = data
	}
	return r, nil
}

var _ Store = (*MongoStore)(nil)
