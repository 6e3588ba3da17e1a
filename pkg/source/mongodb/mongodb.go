// Package mongodb provides a category-count source backed by a MongoDB
// collection.
//
// Each document holds one (name, count) pair:
//
//	{"name": "Fly_Fishing", "count": 3}
//
// The query hints push down cleanly: the count threshold becomes $gte, the
// whitelist becomes $in, and the limit is applied after a descending sort
// on count. pkg/cloud still re-applies every filter on the returned rows,
// so the push-down is purely a transfer-size optimization.
package mongodb

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/errors"
	"github.com/mhelmke/wikicloud/pkg/source"
)

// connectTimeout bounds the initial connection handshake.
const connectTimeout = 10 * time.Second

// Source reads category counts from a MongoDB collection.
type Source struct {
	coll *mongo.Collection
}

// New creates a Source over an existing collection handle.
func New(coll *mongo.Collection) *Source {
	return &Source{coll: coll}
}

// Connect dials a MongoDB deployment and returns a Source over the named
// database and collection, plus a close function releasing the client.
func Connect(ctx context.Context, uri, database, collection string) (*Source, func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeSource, err, "connect to %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(errors.ErrCodeSource, err, "ping %s", uri)
	}

	return New(client.Database(database).Collection(collection)), client.Disconnect, nil
}

// Categories fetches counts matching the query hints.
func (s *Source) Categories(ctx context.Context, q source.Query) ([]cloud.Category, error) {
	cur, err := s.coll.Find(ctx, buildFilter(q), findOptions(q))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSource, err, "query categories")
	}
	defer cur.Close(ctx)

	var rows []cloud.Category
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSource, err, "decode categories")
	}
	return rows, nil
}

// buildFilter translates the query hints into a Mongo filter document.
func buildFilter(q source.Query) bson.M {
	filter := bson.M{}
	if q.MinCount > 0 {
		filter["count"] = bson.M{"$gte": q.MinCount}
	}
	if len(q.Only) > 0 {
		names := make([]string, 0, len(q.Only))
		for name := range q.Only {
			names = append(names, name)
		}
		sort.Strings(names)
		filter["name"] = bson.M{"$in": names}
	}
	return filter
}

// findOptions sorts by count descending and applies the limit hint. The
// sort makes Limit keep the most popular categories, matching the
// selection semantics in pkg/cloud.
func findOptions(q source.Query) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "count", Value: -1}})
	if q.Limit > 0 {
		opts = opts.SetLimit(int64(q.Limit))
	}
	return opts
}

// Ensure Source implements source.Source.
var _ source.Source = (*Source)(nil)
