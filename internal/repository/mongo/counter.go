package mongo

import (
	"context"
	"time"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/tag"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const counterCollection = "tag_counters"

type counterRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewCounterRepository(client *mongodb.Client, log *logger.Logger) tag.CounterRepository {
	return &counterRepository{
		coll:   client.Collection(counterCollection),
		logger: log,
	}
}

func (r *counterRepository) Get(ctx context.Context, prefix string) (*tag.Counter, error) {
	var counter tag.Counter
	err := r.coll.FindOne(ctx, bson.M{"_id": prefix}).Decode(&counter)
	if err == mongo.ErrNoDocuments {
		return nil, ierr.NewErrorf("counter for prefix %s not found", prefix).
			WithHintf("No tags have been allocated for prefix %s", prefix).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read tag counter").
			Mark(ierr.ErrDatabase)
	}
	return &counter, nil
}

func (r *counterRepository) List(ctx context.Context) ([]*tag.Counter, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tag counters").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	var counters []*tag.Counter
	if err := cursor.All(ctx, &counters); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode tag counters").
			Mark(ierr.ErrDatabase)
	}
	return counters, nil
}

// Next relies on findOneAndUpdate being atomic per document: concurrent
// allocations on the same prefix serialize in the store and each caller sees
// a distinct value.
func (r *counterRepository) Next(ctx context.Context, prefix string) (int64, error) {
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": prefix},
		bson.M{
			"$inc": bson.M{"last_number": 1},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	var counter tag.Counter
	if err := res.Decode(&counter); err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Failed to advance tag counter for prefix %s", prefix).
			Mark(ierr.ErrDatabase)
	}
	return counter.LastNumber, nil
}

func (r *counterRepository) RaiseTo(ctx context.Context, prefix string, n int64) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": prefix},
		bson.M{
			"$max": bson.M{"last_number": n},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to raise tag counter for prefix %s", prefix).
			Mark(ierr.ErrDatabase)
	}
	return nil
}
