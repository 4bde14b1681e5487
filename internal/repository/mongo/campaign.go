package mongo

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/campaign"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const campaignCollection = "campaigns"

type campaignRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewCampaignRepository(client *mongodb.Client, log *logger.Logger) campaign.Repository {
	return &campaignRepository{
		coll:   client.Collection(campaignCollection),
		logger: log,
	}
}

func (r *campaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ierr.WithError(err).
				WithHintf("Campaign %s already exists", c.ID).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create campaign").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *campaignRepository) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	var c campaign.Campaign
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, ierr.NewErrorf("campaign %s not found", id).
			WithHintf("Campaign %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read campaign").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *campaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update campaign").
			Mark(ierr.ErrDatabase)
	}
	if res.MatchedCount == 0 {
		return ierr.NewErrorf("campaign %s not found", c.ID).
			WithHintf("Campaign %s does not exist", c.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete campaign").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewErrorf("campaign %s not found", id).
			WithHintf("Campaign %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *campaignRepository) ListAll(ctx context.Context) ([]*campaign.Campaign, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list campaigns").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	var campaigns []*campaign.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode campaigns").
			Mark(ierr.ErrDatabase)
	}
	return campaigns, nil
}

func (r *campaignRepository) TagExists(ctx context.Context, tagNumber string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"channels.tag_number": tagNumber})
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check tag number usage").
			Mark(ierr.ErrDatabase)
	}
	return count > 0, nil
}
