package mongo

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/role"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const roleCollection = "roles"

type roleRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewRoleRepository(client *mongodb.Client, log *logger.Logger) role.Repository {
	return &roleRepository{
		coll:   client.Collection(roleCollection),
		logger: log,
	}
}

func (r *roleRepository) Create(ctx context.Context, role *role.Role) error {
	if _, err := r.coll.InsertOne(ctx, role); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create role").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *roleRepository) Get(ctx context.Context, id string) (*role.Role, error) {
	var out role.Role
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, ierr.NewErrorf("role %s not found", id).
			WithHintf("Role %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read role").
			Mark(ierr.ErrDatabase)
	}
	return &out, nil
}

func (r *roleRepository) List(ctx context.Context) ([]*role.Role, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list roles").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	var roles []*role.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode roles").
			Mark(ierr.ErrDatabase)
	}
	return roles, nil
}

func (r *roleRepository) Update(ctx context.Context, role *role.Role) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": role.ID}, role)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update role").
			Mark(ierr.ErrDatabase)
	}
	if res.MatchedCount == 0 {
		return ierr.NewErrorf("role %s not found", role.ID).
			WithHintf("Role %s does not exist", role.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete role").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewErrorf("role %s not found", id).
			WithHintf("Role %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
