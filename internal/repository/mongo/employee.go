package mongo

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/domain/employee"
	ierr "github.com/shama2369/trichygold-campaignsc/internal/errors"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeeCollection = "employees"

type employeeRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

func NewEmployeeRepository(client *mongodb.Client, log *logger.Logger) employee.Repository {
	return &employeeRepository{
		coll:   client.Collection(employeeCollection),
		logger: log,
	}
}

func (r *employeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create employee").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *employeeRepository) Get(ctx context.Context, id string) (*employee.Employee, error) {
	var e employee.Employee
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return nil, ierr.NewErrorf("employee %s not found", id).
			WithHintf("Employee %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read employee").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list employees").
			Mark(ierr.ErrDatabase)
	}
	defer cursor.Close(ctx)

	var employees []*employee.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode employees").
			Mark(ierr.ErrDatabase)
	}
	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update employee").
			Mark(ierr.ErrDatabase)
	}
	if res.MatchedCount == 0 {
		return ierr.NewErrorf("employee %s not found", e.ID).
			WithHintf("Employee %s does not exist", e.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete employee").
			Mark(ierr.ErrDatabase)
	}
	if res.DeletedCount == 0 {
		return ierr.NewErrorf("employee %s not found", id).
			WithHintf("Employee %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
