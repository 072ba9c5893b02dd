package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewMaterialRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]*model.Material, error) {
	const op = "repository.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Material, 0)
	for cur.Next(ctx) {
		var ent MaterialEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) MaterialByID(ctx context.Context, id string) (*model.Material, error) {
	const op = "repository.MaterialByID"

	oid, err := ObjectID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ent MaterialEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Create(ctx context.Context, m *model.Material) (model.InsertResult, error) {
	const op = "repository.Create"

	ent, err := EntityFromModel(m)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if ent == nil {
		return model.InsertResult{}, fmt.Errorf("%s: %w: material is nil", op, model.ErrInvalidArgument)
	}

	res, err := r.coll.InsertOne(ctx, ent)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return model.InsertResult{}, fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}

	return model.InsertResult{InsertedID: oid.Hex()}, nil
}

// Update applies the present fields of upd. With no fields to write it only
// reports whether the document exists.
func (r *repository) Update(ctx context.Context, id string, upd model.MaterialUpdate) (model.UpdateResult, error) {
	const op = "repository.Update"

	oid, err := ObjectID(id)
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
	}
	filter := bson.M{"_id": oid}

	if upd.Empty() {
		n, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return model.UpdateResult{}, fmt.Errorf("%s count: %w", op, err)
		}
		return model.UpdateResult{MatchedCount: n}, nil
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: BuildSetDocument(upd)}})
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

func (r *repository) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	const op = "repository.Delete"

	oid, err := ObjectID(id)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
