package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/material-catalog/internal/model"
)

func EntityToModel(e *MaterialEntity) *model.Material {
	if e == nil {
		return nil
	}

	return &model.Material{
		ID:               e.ID.Hex(),
		Name:             e.Name,
		Technology:       e.Technology,
		Colors:           e.Colors,
		PricePerGram:     e.PricePerGram,
		ApplicationTypes: e.ApplicationTypes,
		ImageURL:         e.ImageURL,
	}
}

// EntityFromModel leaves the identifier unset when the model has none so the
// driver assigns one on insert.
func EntityFromModel(m *model.Material) (*MaterialEntity, error) {
	if m == nil {
		return nil, nil
	}

	out := &MaterialEntity{
		Name:             m.Name,
		Technology:       m.Technology,
		Colors:           m.Colors,
		PricePerGram:     m.PricePerGram,
		ApplicationTypes: m.ApplicationTypes,
		ImageURL:         m.ImageURL,
	}

	if m.ID != "" {
		oid, err := ObjectID(m.ID)
		if err != nil {
			return nil, err
		}
		out.ID = oid
	}

	return out, nil
}

func ObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w %q", model.ErrInvalidID, id)
	}
	return oid, nil
}

// BuildSetDocument returns the $set body for the fields present in upd.
func BuildSetDocument(upd model.MaterialUpdate) bson.D {
	set := bson.D{}

	if upd.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Technology != nil {
		set = append(set, bson.E{Key: "technology", Value: *upd.Technology})
	}
	if upd.Colors != nil {
		set = append(set, bson.E{Key: "colors", Value: upd.Colors})
	}
	if upd.PricePerGram != nil {
		set = append(set, bson.E{Key: "pricePerGram", Value: *upd.PricePerGram})
	}
	if upd.ApplicationTypes != nil {
		set = append(set, bson.E{Key: "applicationTypes", Value: upd.ApplicationTypes})
	}
	if upd.ImageURL != nil {
		set = append(set, bson.E{Key: "imageUrl", Value: *upd.ImageURL})
	}

	return set
}
