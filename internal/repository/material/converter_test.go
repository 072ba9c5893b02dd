package repository

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/material-catalog/internal/model"
)

func TestObjectID(t *testing.T) {
	t.Parallel()

	oid := bson.NewObjectID()

	got, err := ObjectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", oid.Hex() + "0"} {
		_, err := ObjectID(bad)
		assert.ErrorIs(t, err, model.ErrInvalidArgument, bad)
	}
}

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	m := &model.Material{
		ID:               bson.NewObjectID().Hex(),
		Name:             gofakeit.ProductName(),
		Technology:       "FDM",
		Colors:           []string{gofakeit.Color(), gofakeit.Color()},
		PricePerGram:     gofakeit.Float64Range(0.01, 2),
		ApplicationTypes: []string{"prototype"},
		ImageURL:         gofakeit.URL(),
	}

	ent, err := EntityFromModel(m)
	require.NoError(t, err)
	assert.Equal(t, m, EntityToModel(ent))

	m.ID = ""
	ent, err = EntityFromModel(m)
	require.NoError(t, err)
	assert.True(t, ent.ID.IsZero())

	m.ID = "not-an-id"
	_, err = EntityFromModel(m)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	assert.Nil(t, EntityToModel(nil))
}

func TestBuildSetDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		upd  model.MaterialUpdate
		want bson.D
	}{
		{
			name: "empty update",
			upd:  model.MaterialUpdate{},
			want: bson.D{},
		},
		{
			name: "only present fields",
			upd: model.MaterialUpdate{
				Name:         lo.ToPtr("PETG"),
				PricePerGram: lo.ToPtr(0.5),
			},
			want: bson.D{
				{Key: "name", Value: "PETG"},
				{Key: "pricePerGram", Value: 0.5},
			},
		},
		{
			name: "all fields",
			upd: model.MaterialUpdate{
				Name:             lo.ToPtr("Resin"),
				Technology:       lo.ToPtr("SLA"),
				Colors:           []string{"grey"},
				PricePerGram:     lo.ToPtr(1.25),
				ApplicationTypes: []string{"miniatures", "jewelry"},
				ImageURL:         lo.ToPtr("https://i.ibb.co/x/resin.png"),
			},
			want: bson.D{
				{Key: "name", Value: "Resin"},
				{Key: "technology", Value: "SLA"},
				{Key: "colors", Value: []string{"grey"}},
				{Key: "pricePerGram", Value: 1.25},
				{Key: "applicationTypes", Value: []string{"miniatures", "jewelry"}},
				{Key: "imageUrl", Value: "https://i.ibb.co/x/resin.png"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildSetDocument(tt.upd))
		})
	}
}
