package repository

import "go.mongodb.org/mongo-driver/v2/bson"

type MaterialEntity struct {
	ID               bson.ObjectID `bson:"_id,omitempty"`
	Name             string        `bson:"name"`
	Technology       string        `bson:"technology"`
	Colors           []string      `bson:"colors"`
	PricePerGram     float64       `bson:"pricePerGram"`
	ApplicationTypes []string      `bson:"applicationTypes"`
	ImageURL         string        `bson:"imageUrl,omitempty"`
}
