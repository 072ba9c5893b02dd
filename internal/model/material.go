package model

import (
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Material struct {
	// Storage-assigned identifier, 24 hex characters.
	ID string
	// Catalog label, e.g. "PLA Red".
	Name string
	// Printing process, e.g. FDM or SLA.
	Technology string
	// Available colors.
	Colors []string
	// Price per gram in the catalog currency.
	PricePerGram float64
	// Use cases the material is suited for.
	ApplicationTypes []string
	// Display URL returned by the image host. Empty when no image was uploaded.
	ImageURL string
}

// Upload is a file attached to a create or update request.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// MaterialForm carries raw request values. A nil pointer or nil slice means
// the field was not sent; a non-nil empty value means it was sent empty.
type MaterialForm struct {
	Name             *string
	Technology       *string
	Colors           []string
	PricePerGram     *string
	ApplicationTypes []string
	Image            *Upload
}

// MaterialUpdate is the partial field set applied by an update. Only non-nil
// fields are written.
type MaterialUpdate struct {
	Name             *string
	Technology       *string
	Colors           []string
	PricePerGram     *float64
	ApplicationTypes []string
	ImageURL         *string
}

func (u MaterialUpdate) Empty() bool {
	return u.Name == nil &&
		u.Technology == nil &&
		u.Colors == nil &&
		u.PricePerGram == nil &&
		u.ApplicationTypes == nil &&
		u.ImageURL == nil
}

// Fields lists the stored field names written by the update.
func (u MaterialUpdate) Fields() []string {
	fields := make([]string, 0, 6)
	if u.Name != nil {
		fields = append(fields, "name")
	}
	if u.Technology != nil {
		fields = append(fields, "technology")
	}
	if u.Colors != nil {
		fields = append(fields, "colors")
	}
	if u.PricePerGram != nil {
		fields = append(fields, "pricePerGram")
	}
	if u.ApplicationTypes != nil {
		fields = append(fields, "applicationTypes")
	}
	if u.ImageURL != nil {
		fields = append(fields, "imageUrl")
	}
	return fields
}

// IsValidMaterialID reports whether id is a 24 character hex ObjectID.
func IsValidMaterialID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

type InsertResult struct {
	InsertedID string
}

type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
}

type DeleteResult struct {
	DeletedCount int64
}
