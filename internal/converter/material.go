package converter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/material-catalog/internal/model"
)

type MaterialDTO struct {
	ID               string   `json:"_id"`
	Name             string   `json:"name"`
	Technology       string   `json:"technology"`
	Colors           []string `json:"colors"`
	PricePerGram     float64  `json:"pricePerGram"`
	ApplicationTypes []string `json:"applicationTypes"`
	ImageURL         string   `json:"imageUrl,omitempty"`
}

type InsertAckDTO struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateAckDTO struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteAckDTO struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func MaterialToDTO(m *model.Material) MaterialDTO {
	return MaterialDTO{
		ID:               m.ID,
		Name:             m.Name,
		Technology:       m.Technology,
		Colors:           lo.Ternary(m.Colors == nil, []string{}, m.Colors),
		PricePerGram:     m.PricePerGram,
		ApplicationTypes: lo.Ternary(m.ApplicationTypes == nil, []string{}, m.ApplicationTypes),
		ImageURL:         m.ImageURL,
	}
}

func MaterialsToDTO(ms []*model.Material) []MaterialDTO {
	out := make([]MaterialDTO, 0, len(ms))
	for _, m := range ms {
		if m == nil {
			continue
		}
		out = append(out, MaterialToDTO(m))
	}
	return out
}

func InsertResultToDTO(res model.InsertResult) InsertAckDTO {
	return InsertAckDTO{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateResultToDTO(res model.UpdateResult) UpdateAckDTO {
	return UpdateAckDTO{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
}

func DeleteResultToDTO(res model.DeleteResult) DeleteAckDTO {
	return DeleteAckDTO{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// JSONToMaterialForm maps a decoded JSON object onto a form. Lists accept a
// single string or an array of strings; pricePerGram accepts a number or a
// string. A key set to null counts as sent but empty.
func JSONToMaterialForm(body map[string]json.RawMessage) (model.MaterialForm, error) {
	var (
		form model.MaterialForm
		err  error
	)

	if raw, ok := body["name"]; ok {
		if form.Name, err = jsonString(raw); err != nil {
			return model.MaterialForm{}, fmt.Errorf("name: %w", err)
		}
	}
	if raw, ok := body["technology"]; ok {
		if form.Technology, err = jsonString(raw); err != nil {
			return model.MaterialForm{}, fmt.Errorf("technology: %w", err)
		}
	}
	if raw, ok := body["colors"]; ok {
		if form.Colors, err = jsonList(raw); err != nil {
			return model.MaterialForm{}, fmt.Errorf("colors: %w", err)
		}
	}
	if raw, ok := body["pricePerGram"]; ok {
		if form.PricePerGram, err = jsonNumber(raw); err != nil {
			return model.MaterialForm{}, fmt.Errorf("pricePerGram: %w", err)
		}
	}
	if raw, ok := body["applicationTypes"]; ok {
		if form.ApplicationTypes, err = jsonList(raw); err != nil {
			return model.MaterialForm{}, fmt.Errorf("applicationTypes: %w", err)
		}
	}

	return form, nil
}

// FormValuesToMaterialForm maps url-encoded or multipart values. Only keys
// present in values are set.
func FormValuesToMaterialForm(values map[string][]string) model.MaterialForm {
	var form model.MaterialForm

	first := func(key string) *string {
		vs, ok := values[key]
		if !ok {
			return nil
		}
		return lo.ToPtr(lo.FirstOr(vs, ""))
	}
	all := func(key string) []string {
		vs, ok := values[key]
		if !ok {
			return nil
		}
		return append(make([]string, 0, len(vs)), vs...)
	}

	form.Name = first("name")
	form.Technology = first("technology")
	form.Colors = all("colors")
	form.PricePerGram = first("pricePerGram")
	form.ApplicationTypes = all("applicationTypes")

	return form
}

var jsonNull = []byte("null")

func jsonString(raw json.RawMessage) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return lo.ToPtr(""), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: expected string", model.ErrInvalidArgument)
	}
	return &s, nil
}

func jsonList(raw json.RawMessage) ([]string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: expected string or array of strings", model.ErrInvalidArgument)
	}
	return []string{s}, nil
}

// jsonNumber treats a numeric zero like null. Quoted values are kept as sent.
func jsonNumber(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return lo.ToPtr(""), nil
	}

	if len(raw) > 0 && raw[0] != '"' {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: expected number", model.ErrInvalidArgument)
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			return lo.ToPtr(""), nil
		}
		return lo.ToPtr(n.String()), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: expected number", model.ErrInvalidArgument)
	}
	return &s, nil
}
