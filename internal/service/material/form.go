package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/material-catalog/internal/model"
)

// materialFromForm validates every required field before anything is staged
// or stored.
func materialFromForm(form model.MaterialForm) (*model.Material, error) {
	name := trimmed(form.Name)
	technology := trimmed(form.Technology)
	colors := normalizeList(form.Colors)
	applicationTypes := normalizeList(form.ApplicationTypes)
	rawPrice := trimmed(form.PricePerGram)

	missing := make([]string, 0, 5)
	if name == "" {
		missing = append(missing, "name")
	}
	if technology == "" {
		missing = append(missing, "technology")
	}
	if len(colors) == 0 {
		missing = append(missing, "colors")
	}
	if rawPrice == "" {
		missing = append(missing, "pricePerGram")
	}
	if len(applicationTypes) == 0 {
		missing = append(missing, "applicationTypes")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", model.ErrFieldsRequired, strings.Join(missing, ", "))
	}

	price, err := parsePrice(rawPrice)
	if err != nil {
		return nil, err
	}

	return &model.Material{
		Name:             name,
		Technology:       technology,
		Colors:           colors,
		PricePerGram:     price,
		ApplicationTypes: applicationTypes,
	}, nil
}

// updateFromForm keeps only the fields that were sent. A sent field that is
// empty after trimming is rejected.
func updateFromForm(form model.MaterialForm) (model.MaterialUpdate, error) {
	var upd model.MaterialUpdate

	if form.Name != nil {
		v := strings.TrimSpace(*form.Name)
		if v == "" {
			return model.MaterialUpdate{}, fmt.Errorf("%w: name", model.ErrEmptyField)
		}
		upd.Name = &v
	}

	if form.Technology != nil {
		v := strings.TrimSpace(*form.Technology)
		if v == "" {
			return model.MaterialUpdate{}, fmt.Errorf("%w: technology", model.ErrEmptyField)
		}
		upd.Technology = &v
	}

	if form.Colors != nil {
		v := normalizeList(form.Colors)
		if len(v) == 0 {
			return model.MaterialUpdate{}, fmt.Errorf("%w: colors", model.ErrEmptyField)
		}
		upd.Colors = v
	}

	if form.PricePerGram != nil {
		raw := strings.TrimSpace(*form.PricePerGram)
		if raw == "" {
			return model.MaterialUpdate{}, fmt.Errorf("%w: pricePerGram", model.ErrEmptyField)
		}
		price, err := parsePrice(raw)
		if err != nil {
			return model.MaterialUpdate{}, err
		}
		upd.PricePerGram = &price
	}

	if form.ApplicationTypes != nil {
		v := normalizeList(form.ApplicationTypes)
		if len(v) == 0 {
			return model.MaterialUpdate{}, fmt.Errorf("%w: applicationTypes", model.ErrEmptyField)
		}
		upd.ApplicationTypes = v
	}

	return upd, nil
}

func createdFields(m *model.Material) []string {
	fields := []string{"name", "technology", "colors", "pricePerGram", "applicationTypes"}
	if m.ImageURL != "" {
		fields = append(fields, "imageUrl")
	}
	return fields
}

func trimmed(s *string) string {
	return strings.TrimSpace(lo.FromPtr(s))
}

func normalizeList(values []string) []string {
	return lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
}

func parsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidPrice, raw)
	}
	return v, nil
}
