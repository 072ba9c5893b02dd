package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/material-catalog/internal/model"
)

type materialChangedRecord struct {
	EventID    string   `json:"eventId"`
	MaterialID string   `json:"materialId"`
	Action     string   `json:"action"`
	Fields     []string `json:"fields,omitempty"`
	OccurredAt string   `json:"occurredAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) MaterialChangedToPayload(m model.MaterialChanged) ([]byte, error) {
	payload, err := json.Marshal(materialChangedRecord{
		EventID:    m.EventID.String(),
		MaterialID: m.MaterialID,
		Action:     string(m.Action),
		Fields:     m.Fields,
		OccurredAt: m.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal material changed event: %w", err)
	}

	return payload, nil
}
