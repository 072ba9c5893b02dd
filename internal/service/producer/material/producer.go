package matproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/material-catalog/internal/model"
	"github.com/you-humble/material-catalog/platform/kafka"
)

type Converter interface {
	MaterialChangedToPayload(m model.MaterialChanged) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewMaterialProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendMaterialChanged(ctx context.Context, event model.MaterialChanged) error {
	payload, err := s.conv.MaterialChangedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter material_changed_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, kafka.Message{
		Key:   []byte(event.MaterialID),
		Value: payload,
		Headers: map[string]string{
			"event_id": event.EventID.String(),
			"action":   string(event.Action),
		},
		Timestamp: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("producer to material.changed topic error: %w", err)
	}

	return nil
}

type noop struct{}

// NewNoopProducer discards events. Used when no brokers are configured.
func NewNoopProducer() noop { return noop{} }

func (noop) SendMaterialChanged(context.Context, model.MaterialChanged) error { return nil }
