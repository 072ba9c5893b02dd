package model

import (
	"time"

	"github.com/google/uuid"
)

type MaterialAction string

const (
	MaterialCreated MaterialAction = "created"
	MaterialUpdated MaterialAction = "updated"
	MaterialDeleted MaterialAction = "deleted"
)

type MaterialChanged struct {
	EventID    uuid.UUID
	MaterialID string
	Action     MaterialAction
	// Names of the fields written by the change; empty for deletions.
	Fields     []string
	OccurredAt time.Time
}
