package model

import (
	"time"

	"github.com/google/uuid"
)

// Workflow pairs a trigger with an ordered list of actions. Both are opaque
// strings: nothing in this service interprets or executes them.
type Workflow struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Trigger     string    `json:"trigger"`
	Actions     []string  `json:"actions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

const (
	WorkflowDraft  = "draft"
	WorkflowActive = "active"
)
