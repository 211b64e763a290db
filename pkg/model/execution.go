package model

import (
	"time"

	"github.com/google/uuid"
)

type ExecutionStatus string

const (
	ExecutionRunning   ExecutionStatus = "running"
	ExecutionCompleted ExecutionStatus = "completed"
)

// Execution is a simulated run of a workflow. It transitions from running to
// completed on a timer; no real work happens.
type Execution struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	WorkflowID  uuid.UUID       `json:"workflowId"`
	Status      ExecutionStatus `json:"status"`
	Logs        []string        `json:"logs"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}
