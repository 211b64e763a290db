package model

import (
	"time"

	"github.com/google/uuid"
)

type Integration struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	Config      map[string]string `json:"config,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

const (
	IntegrationConnected = "connected"
	IntegrationAvailable = "available"
)
