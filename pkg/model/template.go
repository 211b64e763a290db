package model

import "github.com/google/uuid"

// Template is a catalog entry that can be cloned into a workflow via deploy.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Triggers    []string  `json:"triggers"`
	Actions     []string  `json:"actions"`
	Price       float64   `json:"price"`
}
