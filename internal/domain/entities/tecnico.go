package entities

import "time"

// Tecnico is a field technician available for visit assignment. Services
// reference it by ID and keep a denormalized copy of Nome for display.
type Tecnico struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
