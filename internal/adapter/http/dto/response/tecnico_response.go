package response

import (
	"time"

	"engetrack/internal/domain/entities"
)

type TecnicoResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromTecnico(t entities.Tecnico) TecnicoResponse {
	return TecnicoResponse{
		ID:        t.ID,
		Nome:      t.Nome,
		Email:     t.Email,
		Telefone:  t.Telefone,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTecnicos(tecnicos []entities.Tecnico) []TecnicoResponse {
	out := make([]TecnicoResponse, 0, len(tecnicos))
	for _, t := range tecnicos {
		out = append(out, FromTecnico(t))
	}
	return out
}
