package response

import (
	"time"

	"engetrack/internal/domain/entities"
)

type FichaResponse struct {
	ID                string                     `json:"id"`
	DataPreenchimento time.Time                  `json:"dataPreenchimento"`
	Tecnico           string                     `json:"tecnico,omitempty"`
	Visita            *entities.FichaVisitaDados `json:"visita,omitempty"`
	PGR               *entities.FichaPGRDados    `json:"pgr,omitempty"`
	LTCAT             *entities.FichaLTCATDados  `json:"ltcat,omitempty"`
}

func FromFicha(f entities.Ficha) FichaResponse {
	return FichaResponse{
		ID:                f.ID,
		DataPreenchimento: f.DataPreenchimento,
		Tecnico:           f.Tecnico,
		Visita:            f.Visita,
		PGR:               f.PGR,
		LTCAT:             f.LTCAT,
	}
}

func FromFichas(fichas []entities.Ficha) []FichaResponse {
	if len(fichas) == 0 {
		return nil
	}
	out := make([]FichaResponse, 0, len(fichas))
	for _, f := range fichas {
		out = append(out, FromFicha(f))
	}
	return out
}
