package request

import "engetrack/internal/domain/entities"

// FichaRequest carries the stage-specific payload for append and edit. The
// populated field must match the ledger named in the URL; id, timestamp and
// técnico attribution are server-side.
type FichaRequest struct {
	Visita *entities.FichaVisitaDados `json:"visita,omitempty"`
	PGR    *entities.FichaPGRDados    `json:"pgr,omitempty"`
	LTCAT  *entities.FichaLTCATDados  `json:"ltcat,omitempty"`
}

func (r FichaRequest) ToFicha() entities.Ficha {
	return entities.Ficha{
		Visita: r.Visita,
		PGR:    r.PGR,
		LTCAT:  r.LTCAT,
	}
}
