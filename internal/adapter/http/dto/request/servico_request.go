package request

import (
	"errors"
	"strings"
	"time"

	"engetrack/internal/domain/entities"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ServicoRequest carries the client attributes captured on registration and
// on later edits.
type ServicoRequest struct {
	Empresa        string `json:"empresa" binding:"required"`
	CNPJ           string `json:"cnpj"`
	Endereco       string `json:"endereco"`
	Bairro         string `json:"bairro"`
	Cidade         string `json:"cidade"`
	Estado         string `json:"estado"`
	CEP            string `json:"cep"`
	Contato        string `json:"contato"`
	Telefone       string `json:"telefone"`
	DataVencimento string `json:"dataVencimento"`
}

func (r ServicoRequest) DadosCliente() entities.DadosCliente {
	return entities.DadosCliente{
		Empresa:  strings.TrimSpace(r.Empresa),
		CNPJ:     strings.TrimSpace(r.CNPJ),
		Endereco: strings.TrimSpace(r.Endereco),
		Bairro:   strings.TrimSpace(r.Bairro),
		Cidade:   strings.TrimSpace(r.Cidade),
		Estado:   strings.TrimSpace(r.Estado),
		CEP:      strings.TrimSpace(r.CEP),
		Contato:  strings.TrimSpace(r.Contato),
		Telefone: strings.TrimSpace(r.Telefone),
	}
}

// ResolveDataVencimento parses the optional expiration date (YYYY-MM-DD).
func (r ServicoRequest) ResolveDataVencimento() (*time.Time, error) {
	return parseOptionalDate(r.DataVencimento)
}

// AgendamentoRequest is the SetSchedule payload. An empty data clears the
// schedule (and with it the technician assignment).
type AgendamentoRequest struct {
	Data      string `json:"data"`
	TecnicoID string `json:"tecnicoId"`
}

func (r AgendamentoRequest) ResolveData() (*time.Time, error) {
	return parseOptionalDate(r.Data)
}

func (r AgendamentoRequest) ResolveTecnicoID() string {
	return strings.TrimSpace(r.TecnicoID)
}

// StatusRequest is the AdvanceStage payload.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	dt, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &dt, nil
}
