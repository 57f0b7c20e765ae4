package response

import (
	"time"

	"engetrack/internal/domain/entities"
)

type ServicoResponse struct {
	ID       string `json:"id"`
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Bairro   string `json:"bairro,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Estado   string `json:"estado,omitempty"`
	CEP      string `json:"cep,omitempty"`
	Contato  string `json:"contato,omitempty"`
	Telefone string `json:"telefone,omitempty"`

	Status          string     `json:"status"`
	Tecnico         string     `json:"tecnico,omitempty"`
	TecnicoID       string     `json:"tecnicoId,omitempty"`
	DataAgendamento *time.Time `json:"dataAgendamento,omitempty"`
	Atrasado        bool       `json:"atrasado"`

	Responsavel         string `json:"responsavel,omitempty"`
	Digitador           string `json:"digitador,omitempty"`
	MedicinaResponsavel string `json:"medicinaResponsavel,omitempty"`

	DataServico    time.Time  `json:"dataServico"`
	DataVencimento *time.Time `json:"dataVencimento,omitempty"`

	Anexos []entities.Anexo `json:"anexos,omitempty"`

	FichasVisita []FichaResponse `json:"fichasVisita,omitempty"`
	FichasPGR    []FichaResponse `json:"fichasPGR,omitempty"`
	FichasLTCAT  []FichaResponse `json:"fichasLTCAT,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromServico(s entities.Servico) ServicoResponse {
	return ServicoResponse{
		ID:                  s.ID,
		Empresa:             s.Empresa,
		CNPJ:                s.CNPJ,
		Endereco:            s.Endereco,
		Bairro:              s.Bairro,
		Cidade:              s.Cidade,
		Estado:              s.Estado,
		CEP:                 s.CEP,
		Contato:             s.Contato,
		Telefone:            s.Telefone,
		Status:              string(s.Status),
		Tecnico:             s.Tecnico,
		TecnicoID:           s.TecnicoID,
		DataAgendamento:     s.DataAgendamento,
		Atrasado:            s.Atrasado(time.Now()),
		Responsavel:         s.Responsavel,
		Digitador:           s.Digitador,
		MedicinaResponsavel: s.MedicinaResponsavel,
		DataServico:         s.DataServico,
		DataVencimento:      s.DataVencimento,
		Anexos:              s.Anexos,
		FichasVisita:        FromFichas(s.FichasVisita),
		FichasPGR:           FromFichas(s.FichasPGR),
		FichasLTCAT:         FromFichas(s.FichasLTCAT),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func FromServicos(servicos []entities.Servico) []ServicoResponse {
	out := make([]ServicoResponse, 0, len(servicos))
	for _, s := range servicos {
		out = append(out, FromServico(s))
	}
	return out
}
