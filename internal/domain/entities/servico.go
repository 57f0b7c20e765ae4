package entities

import "time"

// ServicoStatus is the departmental stage a service currently occupies.
//
// Domain notes:
//   - "concluido" is reused for two milestones: the technician finishing the
//     visit (feeding digitacao) and finance marking the service as paid
//     (feeding arquivado). The transition table below carries both edges.
type ServicoStatus string

const (
	StatusEngenharia       ServicoStatus = "engenharia"
	StatusAgendado         ServicoStatus = "agendado"
	StatusAguardandoVisita ServicoStatus = "aguardando_visita"
	StatusEmVisita         ServicoStatus = "em_visita"
	StatusDigitacao        ServicoStatus = "digitacao"
	StatusMedicina         ServicoStatus = "medicina"
	StatusFinanceiro       ServicoStatus = "financeiro"
	StatusAvaliacao        ServicoStatus = "avaliacao"
	StatusConcluido        ServicoStatus = "concluido"
	StatusArquivado        ServicoStatus = "arquivado"
)

var allStatuses = []ServicoStatus{
	StatusEngenharia,
	StatusAgendado,
	StatusAguardandoVisita,
	StatusEmVisita,
	StatusDigitacao,
	StatusMedicina,
	StatusFinanceiro,
	StatusAvaliacao,
	StatusConcluido,
	StatusArquivado,
}

// ParseStatus validates a raw status string coming from the API surface.
func ParseStatus(raw string) (ServicoStatus, bool) {
	for _, s := range allStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// transicoes is the single source of truth for stage advancement. The
// scheduling edges (engenharia <-> agendado <-> aguardando_visita) are owned
// by the SetSchedule command and are intentionally absent here.
var transicoes = map[ServicoStatus][]ServicoStatus{
	StatusAguardandoVisita: {StatusEmVisita},
	StatusEmVisita:         {StatusConcluido},
	StatusConcluido:        {StatusDigitacao, StatusArquivado},
	StatusDigitacao:        {StatusMedicina},
	StatusMedicina:         {StatusAvaliacao, StatusFinanceiro},
	StatusAvaliacao:        {StatusFinanceiro},
	StatusFinanceiro:       {StatusConcluido},
	StatusArquivado:        {},
}

// CanTransition reports whether AdvanceStage may move a service from "de" to
// "para". Archiving is only reachable from concluido; arquivado is terminal.
func CanTransition(de, para ServicoStatus) bool {
	for _, s := range transicoes[de] {
		if s == para {
			return true
		}
	}
	return false
}

// Anexo is one file attached to a service.
type Anexo struct {
	Nome string `json:"nome" dynamodbav:"nome"`
	URL  string `json:"url" dynamodbav:"url"`
}

// DadosCliente holds the client attributes captured at registration.
type DadosCliente struct {
	Empresa  string `json:"empresa"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Bairro   string `json:"bairro"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado"`
	CEP      string `json:"cep"`
	Contato  string `json:"contato"`
	Telefone string `json:"telefone"`
}

// Agendamento is the scheduling update applied by the SetSchedule command.
// Data == nil means the schedule was cleared; TecnicoID/Tecnico follow it.
type Agendamento struct {
	Data      *time.Time
	TecnicoID string
	Tecnico   string
	Status    ServicoStatus
}

// Servico is one client engagement tracked end-to-end through the
// departmental stages.
type Servico struct {
	ID string `json:"id"`

	DadosCliente

	Status ServicoStatus `json:"status"`

	// Tecnico keeps the denormalized display name used across screens and
	// historical fichas; TecnicoID is the stable reference.
	Tecnico         string     `json:"tecnico,omitempty"`
	TecnicoID       string     `json:"tecnicoId,omitempty"`
	DataAgendamento *time.Time `json:"dataAgendamento,omitempty"`

	Responsavel         string `json:"responsavel,omitempty"`
	Digitador           string `json:"digitador,omitempty"`
	MedicinaResponsavel string `json:"medicinaResponsavel,omitempty"`

	DataServico    time.Time  `json:"dataServico"`
	DataVencimento *time.Time `json:"dataVencimento,omitempty"`

	Anexos []Anexo `json:"anexos,omitempty"`

	FichasVisita []Ficha `json:"fichasVisita,omitempty"`
	FichasPGR    []Ficha `json:"fichasPGR,omitempty"`
	FichasLTCAT  []Ficha `json:"fichasLTCAT,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Atrasado reports whether the scheduled visit date is already past. Only
// services still waiting for the visit can be overdue; a visit in progress
// is not.
func (s Servico) Atrasado(agora time.Time) bool {
	if s.Status != StatusAgendado && s.Status != StatusAguardandoVisita {
		return false
	}
	if s.DataAgendamento == nil {
		return false
	}
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	return s.DataAgendamento.Before(hoje)
}

// Fichas returns the ledger for the given type. The returned slice is the
// stored one; callers must not mutate it.
func (s Servico) Fichas(tipo FichaTipo) []Ficha {
	switch tipo {
	case FichaTipoVisita:
		return s.FichasVisita
	case FichaTipoPGR:
		return s.FichasPGR
	case FichaTipoLTCAT:
		return s.FichasLTCAT
	}
	return nil
}
