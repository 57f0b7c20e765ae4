package entities

import (
	"sort"
	"time"
)

// FichaTipo names one of the three per-service ledgers.
type FichaTipo string

const (
	FichaTipoVisita FichaTipo = "visita"
	FichaTipoPGR    FichaTipo = "pgr"
	FichaTipoLTCAT  FichaTipo = "ltcat"
)

func ParseFichaTipo(raw string) (FichaTipo, bool) {
	switch FichaTipo(raw) {
	case FichaTipoVisita, FichaTipoPGR, FichaTipoLTCAT:
		return FichaTipo(raw), true
	}
	return "", false
}

// Ficha is one inspection record appended to a service ledger. Exactly one of
// Visita/PGR/LTCAT is set, matching the ledger it lives in.
//
// ID is generated at append time and is the only key used for edits; storage
// order is insertion order and entries are never deleted individually.
type Ficha struct {
	ID                string    `json:"id"`
	DataPreenchimento time.Time `json:"dataPreenchimento"`
	// Tecnico is copied from the service at append time so the record keeps
	// naming who filled it even if the assignment changes later.
	Tecnico string `json:"tecnico,omitempty"`

	Visita *FichaVisitaDados `json:"visita,omitempty"`
	PGR    *FichaPGRDados    `json:"pgr,omitempty"`
	LTCAT  *FichaLTCATDados  `json:"ltcat,omitempty"`
}

// TemDados reports whether the payload matches the given ledger type.
func (f Ficha) TemDados(tipo FichaTipo) bool {
	switch tipo {
	case FichaTipoVisita:
		return f.Visita != nil
	case FichaTipoPGR:
		return f.PGR != nil
	case FichaTipoLTCAT:
		return f.LTCAT != nil
	}
	return false
}

// FichaVisitaDados is the technical-visit checklist.
type FichaVisitaDados struct {
	UsaEPI       bool   `json:"usaEpi" dynamodbav:"usa_epi"`
	PossuiCIPA   bool   `json:"possuiCipa" dynamodbav:"possui_cipa"`
	PossuiPCMSO  bool   `json:"possuiPcmso" dynamodbav:"possui_pcmso"`
	PossuiPGR    bool   `json:"possuiPgr" dynamodbav:"possui_pgr"`
	AreaDeRisco  bool   `json:"areaDeRisco" dynamodbav:"area_de_risco"`
	Observacoes  string `json:"observacoes,omitempty" dynamodbav:"observacoes,omitempty"`
	Recomendacao string `json:"recomendacao,omitempty" dynamodbav:"recomendacao,omitempty"`
}

// RiscoPGR is one row of the workplace risk-inspection table.
type RiscoPGR struct {
	Perigo        string `json:"perigo" dynamodbav:"perigo"`
	TipoRisco     string `json:"tipoRisco" dynamodbav:"tipo_risco"`
	Fonte         string `json:"fonte,omitempty" dynamodbav:"fonte,omitempty"`
	Severidade    string `json:"severidade" dynamodbav:"severidade"`
	Probabilidade string `json:"probabilidade" dynamodbav:"probabilidade"`
}

// AcaoCorretiva is one row of the PGR corrective-action plan.
type AcaoCorretiva struct {
	Descricao   string `json:"descricao" dynamodbav:"descricao"`
	Responsavel string `json:"responsavel,omitempty" dynamodbav:"responsavel,omitempty"`
	Prazo       string `json:"prazo,omitempty" dynamodbav:"prazo,omitempty"`
}

// FichaPGRDados is the structured risk report with its action plan.
type FichaPGRDados struct {
	Riscos    []RiscoPGR      `json:"riscos" dynamodbav:"riscos"`
	PlanoAcao []AcaoCorretiva `json:"planoAcao,omitempty" dynamodbav:"plano_acao,omitempty"`
}

// AgenteLTCAT is one quantitative hazard-agent measurement.
type AgenteLTCAT struct {
	Agente           string  `json:"agente" dynamodbav:"agente"`
	Tipo             string  `json:"tipo" dynamodbav:"tipo"`
	Intensidade      float64 `json:"intensidade" dynamodbav:"intensidade"`
	Unidade          string  `json:"unidade,omitempty" dynamodbav:"unidade,omitempty"`
	LimiteTolerancia float64 `json:"limiteTolerancia,omitempty" dynamodbav:"limite_tolerancia,omitempty"`
	Tecnica          string  `json:"tecnica,omitempty" dynamodbav:"tecnica,omitempty"`
}

// FichaLTCATDados is the occupational-exposure technical report.
type FichaLTCATDados struct {
	Agentes   []AgenteLTCAT `json:"agentes" dynamodbav:"agentes"`
	Conclusao string        `json:"conclusao,omitempty" dynamodbav:"conclusao,omitempty"`
}

// OrdenarFichas returns a copy sorted by dataPreenchimento descending (most
// recent first), the display order. Storage order stays insertion order.
func OrdenarFichas(fichas []Ficha) []Ficha {
	out := make([]Ficha, len(fichas))
	copy(out, fichas)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DataPreenchimento.After(out[j].DataPreenchimento)
	})
	return out
}
