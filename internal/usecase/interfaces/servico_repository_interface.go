package interfaces

import (
	"context"

	"engetrack/internal/domain/entities"
)

// IServicoRepository abstracts DynamoDB persistence for Servico.
//
// Not-found follows the repository convention used across the project: a
// zero-value entity with a nil error.
//
// Ledger contract:
//   - AppendFicha/AppendAnexo must use the store's atomic array-append
//     primitive; concurrent appends from other actors are never lost.
//   - ReplaceFicha replaces the element whose id matches f.ID as a targeted
//     keyed write, never a whole-list overwrite.
type IServicoRepository interface {
	Create(ctx context.Context, s entities.Servico) (entities.Servico, error)
	GetByID(ctx context.Context, id string) (entities.Servico, error)
	List(ctx context.Context) ([]entities.Servico, error)
	ListByStatus(ctx context.Context, status entities.ServicoStatus) ([]entities.Servico, error)
	UpdateDadosCliente(ctx context.Context, id string, dados entities.DadosCliente) (entities.Servico, error)
	UpdateAgendamento(ctx context.Context, id string, ag entities.Agendamento) (entities.Servico, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServicoStatus) (entities.Servico, error)
	AppendAnexo(ctx context.Context, id string, anexo entities.Anexo) (entities.Servico, error)
	AppendFicha(ctx context.Context, id string, tipo entities.FichaTipo, f entities.Ficha) (entities.Servico, error)
	ReplaceFicha(ctx context.Context, id string, tipo entities.FichaTipo, f entities.Ficha) (entities.Servico, error)
	Delete(ctx context.Context, id string) error
}
