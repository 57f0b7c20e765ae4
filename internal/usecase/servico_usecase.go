package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServicoNotFound     = errors.New("servico not found")
	ErrInvalidServicoID    = errors.New("invalid servico id")
	ErrInvalidDadosCliente = errors.New("invalid client data")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidAgendamento  = errors.New("invalid agendamento")
	ErrInvalidAnexo        = errors.New("invalid anexo")
)

// IServicoUseCase exposes the service lifecycle operations.
//
// SetSchedule and AdvanceStage are the two independent commands that drive the
// status machine; Archive is the one-way terminal move.
type IServicoUseCase interface {
	Create(ctx context.Context, dados entities.DadosCliente, dataVencimento *time.Time) (entities.Servico, error)
	GetByID(ctx context.Context, id string) (entities.Servico, error)
	List(ctx context.Context) ([]entities.Servico, error)
	ListByStatus(ctx context.Context, status entities.ServicoStatus) ([]entities.Servico, error)
	ListAtrasados(ctx context.Context) ([]entities.Servico, error)
	UpdateDadosCliente(ctx context.Context, id string, dados entities.DadosCliente) (entities.Servico, error)
	SetSchedule(ctx context.Context, id string, data *time.Time, tecnicoID string) (entities.Servico, error)
	AdvanceStage(ctx context.Context, id string, target entities.ServicoStatus) (entities.Servico, error)
	Archive(ctx context.Context, id string) (entities.Servico, error)
	AddAnexo(ctx context.Context, id, nome string, file io.Reader) (entities.Servico, error)
	Delete(ctx context.Context, id string) error
}

type ServicoUseCase struct {
	repo        interfaces.IServicoRepository
	tecnicoRepo interfaces.ITecnicoRepository
	storage     interfaces.IBlobStorage
	notifier    interfaces.IChangeNotifier
}

var _ IServicoUseCase = (*ServicoUseCase)(nil)

func NewServicoUseCase(
	repo interfaces.IServicoRepository,
	tecnicoRepo interfaces.ITecnicoRepository,
	storage interfaces.IBlobStorage,
	notifier interfaces.IChangeNotifier,
) *ServicoUseCase {
	return &ServicoUseCase{repo: repo, tecnicoRepo: tecnicoRepo, storage: storage, notifier: notifier}
}

func (u *ServicoUseCase) Create(ctx context.Context, dados entities.DadosCliente, dataVencimento *time.Time) (entities.Servico, error) {
	dados.Empresa = strings.TrimSpace(dados.Empresa)
	if dados.Empresa == "" {
		return entities.Servico{}, ErrInvalidDadosCliente
	}

	now := time.Now().UTC()
	s := entities.Servico{
		ID:             uuid.NewString(),
		DadosCliente:   dados,
		Status:         entities.StatusEngenharia,
		DataServico:    now,
		DataVencimento: dataVencimento,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Servico{}, err
	}
	u.notify(ctx)
	return created, nil
}

func (u *ServicoUseCase) GetByID(ctx context.Context, id string) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidServicoID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if s.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	return s, nil
}

func (u *ServicoUseCase) List(ctx context.Context) ([]entities.Servico, error) {
	return u.repo.List(ctx)
}

func (u *ServicoUseCase) ListByStatus(ctx context.Context, status entities.ServicoStatus) ([]entities.Servico, error) {
	if _, ok := entities.ParseStatus(string(status)); !ok {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

// ListAtrasados returns scheduled services whose visit date is already past.
// Overdue is derived at read time, never stored.
func (u *ServicoUseCase) ListAtrasados(ctx context.Context) ([]entities.Servico, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	atrasados := make([]entities.Servico, 0)
	for _, s := range all {
		if s.Atrasado(now) {
			atrasados = append(atrasados, s)
		}
	}
	return atrasados, nil
}

func (u *ServicoUseCase) UpdateDadosCliente(ctx context.Context, id string, dados entities.DadosCliente) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidServicoID
	}
	dados.Empresa = strings.TrimSpace(dados.Empresa)
	if dados.Empresa == "" {
		return entities.Servico{}, ErrInvalidDadosCliente
	}

	updated, err := u.repo.UpdateDadosCliente(ctx, id, dados)
	if err != nil {
		return entities.Servico{}, err
	}
	if updated.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	return updated, nil
}

// SetSchedule applies the scheduling command:
//
//   - date + technician  -> aguardando_visita
//   - date only          -> agendado
//   - date cleared       -> back to engenharia when the service was sitting in
//     a scheduling stage (agendado, aguardando_visita, em_visita); the
//     technician assignment is cleared with the date.
//
// Repeated identical calls are idempotent.
func (u *ServicoUseCase) SetSchedule(ctx context.Context, id string, data *time.Time, tecnicoID string) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidServicoID
	}
	tecnicoID = strings.TrimSpace(tecnicoID)
	if data == nil && tecnicoID != "" {
		// A technician without a date never happens through the UI; reject
		// instead of guessing.
		return entities.Servico{}, ErrInvalidAgendamento
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if s.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}

	ag := entities.Agendamento{Data: data}
	switch {
	case data != nil && tecnicoID != "":
		tec, err := u.tecnicoRepo.GetByID(ctx, tecnicoID)
		if err != nil {
			return entities.Servico{}, err
		}
		if tec.ID == "" {
			return entities.Servico{}, ErrTecnicoNotFound
		}
		ag.TecnicoID = tec.ID
		ag.Tecnico = tec.Nome
		ag.Status = entities.StatusAguardandoVisita
	case data != nil:
		ag.Status = entities.StatusAgendado
	default:
		switch s.Status {
		case entities.StatusAgendado, entities.StatusAguardandoVisita, entities.StatusEmVisita:
			ag.Status = entities.StatusEngenharia
		default:
			ag.Status = s.Status
		}
	}

	updated, err := u.repo.UpdateAgendamento(ctx, id, ag)
	if err != nil {
		return entities.Servico{}, err
	}
	if updated.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	u.notify(ctx)
	return updated, nil
}

// AdvanceStage moves a service along the departmental pipeline. Targets not
// allowed by the transition table are rejected, not just hidden.
func (u *ServicoUseCase) AdvanceStage(ctx context.Context, id string, target entities.ServicoStatus) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidServicoID
	}
	if _, ok := entities.ParseStatus(string(target)); !ok {
		return entities.Servico{}, ErrInvalidStatus
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if s.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	if !entities.CanTransition(s.Status, target) {
		log.Printf("[servico][usecase] transition rejected id=%s de=%s para=%s", id, s.Status, target)
		return entities.Servico{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return entities.Servico{}, err
	}
	if updated.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	u.notify(ctx)
	return updated, nil
}

// Archive moves a concluded service to the terminal arquivado stage.
func (u *ServicoUseCase) Archive(ctx context.Context, id string) (entities.Servico, error) {
	return u.AdvanceStage(ctx, id, entities.StatusArquivado)
}

func (u *ServicoUseCase) AddAnexo(ctx context.Context, id, nome string, file io.Reader) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidServicoID
	}
	nome = strings.TrimSpace(nome)
	if nome == "" || file == nil {
		return entities.Servico{}, ErrInvalidAnexo
	}
	if u.storage == nil {
		return entities.Servico{}, errors.New("blob storage not configured")
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if s.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}

	key := fmt.Sprintf("servicos/%s/anexos/%s-%s", id, uuid.NewString(), path.Base(nome))
	_, url, err := u.storage.Upload(ctx, file, key)
	if err != nil {
		log.Printf("[servico][usecase] anexo upload failed id=%s nome=%s err=%v", id, nome, err)
		return entities.Servico{}, err
	}

	updated, err := u.repo.AppendAnexo(ctx, id, entities.Anexo{Nome: nome, URL: url})
	if err != nil {
		return entities.Servico{}, err
	}
	if updated.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	return updated, nil
}

func (u *ServicoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServicoID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServicoNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.notify(ctx)
	return nil
}

func (u *ServicoUseCase) notify(ctx context.Context) {
	if u.notifier != nil {
		u.notifier.NotifyServicos(ctx)
	}
}
