package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFichaNotFound    = errors.New("ficha not found")
	ErrInvalidFichaTipo = errors.New("invalid ficha tipo")
	ErrInvalidFicha     = errors.New("invalid ficha payload")
)

// IFichaUseCase manages the append-only inspection ledgers attached to a
// service.
//
//   - Append stamps dataPreenchimento and copies the service's técnico, then
//     relies on the store's atomic array append.
//   - Update replaces one record keyed by its ID; dataPreenchimento and the
//     técnico stamp are immutable.
//   - List returns display order: most recent first.
type IFichaUseCase interface {
	Append(ctx context.Context, servicoID string, tipo entities.FichaTipo, f entities.Ficha) (entities.Ficha, error)
	Update(ctx context.Context, servicoID string, tipo entities.FichaTipo, f entities.Ficha) (entities.Ficha, error)
	List(ctx context.Context, servicoID string, tipo entities.FichaTipo) ([]entities.Ficha, error)
}

type FichaUseCase struct {
	repo     interfaces.IServicoRepository
	notifier interfaces.IChangeNotifier
}

var _ IFichaUseCase = (*FichaUseCase)(nil)

func NewFichaUseCase(repo interfaces.IServicoRepository, notifier interfaces.IChangeNotifier) *FichaUseCase {
	return &FichaUseCase{repo: repo, notifier: notifier}
}

func (u *FichaUseCase) Append(ctx context.Context, servicoID string, tipo entities.FichaTipo, f entities.Ficha) (entities.Ficha, error) {
	servicoID = strings.TrimSpace(servicoID)
	if servicoID == "" {
		return entities.Ficha{}, ErrInvalidServicoID
	}
	if _, ok := entities.ParseFichaTipo(string(tipo)); !ok {
		return entities.Ficha{}, ErrInvalidFichaTipo
	}
	if !f.TemDados(tipo) {
		return entities.Ficha{}, ErrInvalidFicha
	}

	s, err := u.repo.GetByID(ctx, servicoID)
	if err != nil {
		return entities.Ficha{}, err
	}
	if s.ID == "" {
		return entities.Ficha{}, ErrServicoNotFound
	}

	f.ID = uuid.NewString()
	f.DataPreenchimento = time.Now().UTC()
	f.Tecnico = s.Tecnico

	updated, err := u.repo.AppendFicha(ctx, servicoID, tipo, f)
	if err != nil {
		return entities.Ficha{}, err
	}
	if updated.ID == "" {
		return entities.Ficha{}, ErrServicoNotFound
	}
	u.notify(ctx)
	return f, nil
}

func (u *FichaUseCase) Update(ctx context.Context, servicoID string, tipo entities.FichaTipo, f entities.Ficha) (entities.Ficha, error) {
	servicoID = strings.TrimSpace(servicoID)
	if servicoID == "" {
		return entities.Ficha{}, ErrInvalidServicoID
	}
	if _, ok := entities.ParseFichaTipo(string(tipo)); !ok {
		return entities.Ficha{}, ErrInvalidFichaTipo
	}
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" || !f.TemDados(tipo) {
		return entities.Ficha{}, ErrInvalidFicha
	}

	s, err := u.repo.GetByID(ctx, servicoID)
	if err != nil {
		return entities.Ficha{}, err
	}
	if s.ID == "" {
		return entities.Ficha{}, ErrServicoNotFound
	}

	var existing *entities.Ficha
	for _, cur := range s.Fichas(tipo) {
		if cur.ID == f.ID {
			c := cur
			existing = &c
			break
		}
	}
	if existing == nil {
		return entities.Ficha{}, ErrFichaNotFound
	}

	// Creation stamp and técnico attribution never change on edit.
	f.DataPreenchimento = existing.DataPreenchimento
	f.Tecnico = existing.Tecnico

	updated, err := u.repo.ReplaceFicha(ctx, servicoID, tipo, f)
	if err != nil {
		return entities.Ficha{}, err
	}
	if updated.ID == "" {
		return entities.Ficha{}, ErrFichaNotFound
	}
	u.notify(ctx)
	return f, nil
}

func (u *FichaUseCase) List(ctx context.Context, servicoID string, tipo entities.FichaTipo) ([]entities.Ficha, error) {
	servicoID = strings.TrimSpace(servicoID)
	if servicoID == "" {
		return nil, ErrInvalidServicoID
	}
	if _, ok := entities.ParseFichaTipo(string(tipo)); !ok {
		return nil, ErrInvalidFichaTipo
	}

	s, err := u.repo.GetByID(ctx, servicoID)
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, ErrServicoNotFound
	}
	return entities.OrdenarFichas(s.Fichas(tipo)), nil
}

func (u *FichaUseCase) notify(ctx context.Context) {
	if u.notifier != nil {
		u.notifier.NotifyServicos(ctx)
	}
}
