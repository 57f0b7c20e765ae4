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
	ErrTecnicoNotFound  = errors.New("tecnico not found")
	ErrInvalidTecnicoID = errors.New("invalid tecnico id")
	ErrInvalidTecnico   = errors.New("invalid tecnico")
)

// ITecnicoUseCase exposes técnico registry operations. Técnicos live
// independently of services; deleting one does not touch historical
// assignments, which keep the denormalized name.
type ITecnicoUseCase interface {
	Create(ctx context.Context, nome, email, telefone string) (entities.Tecnico, error)
	GetByID(ctx context.Context, id string) (entities.Tecnico, error)
	List(ctx context.Context) ([]entities.Tecnico, error)
	Update(ctx context.Context, id, nome, email, telefone string) (entities.Tecnico, error)
	Delete(ctx context.Context, id string) error
}

type TecnicoUseCase struct {
	repo interfaces.ITecnicoRepository
}

var _ ITecnicoUseCase = (*TecnicoUseCase)(nil)

func NewTecnicoUseCase(repo interfaces.ITecnicoRepository) *TecnicoUseCase {
	return &TecnicoUseCase{repo: repo}
}

func (u *TecnicoUseCase) Create(ctx context.Context, nome, email, telefone string) (entities.Tecnico, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return entities.Tecnico{}, ErrInvalidTecnico
	}

	now := time.Now().UTC()
	t := entities.Tecnico{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     strings.TrimSpace(email),
		Telefone:  strings.TrimSpace(telefone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TecnicoUseCase) GetByID(ctx context.Context, id string) (entities.Tecnico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tecnico{}, ErrInvalidTecnicoID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tecnico{}, err
	}
	if t.ID == "" {
		return entities.Tecnico{}, ErrTecnicoNotFound
	}
	return t, nil
}

func (u *TecnicoUseCase) List(ctx context.Context) ([]entities.Tecnico, error) {
	return u.repo.List(ctx)
}

func (u *TecnicoUseCase) Update(ctx context.Context, id, nome, email, telefone string) (entities.Tecnico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tecnico{}, ErrInvalidTecnicoID
	}
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return entities.Tecnico{}, ErrInvalidTecnico
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tecnico{}, err
	}
	if current.ID == "" {
		return entities.Tecnico{}, ErrTecnicoNotFound
	}

	current.Nome = nome
	current.Email = strings.TrimSpace(email)
	current.Telefone = strings.TrimSpace(telefone)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Tecnico{}, err
	}
	if updated.ID == "" {
		return entities.Tecnico{}, ErrTecnicoNotFound
	}
	return updated, nil
}

func (u *TecnicoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTecnicoID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.ID == "" {
		return ErrTecnicoNotFound
	}
	return u.repo.Delete(ctx, id)
}
