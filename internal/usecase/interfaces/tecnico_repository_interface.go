package interfaces

import (
	"context"

	"engetrack/internal/domain/entities"
)

// ITecnicoRepository abstracts DynamoDB persistence for Tecnico.
type ITecnicoRepository interface {
	Create(ctx context.Context, t entities.Tecnico) (entities.Tecnico, error)
	GetByID(ctx context.Context, id string) (entities.Tecnico, error)
	List(ctx context.Context) ([]entities.Tecnico, error)
	Update(ctx context.Context, t entities.Tecnico) (entities.Tecnico, error)
	Delete(ctx context.Context, id string) error
}
