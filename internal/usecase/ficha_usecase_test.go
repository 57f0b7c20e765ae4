package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engetrack/internal/domain/entities"
	mock_interfaces "engetrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fichaVisita() entities.Ficha {
	return entities.Ficha{Visita: &entities.FichaVisitaDados{UsaEPI: true, Observacoes: "ok"}}
}

func TestFichaUseCase_Append(t *testing.T) {
	t.Run("invalid servico id", func(t *testing.T) {
		uc := NewFichaUseCase(nil, nil)
		_, err := uc.Append(context.Background(), " ", entities.FichaTipoVisita, fichaVisita())
		if !errors.Is(err, ErrInvalidServicoID) {
			t.Fatalf("expected ErrInvalidServicoID, got %v", err)
		}
	})

	t.Run("payload must match ledger", func(t *testing.T) {
		uc := NewFichaUseCase(nil, nil)
		_, err := uc.Append(context.Background(), "s1", entities.FichaTipoPGR, fichaVisita())
		if !errors.Is(err, ErrInvalidFicha) {
			t.Fatalf("expected ErrInvalidFicha, got %v", err)
		}
	})

	t.Run("servico not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewFichaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{}, nil)

		if _, err := uc.Append(context.Background(), "s1", entities.FichaTipoVisita, fichaVisita()); !errors.Is(err, ErrServicoNotFound) {
			t.Fatalf("expected ErrServicoNotFound, got %v", err)
		}
	})

	t.Run("stamps id, date and tecnico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewFichaUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Tecnico: "Ana Souza"}, nil)
		repo.EXPECT().AppendFicha(gomock.Any(), "s1", entities.FichaTipoVisita, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.FichaTipo, f entities.Ficha) (entities.Servico, error) {
				if f.ID == "" {
					t.Fatal("expected generated ficha id")
				}
				if f.DataPreenchimento.IsZero() {
					t.Fatal("expected fill date stamped")
				}
				if f.Tecnico != "Ana Souza" {
					t.Fatalf("expected tecnico copied from service, got %q", f.Tecnico)
				}
				return entities.Servico{ID: id, FichasVisita: []entities.Ficha{f}}, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		f, err := uc.Append(context.Background(), "s1", entities.FichaTipoVisita, fichaVisita())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Tecnico != "Ana Souza" || f.ID == "" {
			t.Fatalf("unexpected ficha %+v", f)
		}
	})
}

func TestFichaUseCase_Update(t *testing.T) {
	original := entities.Ficha{
		ID:                "f1",
		DataPreenchimento: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Tecnico:           "Ana Souza",
		Visita:            &entities.FichaVisitaDados{UsaEPI: false},
	}

	t.Run("missing id", func(t *testing.T) {
		uc := NewFichaUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "s1", entities.FichaTipoVisita, fichaVisita())
		if !errors.Is(err, ErrInvalidFicha) {
			t.Fatalf("expected ErrInvalidFicha, got %v", err)
		}
	})

	t.Run("unknown ficha id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewFichaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", FichasVisita: []entities.Ficha{original}}, nil)

		edit := fichaVisita()
		edit.ID = "f9"
		if _, err := uc.Update(context.Background(), "s1", entities.FichaTipoVisita, edit); !errors.Is(err, ErrFichaNotFound) {
			t.Fatalf("expected ErrFichaNotFound, got %v", err)
		}
	})

	t.Run("preserves creation stamp and tecnico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewFichaUseCase(repo, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", FichasVisita: []entities.Ficha{original}}, nil)
		repo.EXPECT().ReplaceFicha(gomock.Any(), "s1", entities.FichaTipoVisita, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, _ entities.FichaTipo, f entities.Ficha) (entities.Servico, error) {
				if !f.DataPreenchimento.Equal(original.DataPreenchimento) {
					t.Fatal("fill date must be immutable on edit")
				}
				if f.Tecnico != "Ana Souza" {
					t.Fatal("tecnico stamp must be immutable on edit")
				}
				if !f.Visita.UsaEPI {
					t.Fatal("expected edited payload persisted")
				}
				return entities.Servico{ID: id, FichasVisita: []entities.Ficha{f}}, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		edit := entities.Ficha{ID: "f1", Tecnico: "Intruso", Visita: &entities.FichaVisitaDados{UsaEPI: true}}
		f, err := uc.Update(context.Background(), "s1", entities.FichaTipoVisita, edit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Tecnico != "Ana Souza" {
			t.Fatalf("expected original tecnico kept, got %q", f.Tecnico)
		}
	})

	t.Run("conditional replace race reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewFichaUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", FichasVisita: []entities.Ficha{original}}, nil)
		repo.EXPECT().ReplaceFicha(gomock.Any(), "s1", entities.FichaTipoVisita, gomock.Any()).Return(entities.Servico{}, nil)

		edit := entities.Ficha{ID: "f1", Visita: &entities.FichaVisitaDados{}}
		if _, err := uc.Update(context.Background(), "s1", entities.FichaTipoVisita, edit); !errors.Is(err, ErrFichaNotFound) {
			t.Fatalf("expected ErrFichaNotFound, got %v", err)
		}
	})
}

func TestFichaUseCase_List(t *testing.T) {
	t.Run("invalid tipo", func(t *testing.T) {
		uc := NewFichaUseCase(nil, nil)
		if _, err := uc.List(context.Background(), "s1", "laudo"); !errors.Is(err, ErrInvalidFichaTipo) {
			t.Fatalf("expected ErrInvalidFichaTipo, got %v", err)
		}
	})

	t.Run("returns most recent first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewFichaUseCase(repo, nil)

		base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{
			ID: "s1",
			FichasPGR: []entities.Ficha{
				{ID: "antiga", DataPreenchimento: base},
				{ID: "recente", DataPreenchimento: base.Add(72 * time.Hour)},
			},
		}, nil)

		fichas, err := uc.List(context.Background(), "s1", entities.FichaTipoPGR)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fichas) != 2 || fichas[0].ID != "recente" {
			t.Fatalf("unexpected order: %+v", fichas)
		}
	})
}
