package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"engetrack/internal/domain/entities"
	mock_interfaces "engetrack/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServicoUseCase_Create(t *testing.T) {
	t.Run("empresa required", func(t *testing.T) {
		uc := NewServicoUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.DadosCliente{Empresa: "   "}, nil)
		if !errors.Is(err, ErrInvalidDadosCliente) {
			t.Fatalf("expected ErrInvalidDadosCliente, got %v", err)
		}
	})

	t.Run("starts in engenharia and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Servico{})).DoAndReturn(
			func(_ context.Context, s entities.Servico) (entities.Servico, error) {
				if s.ID == "" {
					t.Fatal("expected generated id")
				}
				if s.Status != entities.StatusEngenharia {
					t.Fatalf("expected engenharia, got %s", s.Status)
				}
				if s.Empresa != "Metalúrgica Azul" {
					t.Fatalf("unexpected empresa %q", s.Empresa)
				}
				return s, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		s, err := uc.Create(context.Background(), entities.DadosCliente{Empresa: "  Metalúrgica Azul  "}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.StatusEngenharia {
			t.Fatalf("expected engenharia, got %s", s.Status)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Servico{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), entities.DadosCliente{Empresa: "X"}, nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestServicoUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServicoUseCase(nil, nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidServicoID) {
			t.Fatalf("expected ErrInvalidServicoID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{}, nil)

		if _, err := uc.GetByID(context.Background(), "s1"); !errors.Is(err, ErrServicoNotFound) {
			t.Fatalf("expected ErrServicoNotFound, got %v", err)
		}
	})
}

func TestServicoUseCase_SetSchedule(t *testing.T) {
	data := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	t.Run("tecnico without date rejected", func(t *testing.T) {
		uc := NewServicoUseCase(nil, nil, nil, nil)
		_, err := uc.SetSchedule(context.Background(), "s1", nil, "t1")
		if !errors.Is(err, ErrInvalidAgendamento) {
			t.Fatalf("expected ErrInvalidAgendamento, got %v", err)
		}
	})

	t.Run("date only moves to agendado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusEngenharia}, nil)
		repo.EXPECT().UpdateAgendamento(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
				if ag.Status != entities.StatusAgendado {
					t.Fatalf("expected agendado, got %s", ag.Status)
				}
				if ag.Data == nil || !ag.Data.Equal(data) {
					t.Fatalf("unexpected data %v", ag.Data)
				}
				if ag.TecnicoID != "" || ag.Tecnico != "" {
					t.Fatal("date-only schedule must not assign a technician")
				}
				return entities.Servico{ID: id, Status: ag.Status, DataAgendamento: ag.Data}, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		s, err := uc.SetSchedule(context.Background(), "s1", &data, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.StatusAgendado {
			t.Fatalf("expected agendado, got %s", s.Status)
		}
	})

	t.Run("date and tecnico move to aguardando_visita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		tecRepo := mock_interfaces.NewMockITecnicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, tecRepo, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusAgendado}, nil)
		tecRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Tecnico{ID: "t1", Nome: "Ana Souza"}, nil)
		repo.EXPECT().UpdateAgendamento(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
				if ag.Status != entities.StatusAguardandoVisita {
					t.Fatalf("expected aguardando_visita, got %s", ag.Status)
				}
				if ag.TecnicoID != "t1" || ag.Tecnico != "Ana Souza" {
					t.Fatalf("expected technician copied, got %+v", ag)
				}
				return entities.Servico{ID: id, Status: ag.Status, Tecnico: ag.Tecnico, TecnicoID: ag.TecnicoID, DataAgendamento: ag.Data}, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		s, err := uc.SetSchedule(context.Background(), "s1", &data, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Tecnico != "Ana Souza" {
			t.Fatalf("expected denormalized name, got %q", s.Tecnico)
		}
	})

	t.Run("unknown tecnico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		tecRepo := mock_interfaces.NewMockITecnicoRepository(ctrl)
		uc := NewServicoUseCase(repo, tecRepo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusEngenharia}, nil)
		tecRepo.EXPECT().GetByID(gomock.Any(), "t9").Return(entities.Tecnico{}, nil)

		if _, err := uc.SetSchedule(context.Background(), "s1", &data, "t9"); !errors.Is(err, ErrTecnicoNotFound) {
			t.Fatalf("expected ErrTecnicoNotFound, got %v", err)
		}
	})

	t.Run("clearing the date returns scheduling stages to engenharia", func(t *testing.T) {
		for _, status := range []entities.ServicoStatus{
			entities.StatusAgendado,
			entities.StatusAguardandoVisita,
			entities.StatusEmVisita,
		} {
			t.Run(string(status), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				repo := mock_interfaces.NewMockIServicoRepository(ctrl)
				notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
				uc := NewServicoUseCase(repo, nil, nil, notifier)

				repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: status}, nil)
				repo.EXPECT().UpdateAgendamento(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
					func(_ context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
						if ag.Status != entities.StatusEngenharia {
							t.Fatalf("expected engenharia, got %s", ag.Status)
						}
						if ag.Data != nil {
							t.Fatal("expected cleared date")
						}
						return entities.Servico{ID: id, Status: ag.Status}, nil
					})
				notifier.EXPECT().NotifyServicos(gomock.Any())

				if _, err := uc.SetSchedule(context.Background(), "s1", nil, ""); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
		}
	})

	t.Run("clearing the date elsewhere keeps the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusDigitacao}, nil)
		repo.EXPECT().UpdateAgendamento(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
				if ag.Status != entities.StatusDigitacao {
					t.Fatalf("expected digitacao kept, got %s", ag.Status)
				}
				return entities.Servico{ID: id, Status: ag.Status}, nil
			})
		notifier.EXPECT().NotifyServicos(gomock.Any())

		if _, err := uc.SetSchedule(context.Background(), "s1", nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeating the same schedule is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		estado := entities.Servico{ID: "s1", Status: entities.StatusEngenharia}
		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(estado, nil).Times(2)
		repo.EXPECT().UpdateAgendamento(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ag entities.Agendamento) (entities.Servico, error) {
				estado.Status = ag.Status
				estado.DataAgendamento = ag.Data
				return estado, nil
			}).Times(2)
		notifier.EXPECT().NotifyServicos(gomock.Any()).Times(2)

		primeiro, err := uc.SetSchedule(context.Background(), "s1", &data, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		segundo, err := uc.SetSchedule(context.Background(), "s1", &data, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if primeiro.Status != segundo.Status || !segundo.DataAgendamento.Equal(*primeiro.DataAgendamento) {
			t.Fatal("repeated schedule must converge to the same state")
		}
	})
}

func TestServicoUseCase_AdvanceStage(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		uc := NewServicoUseCase(nil, nil, nil, nil)
		if _, err := uc.AdvanceStage(context.Background(), "s1", "pendente"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("illegal transition rejected without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusDigitacao}, nil)

		_, err := uc.AdvanceStage(context.Background(), "s1", entities.StatusFinanceiro)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("archived is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusArquivado}, nil)

		if _, err := uc.AdvanceStage(context.Background(), "s1", entities.StatusConcluido); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("full pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		etapas := []entities.ServicoStatus{
			entities.StatusEmVisita,
			entities.StatusConcluido,
			entities.StatusDigitacao,
			entities.StatusMedicina,
			entities.StatusFinanceiro,
			entities.StatusConcluido,
			entities.StatusArquivado,
		}

		estado := entities.Servico{ID: "s1", Status: entities.StatusAguardandoVisita}
		repo.EXPECT().GetByID(gomock.Any(), "s1").DoAndReturn(
			func(context.Context, string) (entities.Servico, error) { return estado, nil }).Times(len(etapas))
		repo.EXPECT().UpdateStatus(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, status entities.ServicoStatus) (entities.Servico, error) {
				estado.Status = status
				return estado, nil
			}).Times(len(etapas))
		notifier.EXPECT().NotifyServicos(gomock.Any()).Times(len(etapas))

		for _, alvo := range etapas {
			s, err := uc.AdvanceStage(context.Background(), "s1", alvo)
			if err != nil {
				t.Fatalf("advancing to %s: %v", alvo, err)
			}
			if s.Status != alvo {
				t.Fatalf("expected %s, got %s", alvo, s.Status)
			}
		}
	})
}

func TestServicoUseCase_Archive(t *testing.T) {
	t.Run("only from concluido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusMedicina}, nil)

		if _, err := uc.Archive(context.Background(), "s1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("archives a concluded service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusConcluido}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "s1", entities.StatusArquivado).Return(entities.Servico{ID: "s1", Status: entities.StatusArquivado}, nil)
		notifier.EXPECT().NotifyServicos(gomock.Any())

		s, err := uc.Archive(context.Background(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.StatusArquivado {
			t.Fatalf("expected arquivado, got %s", s.Status)
		}
	})
}

func TestServicoUseCase_ListAtrasados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServicoRepository(ctrl)
	uc := NewServicoUseCase(repo, nil, nil, nil)

	ontem := time.Now().AddDate(0, 0, -2)
	amanha := time.Now().AddDate(0, 0, 2)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Servico{
		{ID: "vencido", Status: entities.StatusAgendado, DataAgendamento: &ontem},
		{ID: "futuro", Status: entities.StatusAgendado, DataAgendamento: &amanha},
		{ID: "sem-data", Status: entities.StatusEngenharia},
	}, nil)

	atrasados, err := uc.ListAtrasados(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(atrasados) != 1 || atrasados[0].ID != "vencido" {
		t.Fatalf("unexpected overdue set: %+v", atrasados)
	}
}

func TestServicoUseCase_AddAnexo(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewServicoUseCase(nil, nil, nil, nil)
		if _, err := uc.AddAnexo(context.Background(), "s1", "  ", strings.NewReader("x")); !errors.Is(err, ErrInvalidAnexo) {
			t.Fatalf("expected ErrInvalidAnexo, got %v", err)
		}
	})

	t.Run("uploads then appends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		storage := mock_interfaces.NewMockIBlobStorage(ctrl)
		uc := NewServicoUseCase(repo, nil, storage, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1", Status: entities.StatusEngenharia}, nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, path string) (string, string, error) {
				if !strings.HasPrefix(path, "servicos/s1/anexos/") {
					t.Fatalf("unexpected storage path %q", path)
				}
				return path, "https://cdn.example.com/" + path, nil
			})
		repo.EXPECT().AppendAnexo(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, anexo entities.Anexo) (entities.Servico, error) {
				if anexo.Nome != "laudo.pdf" || anexo.URL == "" {
					t.Fatalf("unexpected anexo %+v", anexo)
				}
				return entities.Servico{ID: id, Anexos: []entities.Anexo{anexo}}, nil
			})

		s, err := uc.AddAnexo(context.Background(), "s1", "laudo.pdf", strings.NewReader("conteudo"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Anexos) != 1 {
			t.Fatalf("expected one anexo, got %d", len(s.Anexos))
		}
	})

	t.Run("upload failure aborts append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		storage := mock_interfaces.NewMockIBlobStorage(ctrl)
		uc := NewServicoUseCase(repo, nil, storage, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1"}, nil)
		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", errors.New("s3 down"))

		if _, err := uc.AddAnexo(context.Background(), "s1", "laudo.pdf", strings.NewReader("x")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestServicoUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{}, nil)

		if err := uc.Delete(context.Background(), "s1"); !errors.Is(err, ErrServicoNotFound) {
			t.Fatalf("expected ErrServicoNotFound, got %v", err)
		}
	})

	t.Run("deletes and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServicoRepository(ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		uc := NewServicoUseCase(repo, nil, nil, notifier)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.Servico{ID: "s1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "s1").Return(nil)
		notifier.EXPECT().NotifyServicos(gomock.Any())

		if err := uc.Delete(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
