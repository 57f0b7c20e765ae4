package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"engetrack/internal/adapter/http/handlers/mocks"
	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificacaoHandler_GetCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificacaoUseCase(ctrl)
	h := NewNotificacaoHandler(uc)

	uc.EXPECT().Counts().Return(map[entities.ServicoStatus]int{
		entities.StatusDigitacao: 3,
		entities.StatusMedicina:  1,
	})

	r := gin.New()
	r.GET("/v1/notificacoes", h.GetCounts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notificacoes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp) != len(usecase.TrackedStatuses) {
		t.Fatalf("expected every tracked status, got %d entries", len(resp))
	}
	// Order is the tracked-status order, untouched counters render zero.
	if resp[0].Status != string(entities.StatusEngenharia) || resp[0].Count != 0 {
		t.Fatalf("unexpected first entry %+v", resp[0])
	}
	for _, e := range resp {
		if e.Status == string(entities.StatusDigitacao) && e.Count != 3 {
			t.Fatalf("expected 3 for digitacao, got %d", e.Count)
		}
	}
}

func TestNotificacaoHandler_MarkViewing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificacaoUseCase(ctrl)
		h := NewNotificacaoHandler(uc)

		r := gin.New()
		r.POST("/v1/notificacoes/:status/visto", h.MarkViewing)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notificacoes/pendente/visto", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("untracked status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificacaoUseCase(ctrl)
		h := NewNotificacaoHandler(uc)

		uc.EXPECT().MarkViewing(entities.StatusArquivado).Return(usecase.ErrStatusNaoMonitorado)

		r := gin.New()
		r.POST("/v1/notificacoes/:status/visto", h.MarkViewing)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notificacoes/arquivado/visto", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("marks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificacaoUseCase(ctrl)
		h := NewNotificacaoHandler(uc)

		uc.EXPECT().MarkViewing(entities.StatusDigitacao).Return(nil)

		r := gin.New()
		r.POST("/v1/notificacoes/:status/visto", h.MarkViewing)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notificacoes/digitacao/visto", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestNotificacaoHandler_StopViewing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificacaoUseCase(ctrl)
	h := NewNotificacaoHandler(uc)

	uc.EXPECT().StopViewing(entities.StatusDigitacao).Return(nil)

	r := gin.New()
	r.DELETE("/v1/notificacoes/:status/visto", h.StopViewing)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/notificacoes/digitacao/visto", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
