package handlers

import (
	"net/http"

	response "engetrack/internal/adapter/http/dto/response"
	"engetrack/internal/domain/entities"
	"engetrack/internal/usecase"
	"engetrack/pkg"

	"github.com/gin-gonic/gin"
)

var errStatusNaoMonitorado = pkg.NewDomainErrorSimple("STATUS_NOT_TRACKED", "Status has no notification counter", http.StatusBadRequest)

// NotificacaoHandler exposes the live unseen-work counters per department.
type NotificacaoHandler struct {
	usecase usecase.INotificacaoUseCase
}

func NewNotificacaoHandler(uc usecase.INotificacaoUseCase) *NotificacaoHandler {
	return &NotificacaoHandler{usecase: uc}
}

// GetCounts returns every tracked counter in a stable order.
func (h *NotificacaoHandler) GetCounts(c *gin.Context) {
	counts := h.usecase.Counts()
	c.JSON(http.StatusOK, response.FromCounts(usecase.TrackedStatuses, counts))
}

// MarkViewing zeroes one counter and keeps absorbing arrivals while the
// department screen stays open.
func (h *NotificacaoHandler) MarkViewing(c *gin.Context) {
	status, ok := entities.ParseStatus(c.Param("status"))
	if !ok {
		c.JSON(errStatusNaoMonitorado.HTTPStatus, errStatusNaoMonitorado.ToHTTPError())
		return
	}
	if err := h.usecase.MarkViewing(status); err != nil {
		c.JSON(errStatusNaoMonitorado.HTTPStatus, errStatusNaoMonitorado.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// StopViewing stops absorbing, so services arriving afterwards count again.
func (h *NotificacaoHandler) StopViewing(c *gin.Context) {
	status, ok := entities.ParseStatus(c.Param("status"))
	if !ok {
		c.JSON(errStatusNaoMonitorado.HTTPStatus, errStatusNaoMonitorado.ToHTTPError())
		return
	}
	if err := h.usecase.StopViewing(status); err != nil {
		c.JSON(errStatusNaoMonitorado.HTTPStatus, errStatusNaoMonitorado.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
