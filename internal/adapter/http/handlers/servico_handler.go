package handlers

import (
	"errors"
	"log"
	"net/http"

	request "engetrack/internal/adapter/http/dto/request"
	response "engetrack/internal/adapter/http/dto/response"
	"engetrack/internal/adapter/http/middleware"
	"engetrack/internal/domain/entities"
	"engetrack/internal/domain/permissions"
	"engetrack/internal/usecase"
	"engetrack/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServicoPayload = pkg.NewDomainErrorSimple("INVALID_SERVICO_INPUT", "Invalid servico payload", http.StatusBadRequest)
	errServicoForbidden      = pkg.NewDomainErrorSimple("SERVICO_FORBIDDEN", "Identity cannot access this servico", http.StatusForbidden)
)

// ServicoHandler handles HTTP requests for the service lifecycle.
type ServicoHandler struct {
	usecase usecase.IServicoUseCase
}

func NewServicoHandler(uc usecase.IServicoUseCase) *ServicoHandler {
	return &ServicoHandler{usecase: uc}
}

// CreateServico registers a new service; it always starts in engenharia.
func (h *ServicoHandler) CreateServico(c *gin.Context) {
	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	vencimento, err := payload.ResolveDataVencimento()
	if err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.DadosCliente(), vencimento)
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServico(s))
}

func (h *ServicoHandler) GetServico(c *gin.Context) {
	s, appErr := h.authorize(c, c.Param("id"))
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServico(s))
}

// ListServicos lists every service the caller can see, optionally filtered by
// status (?status=...). Tecnica-scoped identities only see their own
// assignments.
func (h *ServicoHandler) ListServicos(c *gin.Context) {
	var (
		servicos []entities.Servico
		err      error
	)
	if raw := c.Query("status"); raw != "" {
		status, ok := entities.ParseStatus(raw)
		if !ok {
			appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		servicos, err = h.usecase.ListByStatus(c.Request.Context(), status)
	} else {
		servicos, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServicos(h.visiveis(c, servicos)))
}

// ListAtrasados lists scheduled services whose visit date is past.
func (h *ServicoHandler) ListAtrasados(c *gin.Context) {
	servicos, err := h.usecase.ListAtrasados(c.Request.Context())
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServicos(h.visiveis(c, servicos)))
}

func (h *ServicoHandler) UpdateServico(c *gin.Context) {
	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateDadosCliente(c.Request.Context(), c.Param("id"), payload.DadosCliente())
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServico(s))
}

// SetAgendamento applies the scheduling command; see usecase.SetSchedule for
// the resulting status rules.
func (h *ServicoHandler) SetAgendamento(c *gin.Context) {
	var payload request.AgendamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	data, err := payload.ResolveData()
	if err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetSchedule(c.Request.Context(), c.Param("id"), data, payload.ResolveTecnicoID())
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServico(s))
}

// AdvanceStage moves the service along the departmental pipeline; illegal
// targets are rejected with 409.
func (h *ServicoHandler) AdvanceStage(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	target, ok := entities.ParseStatus(payload.Status)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, appErr := h.authorize(c, c.Param("id")); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.AdvanceStage(c.Request.Context(), c.Param("id"), target)
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServico(s))
}

// Archive moves a concluded service to arquivado, the one-way terminal stage.
func (h *ServicoHandler) Archive(c *gin.Context) {
	s, err := h.usecase.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServico(s))
}

func (h *ServicoHandler) DeleteServico(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadAnexo stores the multipart file ("arquivo") in the blob store and
// appends {nome, url} to the service's anexos.
func (h *ServicoHandler) UploadAnexo(c *gin.Context) {
	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ANEXO", "Missing arquivo upload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[servico][handler] anexo open failed id=%s err=%v", c.Param("id"), err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	s, err := h.usecase.AddAnexo(c.Request.Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		appErr := mapServicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromServico(s))
}

// authorize loads a service and applies the tecnica-assignment scope.
func (h *ServicoHandler) authorize(c *gin.Context, id string) (entities.Servico, *pkg.AppError) {
	s, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		return entities.Servico{}, mapServicoError(err)
	}
	if !permissions.CanAccessServico(middleware.PermissionsFrom(c), middleware.DisplayNameFrom(c), s) {
		return entities.Servico{}, errServicoForbidden
	}
	return s, nil
}

func (h *ServicoHandler) visiveis(c *gin.Context, servicos []entities.Servico) []entities.Servico {
	set := middleware.PermissionsFrom(c)
	nome := middleware.DisplayNameFrom(c)
	out := make([]entities.Servico, 0, len(servicos))
	for _, s := range servicos {
		if permissions.CanAccessServico(set, nome, s) {
			out = append(out, s)
		}
	}
	return out
}

func mapServicoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServicoID),
		errors.Is(err, usecase.ErrInvalidDadosCliente),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidAgendamento),
		errors.Is(err, usecase.ErrInvalidAnexo):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServicoNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", "Servico not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTecnicoNotFound):
		return pkg.NewDomainErrorSimple("TECNICO_NOT_FOUND", "Tecnico not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
