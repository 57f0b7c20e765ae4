package handlers

import (
	"errors"
	"net/http"

	request "engetrack/internal/adapter/http/dto/request"
	response "engetrack/internal/adapter/http/dto/response"
	"engetrack/internal/usecase"
	"engetrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTecnicoPayload = pkg.NewDomainErrorSimple("INVALID_TECNICO_INPUT", "Invalid tecnico payload", http.StatusBadRequest)

// TecnicoHandler handles the field technician roster.
type TecnicoHandler struct {
	usecase usecase.ITecnicoUseCase
}

func NewTecnicoHandler(uc usecase.ITecnicoUseCase) *TecnicoHandler {
	return &TecnicoHandler{usecase: uc}
}

func (h *TecnicoHandler) CreateTecnico(c *gin.Context) {
	var payload request.TecnicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTecnicoPayload.HTTPStatus, errInvalidTecnicoPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Create(c.Request.Context(), payload.Nome, payload.Email, payload.Telefone)
	if err != nil {
		appErr := mapTecnicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTecnico(t))
}

func (h *TecnicoHandler) GetTecnico(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTecnicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTecnico(t))
}

func (h *TecnicoHandler) ListTecnicos(c *gin.Context) {
	tecnicos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTecnicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTecnicos(tecnicos))
}

func (h *TecnicoHandler) UpdateTecnico(c *gin.Context) {
	var payload request.TecnicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTecnicoPayload.HTTPStatus, errInvalidTecnicoPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Nome, payload.Email, payload.Telefone)
	if err != nil {
		appErr := mapTecnicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTecnico(t))
}

func (h *TecnicoHandler) DeleteTecnico(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTecnicoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapTecnicoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTecnicoID), errors.Is(err, usecase.ErrInvalidTecnico):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTecnicoNotFound):
		return pkg.NewDomainErrorSimple("TECNICO_NOT_FOUND", "Tecnico not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
