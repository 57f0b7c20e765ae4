package handlers

import (
	"errors"
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

var errInvalidFichaPayload = pkg.NewDomainErrorSimple("INVALID_FICHA_INPUT", "Invalid ficha payload", http.StatusBadRequest)

// FichaHandler handles the per-service ficha ledgers (visita, pgr, ltcat).
type FichaHandler struct {
	usecase        usecase.IFichaUseCase
	servicoUseCase usecase.IServicoUseCase
}

func NewFichaHandler(uc usecase.IFichaUseCase, servicoUC usecase.IServicoUseCase) *FichaHandler {
	return &FichaHandler{usecase: uc, servicoUseCase: servicoUC}
}

// AppendFicha appends a new entry to the ledger named by the :tipo param.
func (h *FichaHandler) AppendFicha(c *gin.Context) {
	tipo, ok := entities.ParseFichaTipo(c.Param("tipo"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_FICHA_TIPO", "Unknown ficha tipo", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.FichaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFichaPayload.HTTPStatus, errInvalidFichaPayload.ToHTTPError())
		return
	}

	if appErr := h.authorize(c, c.Param("id")); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := h.usecase.Append(c.Request.Context(), c.Param("id"), tipo, payload.ToFicha())
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFicha(f))
}

// UpdateFicha rewrites the data of one existing entry, keyed by :fichaId. The
// fill date and authorship stamp of the entry are preserved.
func (h *FichaHandler) UpdateFicha(c *gin.Context) {
	tipo, ok := entities.ParseFichaTipo(c.Param("tipo"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_FICHA_TIPO", "Unknown ficha tipo", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.FichaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFichaPayload.HTTPStatus, errInvalidFichaPayload.ToHTTPError())
		return
	}

	if appErr := h.authorize(c, c.Param("id")); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ficha := payload.ToFicha()
	ficha.ID = c.Param("fichaId")

	f, err := h.usecase.Update(c.Request.Context(), c.Param("id"), tipo, ficha)
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFicha(f))
}

// ListFichas returns one ledger ordered newest first.
func (h *FichaHandler) ListFichas(c *gin.Context) {
	tipo, ok := entities.ParseFichaTipo(c.Param("tipo"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_FICHA_TIPO", "Unknown ficha tipo", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if appErr := h.authorize(c, c.Param("id")); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fichas, err := h.usecase.List(c.Request.Context(), c.Param("id"), tipo)
	if err != nil {
		appErr := mapFichaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFichas(fichas))
}

func (h *FichaHandler) authorize(c *gin.Context, id string) *pkg.AppError {
	s, err := h.servicoUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		return mapServicoError(err)
	}
	if !permissions.CanAccessServico(middleware.PermissionsFrom(c), middleware.DisplayNameFrom(c), s) {
		return errServicoForbidden
	}
	return nil
}

func mapFichaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServicoID),
		errors.Is(err, usecase.ErrInvalidFichaTipo),
		errors.Is(err, usecase.ErrInvalidFicha):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServicoNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", "Servico not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFichaNotFound):
		return pkg.NewDomainErrorSimple("FICHA_NOT_FOUND", "Ficha not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
