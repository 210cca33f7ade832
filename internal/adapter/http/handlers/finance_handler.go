package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_api/internal/adapter/http/dto/request"
	response "orcamentos_api/internal/adapter/http/dto/response"
	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

var errInvalidFinancePayload = pkg.NewDomainErrorSimple("INVALID_FINANCE_INPUT", "Invalid finance payload", http.StatusBadRequest)

// FinanceHandler handles HTTP requests for cash-flow entries.
type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) ListFinances(c *gin.Context) {
	finances, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinances(finances))
}

func (h *FinanceHandler) GetFinance(c *gin.Context) {
	finance, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinance(finance))
}

func (h *FinanceHandler) CreateFinance(c *gin.Context) {
	var payload request.FinanceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	finance, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinance(finance))
}

func (h *FinanceHandler) UpdateFinance(c *gin.Context) {
	var payload request.FinanceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancePayload.HTTPStatus, errInvalidFinancePayload.ToHTTPError())
		return
	}

	finance, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinance(finance))
}

func (h *FinanceHandler) DeleteFinance(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
