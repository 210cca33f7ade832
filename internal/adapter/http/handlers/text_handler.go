package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_api/internal/adapter/http/dto/request"
	response "orcamentos_api/internal/adapter/http/dto/response"
	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

var errInvalidTextPayload = pkg.NewDomainErrorSimple("INVALID_TEXT_INPUT", "Invalid text payload", http.StatusBadRequest)

// TextHandler handles HTTP requests for reusable text snippets.
type TextHandler struct {
	usecase usecase.ITextUseCase
}

func NewTextHandler(uc usecase.ITextUseCase) *TextHandler {
	return &TextHandler{usecase: uc}
}

func (h *TextHandler) ListTexts(c *gin.Context) {
	texts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTexts(texts))
}

func (h *TextHandler) GetText(c *gin.Context) {
	text, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromText(text))
}

func (h *TextHandler) CreateText(c *gin.Context) {
	var payload request.TextCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTextPayload.HTTPStatus, errInvalidTextPayload.ToHTTPError())
		return
	}

	text, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromText(text))
}

func (h *TextHandler) UpdateText(c *gin.Context) {
	var payload request.TextUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTextPayload.HTTPStatus, errInvalidTextPayload.ToHTTPError())
		return
	}

	text, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromText(text))
}

func (h *TextHandler) DeleteText(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
