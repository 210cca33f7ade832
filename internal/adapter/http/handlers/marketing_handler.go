package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_api/internal/adapter/http/dto/request"
	response "orcamentos_api/internal/adapter/http/dto/response"
	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

var errInvalidMarketingPayload = pkg.NewDomainErrorSimple("INVALID_MARKETING_INPUT", "Invalid campaign payload", http.StatusBadRequest)

// MarketingHandler handles HTTP requests for marketing campaigns.
type MarketingHandler struct {
	usecase usecase.IMarketingUseCase
}

func NewMarketingHandler(uc usecase.IMarketingUseCase) *MarketingHandler {
	return &MarketingHandler{usecase: uc}
}

func (h *MarketingHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketingList(campaigns))
}

func (h *MarketingHandler) GetCampaign(c *gin.Context) {
	campaign, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketing(campaign))
}

func (h *MarketingHandler) CreateCampaign(c *gin.Context) {
	var payload request.MarketingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMarketingPayload.HTTPStatus, errInvalidMarketingPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMarketing(campaign))
}

func (h *MarketingHandler) UpdateCampaign(c *gin.Context) {
	var payload request.MarketingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMarketingPayload.HTTPStatus, errInvalidMarketingPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketing(campaign))
}

func (h *MarketingHandler) DeleteCampaign(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
