package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_api/internal/adapter/http/dto/request"
	response "orcamentos_api/internal/adapter/http/dto/response"
	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

var errInvalidMeetingPayload = pkg.NewDomainErrorSimple("INVALID_MEETING_INPUT", "Invalid meeting payload", http.StatusBadRequest)

// MeetingHandler handles HTTP requests for scheduled meetings.
type MeetingHandler struct {
	usecase usecase.IMeetingUseCase
}

func NewMeetingHandler(uc usecase.IMeetingUseCase) *MeetingHandler {
	return &MeetingHandler{usecase: uc}
}

func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	meetings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMeetings(meetings))
}

func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMeeting(meeting))
}

func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var payload request.MeetingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeetingPayload.HTTPStatus, errInvalidMeetingPayload.ToHTTPError())
		return
	}

	meeting, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMeeting(meeting))
}

func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	var payload request.MeetingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeetingPayload.HTTPStatus, errInvalidMeetingPayload.ToHTTPError())
		return
	}

	meeting, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMeeting(meeting))
}

func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
