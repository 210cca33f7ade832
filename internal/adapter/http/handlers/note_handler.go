package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "orcamentos_api/internal/adapter/http/dto/request"
	response "orcamentos_api/internal/adapter/http/dto/response"
	"orcamentos_api/internal/usecase"
	"orcamentos_api/pkg"
)

var errInvalidNotePayload = pkg.NewDomainErrorSimple("INVALID_NOTE_INPUT", "Invalid note payload", http.StatusBadRequest)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	usecase usecase.INoteUseCase
}

func NewNoteHandler(uc usecase.INoteUseCase) *NoteHandler {
	return &NoteHandler{usecase: uc}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotes(notes))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	note, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNote(note))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var payload request.NoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	note, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromNote(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var payload request.NoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	note, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNote(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
