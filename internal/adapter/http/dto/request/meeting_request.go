package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

type MeetingCreateRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     string `json:"duration"`
	Participants string `json:"participants"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

func (r MeetingCreateRequest) ToEntity() entities.Meeting {
	return entities.Meeting{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Time:         r.Time,
		Duration:     r.Duration,
		Participants: r.Participants,
		Location:     r.Location,
		Status:       entities.MeetingStatus(r.Status),
		Notes:        r.Notes,
	}
}

type MeetingUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	Duration     *string `json:"duration"`
	Participants *string `json:"participants"`
	Location     *string `json:"location"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
}

func (r MeetingUpdateRequest) ToPatch() usecase.MeetingPatch {
	var status *entities.MeetingStatus
	if r.Status != nil {
		s := entities.MeetingStatus(*r.Status)
		status = &s
	}
	return usecase.MeetingPatch{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		Time:         r.Time,
		Duration:     r.Duration,
		Participants: r.Participants,
		Location:     r.Location,
		Status:       status,
		Notes:        r.Notes,
	}
}
