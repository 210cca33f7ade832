package response

import (
	"time"

	"orcamentos_api/internal/domain/entities"
)

type MeetingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Duration     string    `json:"duration"`
	Participants string    `json:"participants"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromMeeting(m entities.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Date,
		Time:         m.Time,
		Duration:     m.Duration,
		Participants: m.Participants,
		Location:     m.Location,
		Status:       string(m.Status),
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}

func FromMeetings(meetings []entities.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, FromMeeting(m))
	}
	return out
}
