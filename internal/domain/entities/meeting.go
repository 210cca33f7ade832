package entities

import "time"

type MeetingStatus string

const (
	MeetingStatusAgendada  MeetingStatus = "agendada"
	MeetingStatusConcluida MeetingStatus = "concluida"
	MeetingStatusCancelada MeetingStatus = "cancelada"
)

const DefaultMeetingDuration = "60 min"

// Meeting is a scheduled appointment. Date and Time are kept as the plain
// strings the UI sends (calendar date + clock time); Duration and Participants
// are free text.
type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Duration     string        `json:"duration"`
	Participants string        `json:"participants"`
	Location     string        `json:"location"`
	Status       MeetingStatus `json:"status"`
	Notes        string        `json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
}
