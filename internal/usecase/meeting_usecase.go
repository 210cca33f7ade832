package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMeetingNotFound      = fmt.Errorf("meeting %w", ErrNotFound)
	ErrMeetingTitleRequired = fmt.Errorf("%w: meeting title is required", ErrValidation)
)

// IMeetingUseCase exposes meeting CRUD operations.

type IMeetingUseCase interface {
	List(ctx context.Context) ([]entities.Meeting, error)
	GetByID(ctx context.Context, id string) (entities.Meeting, error)
	Create(ctx context.Context, m entities.Meeting) (entities.Meeting, error)
	Update(ctx context.Context, id string, patch MeetingPatch) (entities.Meeting, error)
	Delete(ctx context.Context, id string) error
}

type MeetingPatch struct {
	Title        *string
	Description  *string
	Date         *string
	Time         *string
	Duration     *string
	Participants *string
	Location     *string
	Status       *entities.MeetingStatus
	Notes        *string
}

type MeetingUseCase struct {
	repo interfaces.IMeetingRepository
}

var _ IMeetingUseCase = (*MeetingUseCase)(nil)

func NewMeetingUseCase(repo interfaces.IMeetingRepository) *MeetingUseCase {
	return &MeetingUseCase{repo: repo}
}

func (u *MeetingUseCase) List(ctx context.Context) ([]entities.Meeting, error) {
	meetings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].Date > meetings[j].Date
	})
	return meetings, nil
}

func (u *MeetingUseCase) GetByID(ctx context.Context, id string) (entities.Meeting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Meeting{}, ErrMeetingNotFound
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Meeting{}, err
	}
	if m.ID == "" {
		return entities.Meeting{}, ErrMeetingNotFound
	}
	return m, nil
}

func (u *MeetingUseCase) Create(ctx context.Context, m entities.Meeting) (entities.Meeting, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return entities.Meeting{}, ErrMeetingTitleRequired
	}

	if m.Duration == "" {
		m.Duration = entities.DefaultMeetingDuration
	}
	if m.Status == "" {
		m.Status = entities.MeetingStatusAgendada
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, m)
}

func (u *MeetingUseCase) Update(ctx context.Context, id string, patch MeetingPatch) (entities.Meeting, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Meeting{}, err
	}

	if patch.Title != nil {
		m.Title = *patch.Title
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.Time != nil {
		m.Time = *patch.Time
	}
	if patch.Duration != nil {
		m.Duration = *patch.Duration
	}
	if patch.Participants != nil {
		m.Participants = *patch.Participants
	}
	if patch.Location != nil {
		m.Location = *patch.Location
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Meeting{}, err
	}
	if updated.ID == "" {
		return entities.Meeting{}, ErrMeetingNotFound
	}
	return updated, nil
}

func (u *MeetingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMeetingNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMeetingNotFound
	}
	return nil
}
