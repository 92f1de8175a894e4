package dto

import (
	"time"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/negotiation"
)

type SessionResponse struct {
	SessionID      string              `json:"sessionId"`
	State          string              `json:"state"`
	Preferences    *domain.Preferences `json:"preferences"`
	Options        []domain.Option     `json:"options"`
	UserASelection *domain.Option      `json:"userASelection"`
	UserBConfirmed bool                `json:"userBConfirmed"`
	SeenPlaces     []string            `json:"seenPlaces"`
	AttemptCount   int                 `json:"attemptCount"`
	InitiatorID    string              `json:"initiatorId,omitempty"`
	CounterpartyID string              `json:"counterpartyId,omitempty"`
	CreatedAt      string              `json:"createdAt"`
	UpdatedAt      string              `json:"updatedAt"`
}

// SessionEnvelope carries sessionId only in the create response.
type SessionEnvelope struct {
	SessionID string          `json:"sessionId,omitempty"`
	Session   SessionResponse `json:"session"`
}

type ParticipantResponse struct {
	ID          string  `json:"id"`
	MeetupID    string  `json:"meetup_id"`
	UserID      string  `json:"user_id"`
	Status      string  `json:"status"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ParticipantEnvelope struct {
	Participant ParticipantResponse `json:"participant"`
}

type MeetupResponse struct {
	ID             string                `json:"id"`
	CreatorID      string                `json:"creator_id"`
	SessionID      string                `json:"session_id,omitempty"`
	Preferences    domain.Preferences    `json:"preferences"`
	Options        []domain.Option       `json:"options"`
	SelectedOption domain.Option         `json:"selected_option"`
	Status         string                `json:"status"`
	Participants   []ParticipantResponse `json:"participants"`
	CreatedAt      string                `json:"created_at"`
}

type MeetupEnvelope struct {
	Meetup MeetupResponse `json:"meetup"`
}

type MeetupListResponse struct {
	Meetups []MeetupResponse `json:"meetups"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	options := s.Options
	if options == nil {
		options = []domain.Option{}
	}
	seen := s.SeenPlaces
	if seen == nil {
		seen = []string{}
	}

	return SessionResponse{
		SessionID:      s.ID,
		State:          string(negotiation.StateOf(s)),
		Preferences:    s.Preferences,
		Options:        options,
		UserASelection: s.InitiatorSelection,
		UserBConfirmed: s.CounterpartyConfirmed,
		SeenPlaces:     seen,
		AttemptCount:   s.AttemptCount,
		InitiatorID:    s.InitiatorID,
		CounterpartyID: s.CounterpartyID,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	resp := ParticipantResponse{
		ID:        p.ID,
		MeetupID:  p.MeetupID,
		UserID:    p.UserID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.ConfirmedAt != nil {
		at := p.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &at
	}
	return resp
}

func ToMeetupResponse(m *domain.Meetup) MeetupResponse {
	participants := make([]ParticipantResponse, 0, len(m.Participants))
	for i := range m.Participants {
		participants = append(participants, ToParticipantResponse(&m.Participants[i]))
	}
	options := m.Options
	if options == nil {
		options = []domain.Option{}
	}

	return MeetupResponse{
		ID:             m.ID,
		CreatorID:      m.CreatorID,
		SessionID:      m.SessionID,
		Preferences:    m.Preferences,
		Options:        options,
		SelectedOption: m.SelectedOption,
		Status:         string(m.Status),
		Participants:   participants,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
