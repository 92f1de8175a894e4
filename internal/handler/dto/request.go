package dto

import (
	"fmt"

	"github.com/rachmurali02/social-app/internal/domain"
)

// SessionFields are the mergeable session fields as named on the wire.
type SessionFields struct {
	Preferences    *domain.Preferences `json:"preferences"`
	Options        *[]domain.Option    `json:"options"`
	UserASelection *domain.Option      `json:"userASelection"`
	UserBConfirmed *bool               `json:"userBConfirmed"`
}

func (f SessionFields) Patch() domain.SessionPatch {
	return domain.SessionPatch{
		Preferences:           f.Preferences,
		Options:               f.Options,
		Selection:             f.UserASelection,
		CounterpartyConfirmed: f.UserBConfirmed,
	}
}

// SessionActionRequest is the action-dispatched session body.
type SessionActionRequest struct {
	Action    string `json:"action"`
	SessionID string `json:"sessionId"`
	SessionFields
}

// SessionCommand is one of CreateSession, UpdateSession, GetSession.
type SessionCommand interface {
	sessionCommand()
}

type CreateSession struct {
	Preferences *domain.Preferences
}

type UpdateSession struct {
	SessionID string
	Patch     domain.SessionPatch
}

type GetSession struct {
	SessionID string
}

func (CreateSession) sessionCommand() {}
func (UpdateSession) sessionCommand() {}
func (GetSession) sessionCommand()    {}

// Command validates the body and narrows it to the variant named by action.
func (r SessionActionRequest) Command() (SessionCommand, error) {
	switch r.Action {
	case "create":
		return CreateSession{Preferences: r.Preferences}, nil
	case "update":
		if r.SessionID == "" {
			return nil, fmt.Errorf("%w: sessionId is required", domain.ErrMissingParameter)
		}
		return UpdateSession{SessionID: r.SessionID, Patch: r.Patch()}, nil
	case "get":
		if r.SessionID == "" {
			return nil, fmt.Errorf("%w: sessionId is required", domain.ErrMissingParameter)
		}
		return GetSession{SessionID: r.SessionID}, nil
	case "":
		return nil, fmt.Errorf("%w: action is required", domain.ErrMissingParameter)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, r.Action)
	}
}

type CreateSessionRequest struct {
	Preferences *domain.Preferences `json:"preferences"`
}

type SelectOptionRequest struct {
	Name string `json:"name"`
}

// MeetupActionRequest is the action-dispatched invitation body.
type MeetupActionRequest struct {
	Action         string              `json:"action"`
	MeetupID       string              `json:"meetupId"`
	ParticipantID  string              `json:"participantId"`
	SessionID      string              `json:"sessionId"`
	Preferences    *domain.Preferences `json:"preferences"`
	Options        []domain.Option     `json:"options"`
	SelectedOption *domain.Option      `json:"selectedOption"`
	FriendIDs      []string            `json:"friendIds"`
}

// MeetupCommand is one of CreateMeetup or RespondToInvite.
type MeetupCommand interface {
	meetupCommand()
}

type CreateMeetup struct {
	Input domain.CreateMeetupInput
}

type RespondToInvite struct {
	ParticipantID string
	Response      domain.Response
}

func (CreateMeetup) meetupCommand()    {}
func (RespondToInvite) meetupCommand() {}

func (r MeetupActionRequest) Command() (MeetupCommand, error) {
	switch r.Action {
	case "create":
		if r.SessionID == "" {
			if r.Preferences == nil {
				return nil, fmt.Errorf("%w: preferences is required", domain.ErrMissingParameter)
			}
			if r.SelectedOption == nil {
				return nil, fmt.Errorf("%w: selectedOption is required", domain.ErrMissingParameter)
			}
		}
		if len(r.FriendIDs) == 0 {
			return nil, fmt.Errorf("%w: friendIds is required", domain.ErrMissingParameter)
		}
		return CreateMeetup{Input: domain.CreateMeetupInput{
			SessionID:      r.SessionID,
			Preferences:    r.Preferences,
			Options:        r.Options,
			SelectedOption: r.SelectedOption,
			FriendIDs:      r.FriendIDs,
		}}, nil
	case string(domain.ResponseConfirm), string(domain.ResponseDecline):
		if r.ParticipantID == "" {
			return nil, fmt.Errorf("%w: participantId is required", domain.ErrMissingParameter)
		}
		return RespondToInvite{ParticipantID: r.ParticipantID, Response: domain.Response(r.Action)}, nil
	case "":
		return nil, fmt.Errorf("%w: action is required", domain.ErrMissingParameter)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, r.Action)
	}
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
