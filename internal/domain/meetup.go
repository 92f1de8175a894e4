package domain

import "time"

type MeetupStatus string

const (
	MeetupStatusPending   MeetupStatus = "pending"
	MeetupStatusConfirmed MeetupStatus = "confirmed"
)

type ParticipantStatus string

const (
	ParticipantStatusPending   ParticipantStatus = "pending"
	ParticipantStatusConfirmed ParticipantStatus = "confirmed"
	ParticipantStatusDeclined  ParticipantStatus = "declined"
)

// IsTerminal reports whether the participant has answered the invitation.
func (s ParticipantStatus) IsTerminal() bool {
	return s == ParticipantStatusConfirmed || s == ParticipantStatusDeclined
}

type Meetup struct {
	ID             string        `json:"id"`
	CreatorID      string        `json:"creator_id"`
	SessionID      string        `json:"session_id,omitempty"`
	Preferences    Preferences   `json:"preferences"`
	Options        []Option      `json:"options"`
	SelectedOption Option        `json:"selected_option"`
	Status         MeetupStatus  `json:"status"`
	Participants   []Participant `json:"participants"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type Participant struct {
	ID          string            `json:"id"`
	MeetupID    string            `json:"meetup_id"`
	UserID      string            `json:"user_id"`
	Status      ParticipantStatus `json:"status"`
	ConfirmedAt *time.Time        `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateMeetupInput struct {
	SessionID      string
	Preferences    *Preferences
	Options        []Option
	SelectedOption *Option
	FriendIDs      []string
}

// Response is a participant's answer to an invitation.
type Response string

const (
	ResponseConfirm Response = "confirm"
	ResponseDecline Response = "decline"
)

func (r Response) Valid() bool {
	return r == ResponseConfirm || r == ResponseDecline
}

// Status returns the participant status the response leads to.
func (r Response) Status() ParticipantStatus {
	if r == ResponseConfirm {
		return ParticipantStatusConfirmed
	}
	return ParticipantStatusDeclined
}

type MeetupScope string

const (
	MeetupScopeInvitations MeetupScope = "invitations"
	MeetupScopeCreated     MeetupScope = "created"
	MeetupScopeAll         MeetupScope = "all"
)

func (s MeetupScope) Valid() bool {
	switch s {
	case MeetupScopeInvitations, MeetupScopeCreated, MeetupScopeAll:
		return true
	}
	return false
}
