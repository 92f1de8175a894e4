package ports

import (
	"context"
	"time"

	"github.com/rachmurali02/social-app/internal/domain"
)

type MeetupRepo interface {
	// Create stores the meetup together with its participants atomically.
	Create(ctx context.Context, m *domain.Meetup) error
	GetByID(ctx context.Context, id string) (*domain.Meetup, error)
	GetParticipant(ctx context.Context, id string) (*domain.Participant, error)
	// RespondParticipant moves a pending participant owned by userID to
	// status. A participant that is no longer pending yields ErrAlreadyResponded.
	RespondParticipant(ctx context.Context, participantID, userID string, status domain.ParticipantStatus, at time.Time) (*domain.Participant, error)
	ListParticipants(ctx context.Context, meetupID string) ([]domain.Participant, error)
	// MarkConfirmed flips a pending meetup to confirmed and reports whether
	// this call did it.
	MarkConfirmed(ctx context.Context, meetupID string) (bool, error)
	ListForUser(ctx context.Context, userID string, scope domain.MeetupScope) ([]*domain.Meetup, error)
}
