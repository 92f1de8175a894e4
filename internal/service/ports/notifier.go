package ports

import (
	"context"

	"github.com/rachmurali02/social-app/internal/domain"
)

type MeetupNotifier interface {
	NotifyInvited(ctx context.Context, user *domain.User, meetup *domain.Meetup)
	NotifyMeetupConfirmed(ctx context.Context, user *domain.User, meetup *domain.Meetup)
	NotifyAllDeclined(ctx context.Context, user *domain.User, meetup *domain.Meetup)
}
