package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rachmurali02/social-app/internal/aggregator"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type MeetupService struct {
	repo     ports.MeetupRepo
	sessions ports.SessionStore
	userRepo ports.UserRepo
	notifier ports.MeetupNotifier
	logger   logger.Logger
}

func NewMeetupService(
	repo ports.MeetupRepo,
	sessions ports.SessionStore,
	userRepo ports.UserRepo,
	notifier ports.MeetupNotifier,
	logger logger.Logger,
) *MeetupService {
	return &MeetupService{
		repo:     repo,
		sessions: sessions,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// Create materialises a meetup and one pending participant per invited
// friend. With a session id, the session's preferences, options and
// selection are used for whatever the input leaves empty.
func (s *MeetupService) Create(ctx context.Context, callerID string, input domain.CreateMeetupInput) (*domain.Meetup, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}

	if input.SessionID != "" {
		if err := s.fillFromSession(ctx, callerID, &input); err != nil {
			return nil, err
		}
	}

	if input.Preferences == nil {
		return nil, fmt.Errorf("%w: preferences is required", domain.ErrMissingParameter)
	}
	if input.SelectedOption == nil || input.SelectedOption.Name == "" {
		return nil, fmt.Errorf("%w: selectedOption is required", domain.ErrMissingParameter)
	}
	if len(input.FriendIDs) == 0 {
		return nil, fmt.Errorf("%w: friendIds is required", domain.ErrMissingParameter)
	}

	selected := *input.SelectedOption
	if len(input.Options) > 0 {
		probe := domain.Session{Options: input.Options}
		opt, ok := probe.HasOption(selected.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSelection, selected.Name)
		}
		selected = opt
	}

	friends := uniqueInvitees(callerID, input.FriendIDs)
	if len(friends) == 0 {
		return nil, fmt.Errorf("%w: nobody to invite besides the creator", domain.ErrValidation)
	}

	now := time.Now().UTC()
	meetup := &domain.Meetup{
		ID:             uuid.New().String(),
		CreatorID:      callerID,
		SessionID:      input.SessionID,
		Preferences:    *input.Preferences,
		Options:        domain.CloneOptions(input.Options),
		SelectedOption: selected,
		Status:         domain.MeetupStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, friendID := range friends {
		meetup.Participants = append(meetup.Participants, domain.Participant{
			ID:        uuid.New().String(),
			MeetupID:  meetup.ID,
			UserID:    friendID,
			Status:    domain.ParticipantStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if err := s.repo.Create(ctx, meetup); err != nil {
		return nil, fmt.Errorf("create meetup: %w", err)
	}

	s.logger.Info("meetup created",
		logger.String("meetup_id", meetup.ID),
		logger.String("creator_id", callerID),
		logger.Int("participants", len(meetup.Participants)),
	)

	go s.notifyInvited(context.WithoutCancel(ctx), meetup)

	return meetup, nil
}

// Respond records a participant's confirm or decline and re-evaluates the
// meetup. Repeating the same answer is a no-op; switching answers is refused.
func (s *MeetupService) Respond(ctx context.Context, callerID, participantID string, response domain.Response) (*domain.Participant, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if participantID == "" {
		return nil, fmt.Errorf("%w: participantId is required", domain.ErrMissingParameter)
	}
	if _, err := uuid.Parse(participantID); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrParticipantNotFound, participantID)
	}
	if !response.Valid() {
		return nil, fmt.Errorf("%w: unknown response %q", domain.ErrValidation, response)
	}

	participant, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}
	if participant.UserID != callerID {
		return nil, fmt.Errorf("%w: participant belongs to another user", domain.ErrForbidden)
	}

	target := response.Status()
	if done, err := settled(participant, target); err != nil {
		return nil, err
	} else if done {
		return participant, nil
	}

	updated, err := s.repo.RespondParticipant(ctx, participantID, callerID, target, time.Now().UTC())
	if errors.Is(err, domain.ErrAlreadyResponded) {
		// lost a race with a concurrent answer from the same user
		latest, getErr := s.repo.GetParticipant(ctx, participantID)
		if getErr != nil {
			return nil, fmt.Errorf("get participant: %w", getErr)
		}
		if done, err := settled(latest, target); err != nil {
			return nil, err
		} else if done {
			return latest, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("respond: %w", err)
	}

	s.logger.Info("participant responded",
		logger.String("participant_id", participantID),
		logger.String("meetup_id", updated.MeetupID),
		logger.String("status", string(updated.Status)),
	)

	s.reconcile(ctx, updated.MeetupID)

	return updated, nil
}

// List returns the caller's meetups. Pending meetups are re-evaluated on the
// way out, which retries any confirmation a failed earlier pass skipped.
func (s *MeetupService) List(ctx context.Context, callerID string, scope domain.MeetupScope) ([]*domain.Meetup, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if scope == "" {
		scope = domain.MeetupScopeAll
	}
	if !scope.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrValidation, scope)
	}

	meetups, err := s.repo.ListForUser(ctx, callerID, scope)
	if err != nil {
		return nil, fmt.Errorf("list meetups: %w", err)
	}

	for _, m := range meetups {
		if m.Status == domain.MeetupStatusPending {
			s.apply(ctx, m, false)
		}
	}

	return meetups, nil
}

// reconcile reads every participant fresh and applies the aggregation rule.
// A failed read skips the update; the next response or query retries it.
func (s *MeetupService) reconcile(ctx context.Context, meetupID string) {
	meetup, err := s.repo.GetByID(ctx, meetupID)
	if err != nil {
		s.logger.Error("failed to load meetup for aggregation",
			logger.String("meetup_id", meetupID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.apply(ctx, meetup, true)
}

func (s *MeetupService) apply(ctx context.Context, meetup *domain.Meetup, notifyDeclined bool) {
	decision := aggregator.Evaluate(meetup.Status, meetup.Participants)

	switch decision.Outcome {
	case aggregator.OutcomeConfirm:
		changed, err := s.repo.MarkConfirmed(ctx, meetup.ID)
		if err != nil {
			s.logger.Error("failed to confirm meetup",
				logger.String("meetup_id", meetup.ID),
				logger.String("error", err.Error()),
			)
			return
		}

		meetup.Status = domain.MeetupStatusConfirmed
		if changed {
			s.logger.Info("meetup confirmed",
				logger.String("meetup_id", meetup.ID),
				logger.Int("confirmed", decision.Tally.Confirmed),
				logger.Int("declined", decision.Tally.Declined),
			)
			go s.notifyConfirmed(context.WithoutCancel(ctx), meetup)
		}

	case aggregator.OutcomeAllDeclined:
		if notifyDeclined {
			s.logger.Info("every participant declined",
				logger.String("meetup_id", meetup.ID),
			)
			go s.notifyCreator(context.WithoutCancel(ctx), meetup, s.notifier.NotifyAllDeclined)
		}
	}
}

func (s *MeetupService) fillFromSession(ctx context.Context, callerID string, input *domain.CreateMeetupInput) error {
	session, err := s.sessions.Get(ctx, input.SessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if session.InitiatorID != callerID {
		return fmt.Errorf("%w: only the session initiator can invite from it", domain.ErrForbidden)
	}
	if session.InitiatorSelection == nil {
		return fmt.Errorf("%w: session has no selection yet", domain.ErrInvalidTransition)
	}

	if input.Preferences == nil {
		input.Preferences = session.Preferences
	}
	if len(input.Options) == 0 {
		input.Options = session.Options
	}
	if input.SelectedOption == nil {
		input.SelectedOption = session.InitiatorSelection
	}
	return nil
}

// settled reports whether participant already holds target (a no-op) or an
// answer that cannot be changed.
func settled(p *domain.Participant, target domain.ParticipantStatus) (bool, error) {
	if p.Status == target {
		return true, nil
	}
	if p.Status.IsTerminal() {
		return true, fmt.Errorf("%w: already %s", domain.ErrAlreadyResponded, p.Status)
	}
	return false, nil
}

func uniqueInvitees(creatorID string, ids []string) []string {
	seen := map[string]bool{creatorID: true}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (s *MeetupService) notifyInvited(ctx context.Context, meetup *domain.Meetup) {
	for _, p := range meetup.Participants {
		user, ok := s.lookupUser(ctx, p.UserID)
		if !ok {
			continue
		}
		s.notifier.NotifyInvited(ctx, user, meetup)
	}
}

func (s *MeetupService) notifyConfirmed(ctx context.Context, meetup *domain.Meetup) {
	s.notifyCreator(ctx, meetup, s.notifier.NotifyMeetupConfirmed)

	for _, p := range meetup.Participants {
		if p.Status != domain.ParticipantStatusConfirmed {
			continue
		}
		user, ok := s.lookupUser(ctx, p.UserID)
		if !ok {
			continue
		}
		s.notifier.NotifyMeetupConfirmed(ctx, user, meetup)
	}
}

func (s *MeetupService) notifyCreator(ctx context.Context, meetup *domain.Meetup, send func(context.Context, *domain.User, *domain.Meetup)) {
	user, ok := s.lookupUser(ctx, meetup.CreatorID)
	if !ok {
		return
	}
	send(ctx, user, meetup)
}

// lookupUser resolves a notification target; users without a profile are
// skipped silently.
func (s *MeetupService) lookupUser(ctx context.Context, userID string) (*domain.User, bool) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error("failed to get user for notification",
				logger.String("user_id", userID),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return user, true
}
