package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/negotiation"
	"github.com/rachmurali02/social-app/internal/recommendation"
	"github.com/rachmurali02/social-app/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SessionService struct {
	store       ports.SessionStore
	recommender ports.Recommender
	logger      logger.Logger
}

func NewSessionService(
	store ports.SessionStore,
	recommender ports.Recommender,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		store:       store,
		recommender: recommender,
		logger:      logger,
	}
}

func (s *SessionService) Create(ctx context.Context, callerID string, prefs *domain.Preferences) (*domain.Session, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}

	session := &domain.Session{InitiatorID: callerID, Preferences: prefs}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created",
		logger.String("session_id", session.ID),
		logger.String("initiator_id", callerID),
	)

	return session, nil
}

func (s *SessionService) Get(ctx context.Context, callerID, id string) (*domain.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: sessionId is required", domain.ErrMissingParameter)
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err = negotiation.CanRead(session, callerID); err != nil {
		return nil, err
	}

	return session, nil
}

// Update merges the given fields into the session. Each party may only set
// the fields it owns, and the merge follows the state machine's invalidation
// rules. An unknown id creates the session from the fields, owned by the
// caller.
func (s *SessionService) Update(ctx context.Context, callerID, id string, patch domain.SessionPatch) (*domain.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: sessionId is required", domain.ErrMissingParameter)
	}
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	role, claim := negotiation.RoleInitiator, domain.SessionPatch{InitiatorID: &callerID}
	if current != nil {
		if role, claim, err = negotiation.Bind(current, callerID); err != nil {
			return nil, err
		}
	}

	if err = negotiation.Authorize(role, patch); err != nil {
		return nil, err
	}

	patch, err = negotiation.CheckMerge(current, patch)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Upsert(ctx, id, negotiation.Merge(claim, patch))
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if current == nil {
		s.logger.Warn("session recreated from update",
			logger.String("session_id", id),
			logger.String("caller_id", callerID),
		)
	}

	return session, nil
}

// SubmitPreferences stores the initiator's preferences and immediately
// fetches a batch of options. An empty id starts a new session.
func (s *SessionService) SubmitPreferences(ctx context.Context, callerID, id string, prefs domain.Preferences) (*domain.Session, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(prefs.Location) == "" {
		return nil, fmt.Errorf("%w: preferences.location is required", domain.ErrMissingParameter)
	}
	if strings.TrimSpace(prefs.Activity) == "" {
		return nil, fmt.Errorf("%w: preferences.activity is required", domain.ErrMissingParameter)
	}

	var current *domain.Session
	if id == "" {
		created, err := s.Create(ctx, callerID, nil)
		if err != nil {
			return nil, err
		}
		current, id = created, created.ID
	} else {
		var err error
		if current, err = s.lookup(ctx, id); err != nil {
			return nil, err
		}
	}

	claim := domain.SessionPatch{InitiatorID: &callerID}
	if current != nil {
		var err error
		if claim, err = negotiation.Require(current, callerID, negotiation.RoleInitiator); err != nil {
			return nil, err
		}
	}

	session, err := s.store.Upsert(ctx, id, negotiation.Merge(claim, negotiation.SubmitPreferences(current, prefs)))
	if err != nil {
		return nil, fmt.Errorf("store preferences: %w", err)
	}

	opts := s.recommend(ctx, session.ID, domain.RecommendationQuery{Preferences: prefs, Exclude: session.SeenPlaces})
	patch, err := negotiation.ReceiveOptions(session, opts)
	if err != nil {
		return nil, err
	}

	if session, err = s.store.Upsert(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("store options: %w", err)
	}

	s.logger.Info("options ready",
		logger.String("session_id", id),
		logger.Int("count", len(session.Options)),
	)

	return session, nil
}

// DeclineOptions replaces the current batch with a fresh one that excludes
// every venue seen so far.
func (s *SessionService) DeclineOptions(ctx context.Context, callerID, id string) (*domain.Session, error) {
	current, claim, err := s.begin(ctx, callerID, id, negotiation.RoleInitiator)
	if err != nil {
		return nil, err
	}

	plan, err := negotiation.PlanDecline(current)
	if err != nil {
		return nil, err
	}

	opts := s.recommend(ctx, id, domain.RecommendationQuery{Preferences: *current.Preferences, Exclude: plan.Exclude})

	session, err := s.store.Upsert(ctx, id, negotiation.Merge(claim, plan.Apply(opts)))
	if err != nil {
		return nil, fmt.Errorf("store options: %w", err)
	}

	s.logger.Info("options declined",
		logger.String("session_id", id),
		logger.Int("attempt", session.AttemptCount),
		logger.Int("excluded", len(plan.Exclude)),
	)

	return session, nil
}

func (s *SessionService) Select(ctx context.Context, callerID, id, optionName string) (*domain.Session, error) {
	current, claim, err := s.begin(ctx, callerID, id, negotiation.RoleInitiator)
	if err != nil {
		return nil, err
	}

	patch, err := negotiation.Select(current, optionName)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Upsert(ctx, id, negotiation.Merge(claim, patch))
	if err != nil {
		return nil, fmt.Errorf("store selection: %w", err)
	}

	s.logger.Info("option selected",
		logger.String("session_id", id),
		logger.String("option", optionName),
	)

	return session, nil
}

// Confirm is the counterparty's accept. It is idempotent once resolved.
func (s *SessionService) Confirm(ctx context.Context, callerID, id string) (*domain.Session, error) {
	current, claim, err := s.begin(ctx, callerID, id, negotiation.RoleCounterparty)
	if err != nil {
		return nil, err
	}

	patch, changed, err := negotiation.Confirm(current)
	if err != nil {
		return nil, err
	}
	if !changed && claim.IsEmpty() {
		return current, nil
	}

	session, err := s.store.Upsert(ctx, id, negotiation.Merge(claim, patch))
	if err != nil {
		return nil, fmt.Errorf("store confirmation: %w", err)
	}

	if changed {
		s.logger.Info("session resolved",
			logger.String("session_id", id),
			logger.String("counterparty_id", callerID),
		)
	}

	return session, nil
}

func (s *SessionService) SweepExpired(ctx context.Context) (int, error) {
	removed, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	if removed > 0 {
		s.logger.Info("expired sessions evicted", logger.Int("count", removed))
	}

	return removed, nil
}

// begin loads an existing session and checks the caller holds role.
func (s *SessionService) begin(ctx context.Context, callerID, id string, role negotiation.Role) (*domain.Session, domain.SessionPatch, error) {
	if callerID == "" {
		return nil, domain.SessionPatch{}, domain.ErrUnauthorized
	}
	if id == "" {
		return nil, domain.SessionPatch{}, fmt.Errorf("%w: sessionId is required", domain.ErrMissingParameter)
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, domain.SessionPatch{}, fmt.Errorf("get session: %w", err)
	}

	claim, err := negotiation.Require(current, callerID, role)
	if err != nil {
		return nil, domain.SessionPatch{}, err
	}

	return current, claim, nil
}

// lookup returns nil without error when the session does not exist.
func (s *SessionService) lookup(ctx context.Context, id string) (*domain.Session, error) {
	current, err := s.store.Get(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return current, nil
}

// recommend never fails: upstream errors and empty batches are replaced by
// the fallback pair.
func (s *SessionService) recommend(ctx context.Context, sessionID string, q domain.RecommendationQuery) []domain.Option {
	opts, err := s.recommender.Recommend(ctx, q)
	if err != nil {
		s.logger.Warn("recommendation failed, using fallback options",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
		return recommendation.Fallback()
	}

	excluded := make(map[string]bool, len(q.Exclude))
	for _, name := range q.Exclude {
		excluded[name] = true
	}

	fresh := make([]domain.Option, 0, len(opts))
	for _, o := range opts {
		if !excluded[o.Name] {
			fresh = append(fresh, o)
		}
	}

	if len(fresh) == 0 {
		s.logger.Warn("recommendation returned only excluded venues, using fallback options",
			logger.String("session_id", sessionID),
		)
		return recommendation.Fallback()
	}

	return fresh
}
