package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/recommendation"
	"github.com/rachmurali02/social-app/internal/service/ports/mocks"
	"github.com/rachmurali02/social-app/internal/sessionstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func marinaPrefs() domain.Preferences {
	return domain.Preferences{Location: "Dubai Marina", Radius: 5, Time: "Saturday 4pm", Activity: "coffee"}
}

func cafeOptions() []domain.Option {
	return []domain.Option{
		{Name: "Cafe A", Address: "Marina Walk 1", Rating: 4.7},
		{Name: "Cafe B", Address: "Marina Walk 2", Rating: 4.5},
	}
}

func newSessionService(t *testing.T) (*SessionService, *sessionstore.MemoryStore, *mocks.MockRecommender) {
	t.Helper()
	store := sessionstore.NewMemoryStore()
	rec := mocks.NewMockRecommender(t)
	return NewSessionService(store, rec, newTestLogger(t)), store, rec
}

func TestSessionService_TwoPartyFlow(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	created, err := svc.Create(ctx, "alice", nil)
	require.NoError(t, err)
	require.Len(t, created.ID, 16)

	s, err := svc.SubmitPreferences(ctx, "alice", created.ID, marinaPrefs())
	require.NoError(t, err)
	require.Len(t, s.Options, 2)
	assert.Equal(t, "Dubai Marina", s.Preferences.Location)

	s, err = svc.Select(ctx, "alice", created.ID, "Cafe A")
	require.NoError(t, err)
	require.NotNil(t, s.InitiatorSelection)
	assert.Equal(t, "Cafe A", s.InitiatorSelection.Name)
	assert.False(t, s.CounterpartyConfirmed)

	// counterparty polls through a shared link
	polled, err := svc.Get(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cafe A", polled.InitiatorSelection.Name)

	s, err = svc.Confirm(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.True(t, s.CounterpartyConfirmed)
	assert.Equal(t, "bob", s.CounterpartyID)

	final, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dubai Marina", final.Preferences.Location)
	assert.Len(t, final.Options, 2)
	assert.Equal(t, "Cafe A", final.InitiatorSelection.Name)
	assert.True(t, final.CounterpartyConfirmed)
}

func TestSessionService_Update_MergeKeepsFields(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", nil)
	require.NoError(t, err)

	prefs := marinaPrefs()
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Preferences: &prefs})
	require.NoError(t, err)

	opts := cafeOptions()
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &opts})
	require.NoError(t, err)

	s, err := svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "Cafe B"}})
	require.NoError(t, err)

	require.NotNil(t, s.Preferences)
	assert.Equal(t, "Dubai Marina", s.Preferences.Location)
	assert.Len(t, s.Options, 2)
	require.NotNil(t, s.InitiatorSelection)
	assert.Equal(t, "Cafe B", s.InitiatorSelection.Name)
	assert.Equal(t, "Marina Walk 2", s.InitiatorSelection.Address)
}

func TestSessionService_Update_CreatesMissingSession(t *testing.T) {
	svc, store, _ := newSessionService(t)
	ctx := context.Background()

	prefs := marinaPrefs()
	s, err := svc.Update(ctx, "alice", "unknownid0000000", domain.SessionPatch{Preferences: &prefs})

	require.NoError(t, err)
	assert.Equal(t, "unknownid0000000", s.ID)
	assert.Equal(t, "alice", s.InitiatorID)
	assert.Equal(t, 1, store.Len())
}

func TestSessionService_Update_SelectionMustBeAnOption(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", nil)
	require.NoError(t, err)

	opts := cafeOptions()
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &opts})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "Nowhere"}})
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestSessionService_Update_TwoPartyRawFlow(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	prefs := domain.Preferences{Location: "Dubai Marina", Radius: 5, Time: "18:00", Activity: "coffee"}
	created, err := svc.Create(ctx, "alice", &prefs)
	require.NoError(t, err)

	opts := []domain.Option{{Name: "A"}, {Name: "B"}}
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &opts})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "A"}})
	require.NoError(t, err)

	s, err := svc.Get(ctx, "bob", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", s.InitiatorSelection.Name)

	confirmed := true
	_, err = svc.Update(ctx, "bob", created.ID, domain.SessionPatch{CounterpartyConfirmed: &confirmed})
	require.NoError(t, err)

	s, err = svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.True(t, s.CounterpartyConfirmed)
	assert.Equal(t, "bob", s.CounterpartyID)
	assert.Equal(t, "Dubai Marina", s.Preferences.Location)
	assert.Len(t, s.Options, 2)
}

func TestSessionService_Update_NewOptionsDropStaleSelection(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	prefs := marinaPrefs()
	created, err := svc.Create(ctx, "alice", &prefs)
	require.NoError(t, err)

	first := []domain.Option{{Name: "A"}, {Name: "B"}}
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &first})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "A"}})
	require.NoError(t, err)

	second := []domain.Option{{Name: "C"}, {Name: "D"}}
	s, err := svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &second})
	require.NoError(t, err)

	assert.Equal(t, second, s.Options)
	assert.Nil(t, s.InitiatorSelection)

	confirmed := true
	_, err = svc.Update(ctx, "bob", created.ID, domain.SessionPatch{CounterpartyConfirmed: &confirmed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_Update_PreferencesInvalidateDownstream(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)
	_, err = svc.Select(ctx, "alice", s.ID, "Cafe A")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "bob", s.ID)
	require.NoError(t, err)

	prefs := marinaPrefs()
	prefs.Activity = "dinner"
	s, err = svc.Update(ctx, "alice", s.ID, domain.SessionPatch{Preferences: &prefs})
	require.NoError(t, err)

	assert.Equal(t, "dinner", s.Preferences.Activity)
	assert.Empty(t, s.Options)
	assert.Nil(t, s.InitiatorSelection)
	assert.False(t, s.CounterpartyConfirmed)
	assert.Equal(t, []string{"Cafe A"}, s.SeenPlaces)
}

func TestSessionService_Update_FieldOwnership(t *testing.T) {
	svc, _, _ := newSessionService(t)
	ctx := context.Background()

	prefs := marinaPrefs()
	created, err := svc.Create(ctx, "alice", &prefs)
	require.NoError(t, err)
	opts := cafeOptions()
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Options: &opts})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "Cafe A"}})
	require.NoError(t, err)

	confirmed := true
	_, err = svc.Update(ctx, "alice", created.ID, domain.SessionPatch{CounterpartyConfirmed: &confirmed})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Update(ctx, "bob", created.ID, domain.SessionPatch{Selection: &domain.Option{Name: "Cafe B"}})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Update(ctx, "bob", created.ID, domain.SessionPatch{Options: &opts})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	s, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.False(t, s.CounterpartyConfirmed)
	assert.Empty(t, s.CounterpartyID)
	assert.Equal(t, "Cafe A", s.InitiatorSelection.Name)

	// confirming on a session that does not exist yet makes the caller its initiator
	_, err = svc.Update(ctx, "alice", "unknownid0000000", domain.SessionPatch{CounterpartyConfirmed: &confirmed})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSessionService_Select_UnknownOption(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil)

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)

	_, err = svc.Select(ctx, "alice", s.ID, "Cafe Z")

	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Equal(t, domain.KindInvalidSelection, domain.KindOf(err))
}

func TestSessionService_SubmitPreferences_FallbackOnUpstreamFailure(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrUpstreamFailure, errors.New("503")))

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())

	require.NoError(t, err)
	assert.Equal(t, recommendation.Fallback(), s.Options)
}

func TestSessionService_SubmitPreferences_MissingLocation(t *testing.T) {
	svc, _, _ := newSessionService(t)

	prefs := marinaPrefs()
	prefs.Location = " "

	_, err := svc.SubmitPreferences(context.Background(), "alice", "", prefs)

	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestSessionService_DeclineOptions_ExcludesSeen(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.MatchedBy(func(q domain.RecommendationQuery) bool {
		return len(q.Exclude) == 0
	})).Return(cafeOptions(), nil).Once()

	second := []domain.Option{{Name: "Cafe A"}, {Name: "Cafe C"}}
	rec.EXPECT().Recommend(mock.Anything, mock.MatchedBy(func(q domain.RecommendationQuery) bool {
		return assert.ObjectsAreEqual([]string{"Cafe A", "Cafe B"}, q.Exclude)
	})).Return(second, nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)

	s, err = svc.DeclineOptions(ctx, "alice", s.ID)
	require.NoError(t, err)

	require.Len(t, s.Options, 1)
	assert.Equal(t, "Cafe C", s.Options[0].Name)
	assert.Equal(t, 1, s.AttemptCount)
	assert.ElementsMatch(t, []string{"Cafe A", "Cafe B"}, s.SeenPlaces)
	assert.Nil(t, s.InitiatorSelection)
}

func TestSessionService_DeclineOptions_AfterSelection(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)
	_, err = svc.Select(ctx, "alice", s.ID, "Cafe A")
	require.NoError(t, err)

	_, err = svc.DeclineOptions(ctx, "alice", s.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_ThirdPartyForbidden(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)
	_, err = svc.Select(ctx, "alice", s.ID, "Cafe A")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "bob", s.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, "mallory", s.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Get(ctx, "mallory", s.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Select(ctx, "bob", s.ID, "Cafe B")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSessionService_Confirm_ConcurrentClaims(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)
	_, err = svc.Select(ctx, "alice", s.ID, "Cafe A")
	require.NoError(t, err)

	callers := []string{"bob", "carol", "dave", "erin"}
	errs := make([]error, len(callers))

	var wg sync.WaitGroup
	for i, caller := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Confirm(ctx, caller, s.ID)
		}()
	}
	wg.Wait()

	var winner string
	for i, err := range errs {
		if err == nil {
			require.Empty(t, winner, "more than one caller holds the counterparty seat")
			winner = callers[i]
			continue
		}
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
	require.NotEmpty(t, winner)

	final, err := svc.Get(ctx, "alice", s.ID)
	require.NoError(t, err)
	assert.Equal(t, winner, final.CounterpartyID)
}

func TestSessionService_Confirm_Idempotent(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)
	_, err = svc.Select(ctx, "alice", s.ID, "Cafe A")
	require.NoError(t, err)

	first, err := svc.Confirm(ctx, "bob", s.ID)
	require.NoError(t, err)
	second, err := svc.Confirm(ctx, "bob", s.ID)
	require.NoError(t, err)

	assert.True(t, second.CounterpartyConfirmed)
	assert.Equal(t, first.InitiatorSelection, second.InitiatorSelection)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
}

func TestSessionService_Confirm_BeforeSelection(t *testing.T) {
	svc, _, rec := newSessionService(t)
	ctx := context.Background()

	rec.EXPECT().Recommend(mock.Anything, mock.Anything).Return(cafeOptions(), nil).Once()

	s, err := svc.SubmitPreferences(ctx, "alice", "", marinaPrefs())
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, "bob", s.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_Get_NotFound(t *testing.T) {
	svc, _, _ := newSessionService(t)

	_, err := svc.Get(context.Background(), "alice", "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_SweepExpired(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	svc := NewSessionService(store, nil, newTestLogger(t))

	store.EXPECT().DeleteExpired(mock.Anything).Return(3, nil)

	removed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}
