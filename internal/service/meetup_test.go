package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/rachmurali02/social-app/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeMeetupRepo keeps meetups in memory with the same conditional updates
// as the postgres repository.
type fakeMeetupRepo struct {
	mu           sync.Mutex
	meetups      map[string]domain.Meetup
	participants map[string]domain.Participant
	order        []string
}

func newFakeMeetupRepo() *fakeMeetupRepo {
	return &fakeMeetupRepo{
		meetups:      make(map[string]domain.Meetup),
		participants: make(map[string]domain.Participant),
	}
}

func (f *fakeMeetupRepo) Create(_ context.Context, m *domain.Meetup) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := *m
	stored.Participants = nil
	f.meetups[m.ID] = stored
	for _, p := range m.Participants {
		f.participants[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return nil
}

func (f *fakeMeetupRepo) GetByID(_ context.Context, id string) (*domain.Meetup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(id)
}

func (f *fakeMeetupRepo) load(id string) (*domain.Meetup, error) {
	m, ok := f.meetups[id]
	if !ok {
		return nil, domain.ErrMeetupNotFound
	}
	m.Participants = f.participantsOf(id)
	return &m, nil
}

func (f *fakeMeetupRepo) participantsOf(meetupID string) []domain.Participant {
	var out []domain.Participant
	for _, id := range f.order {
		if p := f.participants[id]; p.MeetupID == meetupID {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeMeetupRepo) GetParticipant(_ context.Context, id string) (*domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[id]
	if !ok {
		return nil, domain.ErrParticipantNotFound
	}
	return &p, nil
}

func (f *fakeMeetupRepo) RespondParticipant(_ context.Context, participantID, userID string, status domain.ParticipantStatus, at time.Time) (*domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.participants[participantID]
	if !ok || p.UserID != userID {
		return nil, domain.ErrParticipantNotFound
	}
	if p.Status != domain.ParticipantStatusPending {
		return nil, domain.ErrAlreadyResponded
	}

	p.Status = status
	p.UpdatedAt = at
	if status == domain.ParticipantStatusConfirmed {
		p.ConfirmedAt = &at
	}
	f.participants[participantID] = p
	return &p, nil
}

func (f *fakeMeetupRepo) ListParticipants(_ context.Context, meetupID string) ([]domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.participantsOf(meetupID), nil
}

func (f *fakeMeetupRepo) MarkConfirmed(_ context.Context, meetupID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.meetups[meetupID]
	if !ok {
		return false, domain.ErrMeetupNotFound
	}
	if m.Status != domain.MeetupStatusPending {
		return false, nil
	}
	m.Status = domain.MeetupStatusConfirmed
	f.meetups[meetupID] = m
	return true, nil
}

func (f *fakeMeetupRepo) ListForUser(_ context.Context, userID string, scope domain.MeetupScope) ([]*domain.Meetup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*domain.Meetup
	for id, m := range f.meetups {
		created := m.CreatorID == userID
		invited, open := false, false
		for _, p := range f.participantsOf(id) {
			invited = invited || p.UserID == userID
			open = open || (p.UserID == userID && p.Status == domain.ParticipantStatusPending)
		}
		if (scope == domain.MeetupScopeCreated && created) ||
			(scope == domain.MeetupScopeInvitations && open) ||
			(scope == domain.MeetupScopeAll && (created || invited)) {
			loaded, _ := f.load(id)
			out = append(out, loaded)
		}
	}
	return out, nil
}

type meetupDeps struct {
	repo     *mocks.MockMeetupRepo
	sessions *mocks.MockSessionStore
	users    *mocks.MockUserRepo
	notifier *mocks.MockMeetupNotifier
}

func newMeetupService(t *testing.T) (*MeetupService, meetupDeps) {
	t.Helper()
	d := meetupDeps{
		repo:     mocks.NewMockMeetupRepo(t),
		sessions: mocks.NewMockSessionStore(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockMeetupNotifier(t),
	}
	return NewMeetupService(d.repo, d.sessions, d.users, d.notifier, newTestLogger(t)), d
}

// participantID is a stable uuid per user.
func participantID(userID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(userID)).String()
}

var bobParticipant = participantID("bob")

func participantOf(userID string, status domain.ParticipantStatus) domain.Participant {
	return domain.Participant{ID: participantID(userID), MeetupID: "m1", UserID: userID, Status: status}
}

func TestMeetupService_DurableFlow(t *testing.T) {
	repo := newFakeMeetupRepo()
	users := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockMeetupNotifier(t)
	svc := NewMeetupService(repo, nil, users, notifier, newTestLogger(t))
	ctx := context.Background()

	users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Name: id}, nil
		})
	notifier.EXPECT().NotifyInvited(mock.Anything, mock.Anything, mock.Anything).Return().Times(3)
	notifier.EXPECT().NotifyMeetupConfirmed(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)

	prefs := marinaPrefs()
	opts := cafeOptions()
	meetup, err := svc.Create(ctx, "alice", domain.CreateMeetupInput{
		Preferences:    &prefs,
		Options:        opts,
		SelectedOption: &opts[0],
		FriendIDs:      []string{"f1", "f2", "f3"},
	})
	require.NoError(t, err)
	require.Len(t, meetup.Participants, 3)
	assert.Equal(t, domain.MeetupStatusPending, meetup.Status)

	ids := make(map[string]string)
	for _, p := range meetup.Participants {
		assert.Equal(t, domain.ParticipantStatusPending, p.Status)
		ids[p.UserID] = p.ID
	}

	status := func() domain.MeetupStatus {
		m, err := repo.GetByID(ctx, meetup.ID)
		require.NoError(t, err)
		return m.Status
	}

	p, err := svc.Respond(ctx, "f1", ids["f1"], domain.ResponseConfirm)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusConfirmed, p.Status)
	assert.NotNil(t, p.ConfirmedAt)
	assert.Equal(t, domain.MeetupStatusPending, status())

	_, err = svc.Respond(ctx, "f2", ids["f2"], domain.ResponseDecline)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetupStatusPending, status())

	_, err = svc.Respond(ctx, "f3", ids["f3"], domain.ResponseDecline)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetupStatusConfirmed, status())

	again, err := svc.Respond(ctx, "f1", ids["f1"], domain.ResponseConfirm)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusConfirmed, again.Status)
	assert.Equal(t, domain.MeetupStatusConfirmed, status())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMeetupService_List_InvitationsAreOpenOnly(t *testing.T) {
	repo := newFakeMeetupRepo()
	users := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockMeetupNotifier(t)
	svc := NewMeetupService(repo, nil, users, notifier, newTestLogger(t))
	ctx := context.Background()

	users.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Name: id}, nil
		})
	notifier.EXPECT().NotifyInvited(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)

	prefs := marinaPrefs()
	opts := cafeOptions()
	meetup, err := svc.Create(ctx, "alice", domain.CreateMeetupInput{
		Preferences:    &prefs,
		Options:        opts,
		SelectedOption: &opts[0],
		FriendIDs:      []string{"f1", "f2"},
	})
	require.NoError(t, err)

	for _, p := range meetup.Participants {
		if p.UserID == "f1" {
			_, err = svc.Respond(ctx, "f1", p.ID, domain.ResponseDecline)
			require.NoError(t, err)
		}
	}

	answered, err := svc.List(ctx, "f1", domain.MeetupScopeInvitations)
	require.NoError(t, err)
	assert.Empty(t, answered)

	open, err := svc.List(ctx, "f2", domain.MeetupScopeInvitations)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, meetup.ID, open[0].ID)

	all, err := svc.List(ctx, "f1", domain.MeetupScopeAll)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMeetupService_Create_FromSession(t *testing.T) {
	svc, d := newMeetupService(t)

	prefs := marinaPrefs()
	opts := cafeOptions()
	session := &domain.Session{
		ID:                 "s1",
		InitiatorID:        "alice",
		Preferences:        &prefs,
		Options:            opts,
		InitiatorSelection: &opts[1],
	}

	d.sessions.EXPECT().Get(mock.Anything, "s1").Return(session, nil)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound).Maybe()

	meetup, err := svc.Create(context.Background(), "alice", domain.CreateMeetupInput{
		SessionID: "s1",
		FriendIDs: []string{"bob", "bob", "alice", " "},
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", meetup.SessionID)
	assert.Equal(t, "Cafe B", meetup.SelectedOption.Name)
	assert.Equal(t, "Dubai Marina", meetup.Preferences.Location)
	require.Len(t, meetup.Participants, 1)
	assert.Equal(t, "bob", meetup.Participants[0].UserID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMeetupService_Create_SessionOwnedByOther(t *testing.T) {
	svc, d := newMeetupService(t)

	opts := cafeOptions()
	d.sessions.EXPECT().Get(mock.Anything, "s1").Return(&domain.Session{
		ID:                 "s1",
		InitiatorID:        "alice",
		Options:            opts,
		InitiatorSelection: &opts[0],
	}, nil)

	_, err := svc.Create(context.Background(), "bob", domain.CreateMeetupInput{
		SessionID: "s1",
		FriendIDs: []string{"carol"},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMeetupService_Create_MissingFriends(t *testing.T) {
	svc, _ := newMeetupService(t)

	prefs := marinaPrefs()
	opts := cafeOptions()
	_, err := svc.Create(context.Background(), "alice", domain.CreateMeetupInput{
		Preferences:    &prefs,
		Options:        opts,
		SelectedOption: &opts[0],
	})

	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestMeetupService_Create_MissingSelection(t *testing.T) {
	svc, _ := newMeetupService(t)

	prefs := marinaPrefs()
	_, err := svc.Create(context.Background(), "alice", domain.CreateMeetupInput{
		Preferences: &prefs,
		FriendIDs:   []string{"bob"},
	})

	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestMeetupService_Create_SelectionNotInOptions(t *testing.T) {
	svc, _ := newMeetupService(t)

	prefs := marinaPrefs()
	_, err := svc.Create(context.Background(), "alice", domain.CreateMeetupInput{
		Preferences:    &prefs,
		Options:        cafeOptions(),
		SelectedOption: &domain.Option{Name: "Elsewhere"},
		FriendIDs:      []string{"bob"},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestMeetupService_Create_OnlySelf(t *testing.T) {
	svc, _ := newMeetupService(t)

	prefs := marinaPrefs()
	opts := cafeOptions()
	_, err := svc.Create(context.Background(), "alice", domain.CreateMeetupInput{
		Preferences:    &prefs,
		Options:        opts,
		SelectedOption: &opts[0],
		FriendIDs:      []string{"alice"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMeetupService_Respond_RepeatedDeclineIsNoop(t *testing.T) {
	svc, d := newMeetupService(t)

	declined := participantOf("bob", domain.ParticipantStatusDeclined)
	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&declined, nil)

	p, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.ResponseDecline)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusDeclined, p.Status)
	d.repo.AssertNotCalled(t, "RespondParticipant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	d.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestMeetupService_Respond_ChangingAnswerRefused(t *testing.T) {
	svc, d := newMeetupService(t)

	declined := participantOf("bob", domain.ParticipantStatusDeclined)
	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&declined, nil)

	_, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.ResponseConfirm)

	assert.ErrorIs(t, err, domain.ErrAlreadyResponded)
}

func TestMeetupService_Respond_Forbidden(t *testing.T) {
	svc, d := newMeetupService(t)

	pending := participantOf("bob", domain.ParticipantStatusPending)
	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&pending, nil)

	_, err := svc.Respond(context.Background(), "mallory", bobParticipant, domain.ResponseConfirm)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMeetupService_Respond_ParticipantNotFound(t *testing.T) {
	svc, d := newMeetupService(t)

	unknown := uuid.NewString()
	d.repo.EXPECT().GetParticipant(mock.Anything, unknown).Return(nil, domain.ErrParticipantNotFound)

	_, err := svc.Respond(context.Background(), "bob", unknown, domain.ResponseConfirm)

	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
}

func TestMeetupService_Respond_MalformedParticipantID(t *testing.T) {
	svc, d := newMeetupService(t)

	for _, id := range []string{"abc", "p-bob", "42"} {
		_, err := svc.Respond(context.Background(), "bob", id, domain.ResponseConfirm)

		assert.ErrorIs(t, err, domain.ErrParticipantNotFound)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	}
	d.repo.AssertNotCalled(t, "GetParticipant", mock.Anything, mock.Anything)
}

func TestMeetupService_Respond_UnknownResponse(t *testing.T) {
	svc, _ := newMeetupService(t)

	_, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.Response("maybe"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMeetupService_Respond_AggregationReadFailure(t *testing.T) {
	svc, d := newMeetupService(t)

	pending := participantOf("bob", domain.ParticipantStatusPending)
	confirmed := participantOf("bob", domain.ParticipantStatusConfirmed)

	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&pending, nil)
	d.repo.EXPECT().RespondParticipant(mock.Anything, bobParticipant, "bob", domain.ParticipantStatusConfirmed, mock.Anything).
		Return(&confirmed, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "m1").Return(nil, errors.New("connection reset"))

	p, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.ResponseConfirm)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusConfirmed, p.Status)
	d.repo.AssertNotCalled(t, "MarkConfirmed", mock.Anything, mock.Anything)
}

func TestMeetupService_Respond_LostRaceSameAnswer(t *testing.T) {
	svc, d := newMeetupService(t)

	pending := participantOf("bob", domain.ParticipantStatusPending)
	confirmed := participantOf("bob", domain.ParticipantStatusConfirmed)

	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&pending, nil).Once()
	d.repo.EXPECT().RespondParticipant(mock.Anything, bobParticipant, "bob", domain.ParticipantStatusConfirmed, mock.Anything).
		Return(nil, domain.ErrAlreadyResponded)
	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&confirmed, nil).Once()

	p, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.ResponseConfirm)

	require.NoError(t, err)
	assert.Equal(t, domain.ParticipantStatusConfirmed, p.Status)
}

func TestMeetupService_Respond_AllDeclinedNotifiesCreator(t *testing.T) {
	svc, d := newMeetupService(t)

	pending := participantOf("bob", domain.ParticipantStatusPending)
	declined := participantOf("bob", domain.ParticipantStatusDeclined)
	meetup := &domain.Meetup{
		ID:           "m1",
		CreatorID:    "alice",
		Status:       domain.MeetupStatusPending,
		Participants: []domain.Participant{declined, participantOf("carol", domain.ParticipantStatusDeclined)},
	}
	creator := &domain.User{ID: "alice", Name: "alice"}

	d.repo.EXPECT().GetParticipant(mock.Anything, bobParticipant).Return(&pending, nil)
	d.repo.EXPECT().RespondParticipant(mock.Anything, bobParticipant, "bob", domain.ParticipantStatusDeclined, mock.Anything).
		Return(&declined, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "m1").Return(meetup, nil)
	d.users.EXPECT().GetByID(mock.Anything, "alice").Return(creator, nil)
	d.notifier.EXPECT().NotifyAllDeclined(mock.Anything, creator, meetup).Return().Once()

	_, err := svc.Respond(context.Background(), "bob", bobParticipant, domain.ResponseDecline)

	require.NoError(t, err)
	assert.Equal(t, domain.MeetupStatusPending, meetup.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMeetupService_List_ReconcilesPending(t *testing.T) {
	svc, d := newMeetupService(t)

	stale := &domain.Meetup{
		ID:        "m1",
		CreatorID: "alice",
		Status:    domain.MeetupStatusPending,
		Participants: []domain.Participant{
			participantOf("bob", domain.ParticipantStatusConfirmed),
			participantOf("carol", domain.ParticipantStatusDeclined),
		},
	}
	waiting := &domain.Meetup{
		ID:           "m2",
		CreatorID:    "alice",
		Status:       domain.MeetupStatusPending,
		Participants: []domain.Participant{participantOf("bob", domain.ParticipantStatusPending)},
	}

	d.repo.EXPECT().ListForUser(mock.Anything, "alice", domain.MeetupScopeCreated).
		Return([]*domain.Meetup{stale, waiting}, nil)
	d.repo.EXPECT().MarkConfirmed(mock.Anything, "m1").Return(true, nil)
	d.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound).Maybe()

	meetups, err := svc.List(context.Background(), "alice", domain.MeetupScopeCreated)

	require.NoError(t, err)
	require.Len(t, meetups, 2)
	assert.Equal(t, domain.MeetupStatusConfirmed, meetups[0].Status)
	assert.Equal(t, domain.MeetupStatusPending, meetups[1].Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMeetupService_List_DefaultsToAll(t *testing.T) {
	svc, d := newMeetupService(t)

	d.repo.EXPECT().ListForUser(mock.Anything, "alice", domain.MeetupScopeAll).Return(nil, nil)

	meetups, err := svc.List(context.Background(), "alice", "")

	require.NoError(t, err)
	assert.Empty(t, meetups)
}

func TestMeetupService_List_InvalidScope(t *testing.T) {
	svc, _ := newMeetupService(t)

	_, err := svc.List(context.Background(), "alice", "everything")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
