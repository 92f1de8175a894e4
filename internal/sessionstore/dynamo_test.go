package sessionstore

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	puts       int
	updates    int
	updateErrs []error
	updated    *dynamodb.UpdateItemInput
	beforePut  func()
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func keyOf(item map[string]types.AttributeValue) string {
	return item["sessionId"].(*types.AttributeValueMemberS).Value
}

func numberOf(av types.AttributeValue) int64 {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return v
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

// PutItem understands the two conditions the store sends: the item must be
// absent, or absent or expired as of :nowEpoch.
func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts++
	if f.beforePut != nil {
		f.beforePut()
	}

	id := keyOf(in.Item)
	if existing, exists := f.items[id]; exists && in.ConditionExpression != nil {
		now, expiring := in.ExpressionAttributeValues[":nowEpoch"]
		if !expiring || numberOf(existing["expiresAt"]) > numberOf(now) {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates++
	f.updated = in
	if len(f.updateErrs) > 0 {
		err := f.updateErrs[0]
		f.updateErrs = f.updateErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.items[keyOf(in.Key)]}, nil
}

func putRecord(t *testing.T, f *fakeDynamo, rec dynamoRecord) {
	t.Helper()
	item, err := attributevalue.MarshalMap(rec)
	require.NoError(t, err)
	f.items[rec.ID] = item
}

func TestDynamoStore_CreateAndGet(t *testing.T) {
	clock := newFakeClock()
	fake := newFakeDynamo()
	store := NewDynamoStore(fake, "sessions", WithClock(clock.Now), WithTTL(time.Hour))
	ctx := context.Background()

	s := &domain.Session{Preferences: &marina, InitiatorID: "alice"}
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, marina, *got.Preferences)
	assert.Equal(t, "alice", got.InitiatorID)
	assert.Empty(t, got.Options)

	clock.Advance(2 * time.Hour)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDynamoStore_CreateRetriesOnConditionFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.items["taken"] = map[string]types.AttributeValue{"sessionId": &types.AttributeValueMemberS{Value: "taken"}}

	ids := []string{"taken", "free"}
	i := 0
	store := NewDynamoStore(fake, "sessions", WithIDGenerator(func() (string, error) {
		id := ids[i]
		i++
		return id, nil
	}))

	s := &domain.Session{}
	require.NoError(t, store.Create(context.Background(), s))
	assert.Equal(t, "free", s.ID)
	assert.Equal(t, 2, fake.puts)
}

func TestDynamoStore_UpsertSendsOnlyProvidedFields(t *testing.T) {
	fake := newFakeDynamo()
	rec := dynamoRecord{Session: domain.Session{ID: "s1", Preferences: &marina, CounterpartyConfirmed: true}}
	item, err := attributevalue.MarshalMap(rec)
	require.NoError(t, err)
	fake.items["s1"] = item

	store := NewDynamoStore(fake, "sessions")
	confirmed := true
	got, err := store.Upsert(context.Background(), "s1", domain.SessionPatch{CounterpartyConfirmed: &confirmed})
	require.NoError(t, err)
	assert.True(t, got.CounterpartyConfirmed)

	expr := *fake.updated.UpdateExpression
	assert.Contains(t, expr, "#confirm = :confirm")
	assert.NotContains(t, expr, "#prefs")
	assert.NotContains(t, expr, "REMOVE")
}

func TestDynamoStore_UpsertReplacesExpired(t *testing.T) {
	clock := newFakeClock()
	fake := newFakeDynamo()
	fake.updateErrs = []error{&types.ConditionalCheckFailedException{}}
	putRecord(t, fake, dynamoRecord{
		Session:   domain.Session{ID: "stale", Preferences: &marina, InitiatorID: "alice"},
		ExpiresAt: clock.Now().Add(-time.Minute).Unix(),
	})
	store := NewDynamoStore(fake, "sessions", WithClock(clock.Now), WithTTL(time.Hour))

	opts := []domain.Option{{Name: "A"}}
	got, err := store.Upsert(context.Background(), "stale", domain.SessionPatch{Options: &opts})
	require.NoError(t, err)

	assert.Equal(t, "stale", got.ID)
	assert.Equal(t, opts, got.Options)
	assert.Nil(t, got.Preferences)
	assert.Empty(t, got.InitiatorID)
	assert.Equal(t, 1, fake.puts)

	stored, err := store.Get(context.Background(), "stale")
	require.NoError(t, err)
	assert.Equal(t, opts, stored.Options)
}

func TestDynamoStore_UpsertMissingAfterConditionFailure(t *testing.T) {
	fake := newFakeDynamo()
	fake.updateErrs = []error{&types.ConditionalCheckFailedException{}}
	store := NewDynamoStore(fake, "sessions")

	opts := []domain.Option{{Name: "A"}}
	got, err := store.Upsert(context.Background(), "gone", domain.SessionPatch{Options: &opts})
	require.NoError(t, err)

	assert.Equal(t, opts, got.Options)
	assert.Contains(t, fake.items, "gone")
}

func TestDynamoStore_UpsertLosesReplaceRace(t *testing.T) {
	clock := newFakeClock()
	fake := newFakeDynamo()
	fake.updateErrs = []error{&types.ConditionalCheckFailedException{}}
	putRecord(t, fake, dynamoRecord{
		Session:   domain.Session{ID: "s1"},
		ExpiresAt: clock.Now().Add(-time.Minute).Unix(),
	})

	// another writer replaces the expired item between our read and our put
	fake.beforePut = func() {
		fake.beforePut = nil
		putRecord(t, fake, dynamoRecord{
			Session:   domain.Session{ID: "s1", Preferences: &marina, InitiatorID: "alice"},
			ExpiresAt: clock.Now().Add(time.Hour).Unix(),
		})
	}
	store := NewDynamoStore(fake, "sessions", WithClock(clock.Now))

	opts := []domain.Option{{Name: "A"}}
	got, err := store.Upsert(context.Background(), "s1", domain.SessionPatch{Options: &opts})
	require.NoError(t, err)

	assert.Equal(t, 2, fake.updates)
	assert.Equal(t, 1, fake.puts)
	require.NotNil(t, got.Preferences)
	assert.Equal(t, marina, *got.Preferences)
	assert.Equal(t, "alice", got.InitiatorID)
	assert.Contains(t, *fake.updated.UpdateExpression, "#options = :options")
}

func TestDynamoStore_UpsertRefusesTakenSeat(t *testing.T) {
	clock := newFakeClock()
	fake := newFakeDynamo()
	fake.updateErrs = []error{&types.ConditionalCheckFailedException{}}
	putRecord(t, fake, dynamoRecord{
		Session:   domain.Session{ID: "s1", InitiatorID: "alice", CounterpartyID: "carol"},
		ExpiresAt: clock.Now().Add(time.Hour).Unix(),
	})
	store := NewDynamoStore(fake, "sessions", WithClock(clock.Now))

	bob := "bob"
	_, err := store.Upsert(context.Background(), "s1", domain.SessionPatch{CounterpartyID: &bob})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, *fake.updated.ConditionExpression, "attribute_not_exists(#counterparty) OR #counterparty = :counterparty")
	assert.Zero(t, fake.puts)
}

func TestBuildUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	sel := domain.Option{Name: "A"}

	spec, err := buildUpdate(domain.SessionPatch{Preferences: &marina, Selection: &sel}, now, now.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(spec.expression, "SET "))
	assert.Contains(t, spec.expression, "#prefs = :prefs")
	assert.Contains(t, spec.expression, "#sel = :sel")
	assert.Contains(t, spec.expression, "#options = if_not_exists(#options, :noOptions)")
	assert.Contains(t, spec.expression, "#created = if_not_exists(#created, :now)")
	assert.Equal(t, "userASelection", spec.names["#sel"])

	cleared, err := buildUpdate(domain.SessionPatch{Selection: &sel, ClearSelection: true}, now, now)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(cleared.expression, " REMOVE #sel"))
	assert.NotContains(t, cleared.values, ":sel")
	assert.Equal(t, "(attribute_not_exists(#id) OR #exp > :nowEpoch)", cleared.condition)

	alice := "alice"
	claimed, err := buildUpdate(domain.SessionPatch{InitiatorID: &alice}, now, now)
	require.NoError(t, err)
	assert.Contains(t, claimed.condition, " AND (attribute_not_exists(#initiator) OR #initiator = :initiator)")
}
