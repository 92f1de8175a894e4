package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/rachmurali02/social-app/internal/domain"
)

const maxUpsertAttempts = 3

// errConditionFailed marks a rejected conditional write.
var errConditionFailed = errors.New("condition failed")

// DynamoAPI is the subset of *dynamodb.Client the store needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// dynamoRecord is the stored item. expiresAt is the table's TTL attribute,
// so eviction is done by DynamoDB itself.
type dynamoRecord struct {
	domain.Session
	ExpiresAt int64 `dynamodbav:"expiresAt"`
}

// DynamoStore keeps sessions in a DynamoDB table keyed by sessionId. It lets
// sessions survive across instances, which the memory store cannot.
type DynamoStore struct {
	client DynamoAPI
	table  string
	cfg    config
}

func NewDynamoStore(client DynamoAPI, table string, opts ...Option) *DynamoStore {
	return &DynamoStore{client: client, table: table, cfg: newConfig(opts)}
}

func (d *DynamoStore) Create(ctx context.Context, s *domain.Session) error {
	now := d.cfg.now()
	if s.Options == nil {
		s.Options = []domain.Option{}
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := d.cfg.newID()
		if err != nil {
			return fmt.Errorf("generate session id: %w", err)
		}
		s.ID = id
		s.CreatedAt = now
		s.UpdatedAt = now

		item, err := attributevalue.MarshalMap(dynamoRecord{Session: *s, ExpiresAt: now.Add(d.cfg.ttl).Unix()})
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}

		_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(d.table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(sessionId)"),
		})
		if err == nil {
			return nil
		}

		var ccf *types.ConditionalCheckFailedException
		if !errors.As(err, &ccf) {
			return fmt.Errorf("put session: %w", err)
		}
	}

	return fmt.Errorf("generate session id: %d collisions in a row", maxIDAttempts)
}

func (d *DynamoStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	rec, err := d.load(ctx, id)
	if err != nil {
		return nil, err
	}
	// DynamoDB TTL deletion lags; treat expired items as gone.
	if rec == nil || rec.ExpiresAt <= d.cfg.now().Unix() {
		return nil, domain.ErrSessionNotFound
	}

	return &rec.Session, nil
}

// Upsert sends only the provided fields in a single UpdateItem, so writers
// touching disjoint fields never clobber each other. UpdateItem creates the
// item when it is missing. An item that is present but expired is replaced
// by a conditional PutItem; losing that race sends the patch through
// UpdateItem again. Seat claims are conditional, so a seat held by another
// user is refused with ErrForbidden.
func (d *DynamoStore) Upsert(ctx context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	for attempt := 0; attempt < maxUpsertAttempts; attempt++ {
		now := d.cfg.now()

		s, err := d.update(ctx, id, patch, now)
		if !errors.Is(err, errConditionFailed) {
			return s, err
		}

		rec, err := d.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec != nil && rec.ExpiresAt > now.Unix() {
			if err = checkClaims(&rec.Session, patch); err != nil {
				return nil, err
			}
			continue
		}

		s, err = d.replaceExpired(ctx, id, patch, now)
		if !errors.Is(err, errConditionFailed) {
			return s, err
		}
	}

	return nil, fmt.Errorf("upsert session %s: %d conflicting writes in a row", id, maxUpsertAttempts)
}

func (d *DynamoStore) update(ctx context.Context, id string, patch domain.SessionPatch, now time.Time) (*domain.Session, error) {
	upd, err := buildUpdate(patch, now, now.Add(d.cfg.ttl))
	if err != nil {
		return nil, err
	}

	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.table),
		Key:                       sessionKey(id),
		UpdateExpression:          aws.String(upd.expression),
		ConditionExpression:       aws.String(upd.condition),
		ExpressionAttributeNames:  upd.names,
		ExpressionAttributeValues: upd.values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, errConditionFailed
		}
		return nil, fmt.Errorf("update session: %w", err)
	}

	rec, err := decodeRecord(out.Attributes)
	if err != nil {
		return nil, err
	}
	return &rec.Session, nil
}

// load reads the raw item, expired or not. A missing item is (nil, nil).
func (d *DynamoStore) load(ctx context.Context, id string) (*dynamoRecord, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.table),
		Key:            sessionKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return decodeRecord(out.Item)
}

// replaceExpired writes a fresh session built from the patch, provided the
// item is still missing or expired.
func (d *DynamoStore) replaceExpired(ctx context.Context, id string, patch domain.SessionPatch, now time.Time) (*domain.Session, error) {
	s := &domain.Session{ID: id, Options: []domain.Option{}, CreatedAt: now, UpdatedAt: now}
	patch.Apply(s)

	item, err := attributevalue.MarshalMap(dynamoRecord{Session: *s, ExpiresAt: now.Add(d.cfg.ttl).Unix()})
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #exp <= :nowEpoch"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "sessionId",
			"#exp": "expiresAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nowEpoch": &types.AttributeValueMemberN{Value: fmt.Sprint(now.Unix())},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, errConditionFailed
		}
		return nil, fmt.Errorf("replace expired session: %w", err)
	}
	return s, nil
}

// DeleteExpired is a no-op: the table's TTL attribute does the eviction.
func (d *DynamoStore) DeleteExpired(_ context.Context) (int, error) {
	return 0, nil
}

type updateSpec struct {
	expression string
	condition  string
	names      map[string]string
	values     map[string]types.AttributeValue
}

func buildUpdate(patch domain.SessionPatch, now, expires time.Time) (updateSpec, error) {
	spec := updateSpec{
		names: map[string]string{
			"#id":      "sessionId",
			"#exp":     "expiresAt",
			"#created": "createdAt",
			"#updated": "updatedAt",
			"#options": "options",
			"#confirm": "userBConfirmed",
			"#attempt": "attemptCount",
		},
		values: map[string]types.AttributeValue{},
	}

	var set []string
	put := func(name, attr, placeholder string, v any) error {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", attr, err)
		}
		spec.names[name] = attr
		spec.values[placeholder] = av
		set = append(set, name+" = "+placeholder)
		return nil
	}

	if patch.Preferences != nil {
		if err := put("#prefs", "preferences", ":prefs", patch.Preferences); err != nil {
			return updateSpec{}, err
		}
	}
	if patch.Options != nil {
		if err := put("#options", "options", ":options", *patch.Options); err != nil {
			return updateSpec{}, err
		}
	} else {
		set = append(set, "#options = if_not_exists(#options, :noOptions)")
		spec.values[":noOptions"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	}
	if patch.Selection != nil && !patch.ClearSelection {
		if err := put("#sel", "userASelection", ":sel", patch.Selection); err != nil {
			return updateSpec{}, err
		}
	}
	if patch.CounterpartyConfirmed != nil {
		if err := put("#confirm", "userBConfirmed", ":confirm", *patch.CounterpartyConfirmed); err != nil {
			return updateSpec{}, err
		}
	} else {
		set = append(set, "#confirm = if_not_exists(#confirm, :false)")
		spec.values[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	}
	if patch.SeenPlaces != nil {
		if err := put("#seen", "seenPlaces", ":seen", *patch.SeenPlaces); err != nil {
			return updateSpec{}, err
		}
	}
	if patch.AttemptCount != nil {
		if err := put("#attempt", "attemptCount", ":attempt", *patch.AttemptCount); err != nil {
			return updateSpec{}, err
		}
	} else {
		set = append(set, "#attempt = if_not_exists(#attempt, :zero)")
		spec.values[":zero"] = &types.AttributeValueMemberN{Value: "0"}
	}
	if patch.InitiatorID != nil {
		if err := put("#initiator", "initiatorId", ":initiator", *patch.InitiatorID); err != nil {
			return updateSpec{}, err
		}
	}
	if patch.CounterpartyID != nil {
		if err := put("#counterparty", "counterpartyId", ":counterparty", *patch.CounterpartyID); err != nil {
			return updateSpec{}, err
		}
	}

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return updateSpec{}, fmt.Errorf("marshal timestamp: %w", err)
	}
	spec.values[":now"] = nowAV
	spec.values[":nowEpoch"] = &types.AttributeValueMemberN{Value: fmt.Sprint(now.Unix())}
	spec.values[":expires"] = &types.AttributeValueMemberN{Value: fmt.Sprint(expires.Unix())}
	set = append(set,
		"#created = if_not_exists(#created, :now)",
		"#updated = :now",
		"#exp = if_not_exists(#exp, :expires)",
	)

	spec.expression = "SET " + strings.Join(set, ", ")

	cond := []string{"(attribute_not_exists(#id) OR #exp > :nowEpoch)"}
	if patch.InitiatorID != nil {
		cond = append(cond, "(attribute_not_exists(#initiator) OR #initiator = :initiator)")
	}
	if patch.CounterpartyID != nil {
		cond = append(cond, "(attribute_not_exists(#counterparty) OR #counterparty = :counterparty)")
	}
	spec.condition = strings.Join(cond, " AND ")
	if patch.ClearSelection {
		spec.names["#sel"] = "userASelection"
		spec.expression += " REMOVE #sel"
	}

	return spec, nil
}

func sessionKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"sessionId": &types.AttributeValueMemberS{Value: id},
	}
}

func decodeRecord(item map[string]types.AttributeValue) (*dynamoRecord, error) {
	var rec dynamoRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if rec.Options == nil {
		rec.Options = []domain.Option{}
	}
	return &rec, nil
}
