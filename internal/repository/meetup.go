package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const meetupColumns = `id, creator_id, session_id, preferences, options,
	selected_option, status, created_at, updated_at`

const participantColumns = `id, meetup_id, user_id, status, confirmed_at, created_at, updated_at`

type MeetupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMeetupRepo(db *dbpg.DB) *MeetupRepository {
	return &MeetupRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *MeetupRepository) Create(ctx context.Context, m *domain.Meetup) error {
	prefs, err := json.Marshal(m.Preferences)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	options := m.Options
	if options == nil {
		options = []domain.Option{}
	}
	opts, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	selected, err := json.Marshal(m.SelectedOption)
	if err != nil {
		return fmt.Errorf("encode selected option: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO meetups (id, creator_id, session_id, preferences, options,
			  	selected_option, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, query, m.ID, m.CreatorID, m.SessionID,
		prefs, opts, selected, m.Status, m.CreatedAt, m.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert meetup: %w", err)
	}

	participantQuery := `INSERT INTO meetup_participants (id, meetup_id, user_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	for _, p := range m.Participants {
		_, err = tx.ExecContext(
			ctx, participantQuery, p.ID, p.MeetupID,
			p.UserID, p.Status, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("%w: %s", domain.ErrAlreadyInvited, p.UserID)
			}
			return fmt.Errorf("insert participant: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID loads the meetup with a fresh read of all its participants.
func (r *MeetupRepository) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	query := `SELECT ` + meetupColumns + ` FROM meetups WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get meetup: %w", err)
	}

	m, err := scanMeetup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMeetupNotFound
		}
		return nil, err
	}

	if m.Participants, err = r.ListParticipants(ctx, id); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *MeetupRepository) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM meetup_participants WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	p, err := scanParticipant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}

	return p, nil
}

// RespondParticipant records the answer only while the row is still pending,
// so two concurrent answers cannot both win.
func (r *MeetupRepository) RespondParticipant(
	ctx context.Context,
	participantID, userID string,
	status domain.ParticipantStatus,
	at time.Time,
) (*domain.Participant, error) {
	var confirmedAt *time.Time
	if status == domain.ParticipantStatusConfirmed {
		confirmedAt = &at
	}

	query := `UPDATE meetup_participants
			  SET status = $4, confirmed_at = $5, updated_at = $6
			  WHERE id = $1 AND user_id = $2 AND status = $3
			  RETURNING ` + participantColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, participantID, userID,
		domain.ParticipantStatusPending, status, confirmedAt, at,
	)
	if err != nil {
		return nil, fmt.Errorf("respond participant: %w", err)
	}

	p, err := scanParticipant(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// nothing updated: either the row is gone or it already has an answer
	current, getErr := r.GetParticipant(ctx, participantID)
	if getErr != nil {
		return nil, getErr
	}
	if current.UserID != userID {
		return nil, domain.ErrParticipantNotFound
	}
	return nil, domain.ErrAlreadyResponded
}

func (r *MeetupRepository) ListParticipants(ctx context.Context, meetupID string) ([]domain.Participant, error) {
	query := `SELECT ` + participantColumns + `
			  FROM meetup_participants
			  WHERE meetup_id = $1
			  ORDER BY created_at, user_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, meetupID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	res := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}

	return res, rows.Err()
}

func (r *MeetupRepository) MarkConfirmed(ctx context.Context, meetupID string) (bool, error) {
	query := `UPDATE meetups
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, meetupID,
		domain.MeetupStatusPending, domain.MeetupStatusConfirmed,
	)
	if err != nil {
		return false, fmt.Errorf("confirm meetup: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("meetup rows affected: %w", err)
	}

	return rows > 0, nil
}

// listQuery selects the caller's meetups for scope. Invitations are the
// meetups where the caller still has a pending answer.
func listQuery(scope domain.MeetupScope) string {
	var where string
	switch scope {
	case domain.MeetupScopeCreated:
		where = `creator_id = $1`
	case domain.MeetupScopeInvitations:
		where = `id IN (SELECT meetup_id FROM meetup_participants
			WHERE user_id = $1 AND status = '` + string(domain.ParticipantStatusPending) + `')`
	default:
		where = `creator_id = $1 OR id IN (SELECT meetup_id FROM meetup_participants WHERE user_id = $1)`
	}

	return `SELECT ` + meetupColumns + `
			  FROM meetups
			  WHERE ` + where + `
			  ORDER BY created_at DESC`
}

func (r *MeetupRepository) ListForUser(ctx context.Context, userID string, scope domain.MeetupScope) ([]*domain.Meetup, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, listQuery(scope), userID)
	if err != nil {
		return nil, fmt.Errorf("list meetups: %w", err)
	}
	defer rows.Close()

	var (
		res []*domain.Meetup
		ids []string
	)
	byID := make(map[string]*domain.Meetup)
	for rows.Next() {
		m, err := scanMeetup(rows)
		if err != nil {
			return nil, err
		}
		m.Participants = []domain.Participant{}
		res = append(res, m)
		ids = append(ids, m.ID)
		byID[m.ID] = m
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list meetups: %w", err)
	}
	if len(ids) == 0 {
		return res, nil
	}

	participantQuery := `SELECT ` + participantColumns + `
			  FROM meetup_participants
			  WHERE meetup_id::text = ANY($1)
			  ORDER BY created_at, user_id`

	prows, err := r.db.QueryWithRetry(ctx, r.strategy, participantQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		p, err := scanParticipant(prows)
		if err != nil {
			return nil, err
		}
		if m, ok := byID[p.MeetupID]; ok {
			m.Participants = append(m.Participants, *p)
		}
	}

	return res, prows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMeetup(row scanner) (*domain.Meetup, error) {
	var (
		m                        domain.Meetup
		prefs, opts, selectedRaw []byte
	)
	if err := row.Scan(
		&m.ID, &m.CreatorID, &m.SessionID, &prefs, &opts,
		&selectedRaw, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan meetup: %w", err)
	}

	if err := json.Unmarshal(prefs, &m.Preferences); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	if err := json.Unmarshal(opts, &m.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	if err := json.Unmarshal(selectedRaw, &m.SelectedOption); err != nil {
		return nil, fmt.Errorf("decode selected option: %w", err)
	}

	return &m, nil
}

func scanParticipant(row scanner) (*domain.Participant, error) {
	var p domain.Participant
	if err := row.Scan(
		&p.ID, &p.MeetupID, &p.UserID, &p.Status,
		&p.ConfirmedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}
	return &p, nil
}
