package aggregator

import (
	"testing"

	"github.com/rachmurali02/social-app/internal/domain"
	"github.com/stretchr/testify/assert"
)

var statuses = []domain.ParticipantStatus{
	domain.ParticipantStatusPending,
	domain.ParticipantStatusConfirmed,
	domain.ParticipantStatusDeclined,
}

// every combination of participant statuses for n participants
func combinations(n int) [][]domain.Participant {
	if n == 0 {
		return [][]domain.Participant{{}}
	}
	var out [][]domain.Participant
	for _, rest := range combinations(n - 1) {
		for _, s := range statuses {
			set := append([]domain.Participant{{Status: s}}, rest...)
			out = append(out, set)
		}
	}
	return out
}

func TestEvaluate_AllCombinations(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for _, set := range combinations(n) {
			pending, confirmed := false, false
			for _, p := range set {
				pending = pending || p.Status == domain.ParticipantStatusPending
				confirmed = confirmed || p.Status == domain.ParticipantStatusConfirmed
			}
			ready := !pending && confirmed

			// a pending meetup moves to confirmed exactly when the rule holds
			d := Evaluate(domain.MeetupStatusPending, set)
			assert.Equal(t, ready, d.Outcome == OutcomeConfirm, "%+v", set)
			assert.Equal(t, !pending && !confirmed, d.Outcome == OutcomeAllDeclined, "%+v", set)
			assert.Equal(t, pending, d.Outcome == OutcomeWaiting, "%+v", set)

			// a confirmed meetup is never confirmed again
			if ready {
				assert.Equal(t, OutcomeAlreadyConfirmed, Evaluate(domain.MeetupStatusConfirmed, set).Outcome, "%+v", set)
			}
		}
	}
}

func TestEvaluate(t *testing.T) {
	p := func(ss ...domain.ParticipantStatus) []domain.Participant {
		out := make([]domain.Participant, len(ss))
		for i, s := range ss {
			out[i] = domain.Participant{Status: s}
		}
		return out
	}
	const (
		pend = domain.ParticipantStatusPending
		conf = domain.ParticipantStatusConfirmed
		decl = domain.ParticipantStatusDeclined
	)

	tests := []struct {
		name         string
		status       domain.MeetupStatus
		participants []domain.Participant
		want         Outcome
	}{
		{"no participants", domain.MeetupStatusPending, nil, OutcomeWaiting},
		{"someone pending", domain.MeetupStatusPending, p(conf, pend), OutcomeWaiting},
		{"one confirmed rest declined", domain.MeetupStatusPending, p(conf, decl, decl), OutcomeConfirm},
		{"all confirmed", domain.MeetupStatusPending, p(conf, conf), OutcomeConfirm},
		{"already confirmed", domain.MeetupStatusConfirmed, p(conf, decl), OutcomeAlreadyConfirmed},
		{"all declined", domain.MeetupStatusPending, p(decl, decl), OutcomeAllDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.status, tt.participants).Outcome)
		})
	}
}

func TestCount(t *testing.T) {
	tally := Count([]domain.Participant{
		{Status: domain.ParticipantStatusConfirmed},
		{Status: domain.ParticipantStatusDeclined},
		{Status: domain.ParticipantStatusDeclined},
		{Status: domain.ParticipantStatusPending},
	})

	assert.Equal(t, Tally{Pending: 1, Confirmed: 1, Declined: 2}, tally)
	assert.False(t, tally.Ready())
}
