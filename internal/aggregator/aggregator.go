// Package aggregator derives a meetup's group status from its participants.
package aggregator

import "github.com/rachmurali02/social-app/internal/domain"

type Outcome int

const (
	// OutcomeWaiting: at least one participant has not answered yet.
	OutcomeWaiting Outcome = iota
	// OutcomeConfirm: the meetup must move pending -> confirmed now.
	OutcomeConfirm
	// OutcomeAlreadyConfirmed: the rule holds but the status is already set.
	OutcomeAlreadyConfirmed
	// OutcomeAllDeclined: everyone answered and nobody accepted. The meetup
	// stays pending; there is no rejected status.
	OutcomeAllDeclined
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWaiting:
		return "waiting"
	case OutcomeConfirm:
		return "confirm"
	case OutcomeAlreadyConfirmed:
		return "already_confirmed"
	case OutcomeAllDeclined:
		return "all_declined"
	}
	return "unknown"
}

type Tally struct {
	Pending   int
	Confirmed int
	Declined  int
}

func Count(participants []domain.Participant) Tally {
	var t Tally
	for _, p := range participants {
		switch p.Status {
		case domain.ParticipantStatusConfirmed:
			t.Confirmed++
		case domain.ParticipantStatusDeclined:
			t.Declined++
		default:
			t.Pending++
		}
	}
	return t
}

// Ready reports whether the confirmation rule holds: nobody is pending and
// at least one participant confirmed.
func (t Tally) Ready() bool {
	return t.Pending == 0 && t.Confirmed > 0
}

type Decision struct {
	Outcome Outcome
	Tally   Tally
}

// Evaluate must be given a fresh read of every participant of the meetup,
// never a single changed row.
func Evaluate(status domain.MeetupStatus, participants []domain.Participant) Decision {
	t := Count(participants)
	d := Decision{Tally: t}

	switch {
	case t.Ready() && status == domain.MeetupStatusConfirmed:
		d.Outcome = OutcomeAlreadyConfirmed
	case t.Ready():
		d.Outcome = OutcomeConfirm
	case t.Pending == 0 && t.Declined > 0:
		d.Outcome = OutcomeAllDeclined
	default:
		d.Outcome = OutcomeWaiting
	}

	return d
}
