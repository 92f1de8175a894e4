// Package negotiation holds the two-party negotiation state machine.
//
// Every transition is a pure function of the stored session: it inspects the
// current fields and returns a domain.SessionPatch for the session store to
// merge. Nothing here performs I/O, so duplicated or delayed polls can never
// observe a state the stored fields do not describe.
package negotiation

import (
	"fmt"

	"github.com/rachmurali02/social-app/internal/domain"
)

type State string

const (
	StateAwaitingPreferences  State = "awaiting-preferences"
	StateAwaitingOptions      State = "awaiting-options"
	StateAwaitingSelection    State = "awaiting-selection"
	StateAwaitingCounterparty State = "awaiting-counterparty"
	StateResolved             State = "resolved"
)

// StateOf derives the negotiation state from the stored session fields.
func StateOf(s *domain.Session) State {
	switch {
	case s == nil || s.Preferences == nil:
		return StateAwaitingPreferences
	case len(s.Options) == 0:
		return StateAwaitingOptions
	case s.InitiatorSelection == nil:
		return StateAwaitingSelection
	case !s.CounterpartyConfirmed:
		return StateAwaitingCounterparty
	default:
		return StateResolved
	}
}

// SubmitPreferences replaces the preferences. Anything derived from the
// previous preferences (options, selection, confirmation) is invalidated;
// seen places and the attempt counter survive so exclusions keep working.
func SubmitPreferences(s *domain.Session, prefs domain.Preferences) domain.SessionPatch {
	patch := domain.SessionPatch{Preferences: &prefs}
	if s == nil {
		return patch
	}
	if len(s.Options) > 0 {
		empty := []domain.Option{}
		patch.Options = &empty
	}
	if s.InitiatorSelection != nil {
		patch.ClearSelection = true
	}
	if s.CounterpartyConfirmed {
		patch.CounterpartyConfirmed = ptr(false)
	}
	return patch
}

// ReceiveOptions stores a fresh batch from the recommendation source,
// replacing the previous batch wholesale.
func ReceiveOptions(s *domain.Session, opts []domain.Option) (domain.SessionPatch, error) {
	state := StateOf(s)
	if state == StateAwaitingPreferences || state == StateResolved {
		return domain.SessionPatch{}, fmt.Errorf("%w: cannot receive options in state %s", domain.ErrInvalidTransition, state)
	}
	if len(opts) == 0 {
		return domain.SessionPatch{}, fmt.Errorf("%w: options batch is empty", domain.ErrValidation)
	}

	batch := domain.CloneOptions(opts)
	return domain.SessionPatch{
		Options:        &batch,
		ClearSelection: s.InitiatorSelection != nil,
	}, nil
}

// Select records the initiator's choice. The option is looked up by name in
// the stored batch and the stored copy is recorded.
func Select(s *domain.Session, name string) (domain.SessionPatch, error) {
	if name == "" {
		return domain.SessionPatch{}, fmt.Errorf("%w: option name is required", domain.ErrMissingParameter)
	}

	state := StateOf(s)
	if state != StateAwaitingSelection && state != StateAwaitingCounterparty {
		return domain.SessionPatch{}, fmt.Errorf("%w: cannot select in state %s", domain.ErrInvalidTransition, state)
	}

	opt, ok := s.HasOption(name)
	if !ok {
		return domain.SessionPatch{}, fmt.Errorf("%w: %q", domain.ErrInvalidSelection, name)
	}

	seen := appendUnique(s.SeenPlaces, opt.Name)
	return domain.SessionPatch{Selection: &opt, SeenPlaces: &seen}, nil
}

// DeclinePlan describes the follow-up request after the initiator rejected
// the current batch.
type DeclinePlan struct {
	Exclude []string
	Attempt int
}

// Apply builds the patch that installs the replacement batch.
func (p DeclinePlan) Apply(opts []domain.Option) domain.SessionPatch {
	batch := domain.CloneOptions(opts)
	seen := append([]string(nil), p.Exclude...)
	attempt := p.Attempt
	return domain.SessionPatch{
		Options:        &batch,
		ClearSelection: true,
		SeenPlaces:     &seen,
		AttemptCount:   &attempt,
	}
}

// PlanDecline accumulates every option name seen so far into the exclusion
// set and bumps the attempt counter.
func PlanDecline(s *domain.Session) (DeclinePlan, error) {
	state := StateOf(s)
	if state != StateAwaitingSelection {
		return DeclinePlan{}, fmt.Errorf("%w: cannot decline options in state %s", domain.ErrInvalidTransition, state)
	}

	exclude := append([]string(nil), s.SeenPlaces...)
	for _, o := range s.Options {
		exclude = appendUnique(exclude, o.Name)
	}

	return DeclinePlan{Exclude: exclude, Attempt: s.AttemptCount + 1}, nil
}

// Confirm is the counterparty's accept. Confirming a resolved session again
// returns changed=false and an empty patch.
func Confirm(s *domain.Session) (patch domain.SessionPatch, changed bool, err error) {
	switch state := StateOf(s); state {
	case StateResolved:
		return domain.SessionPatch{}, false, nil
	case StateAwaitingCounterparty:
		return domain.SessionPatch{CounterpartyConfirmed: ptr(true)}, true, nil
	default:
		return domain.SessionPatch{}, false, fmt.Errorf("%w: nothing to confirm in state %s", domain.ErrInvalidTransition, state)
	}
}

// CheckMerge turns a raw field-level update into the patch that is merged
// into s (nil when the session does not exist yet), applying the same
// invalidation rules as the typed transitions:
//   - new preferences without options discard the options, the selection
//     and the confirmation, like SubmitPreferences;
//   - a new options batch drops a selection that is not part of it and
//     withdraws the confirmation;
//   - a selection must name one of the options current after the merge and
//     the stored copy replaces the client's;
//   - userBConfirmed=true goes through Confirm, userBConfirmed=false can not
//     withdraw a confirmation.
func CheckMerge(s *domain.Session, patch domain.SessionPatch) (domain.SessionPatch, error) {
	out := patch

	if patch.CounterpartyConfirmed != nil {
		confirm, err := checkConfirmation(s, *patch.CounterpartyConfirmed)
		if err != nil {
			return domain.SessionPatch{}, err
		}
		out.CounterpartyConfirmed = confirm
	}

	if patch.Preferences != nil && patch.Options == nil {
		out = Merge(SubmitPreferences(s, *patch.Preferences), out)
	}

	if patch.Options != nil && s != nil {
		if patch.Selection == nil && s.InitiatorSelection != nil {
			if _, ok := optionsOf(*patch.Options).HasOption(s.InitiatorSelection.Name); !ok {
				out.ClearSelection = true
			}
		}
		if s.CounterpartyConfirmed {
			out.CounterpartyConfirmed = ptr(false)
		}
	}

	if out.Selection == nil || out.ClearSelection {
		return out, nil
	}

	var current []domain.Option
	switch {
	case out.Options != nil:
		current = *out.Options
	case s != nil:
		current = s.Options
	}

	opt, ok := optionsOf(current).HasOption(out.Selection.Name)
	if !ok {
		return domain.SessionPatch{}, fmt.Errorf("%w: %q", domain.ErrInvalidSelection, out.Selection.Name)
	}
	out.Selection = &opt

	if s != nil && s.CounterpartyConfirmed && out.CounterpartyConfirmed == nil &&
		(s.InitiatorSelection == nil || s.InitiatorSelection.Name != opt.Name) {
		out.CounterpartyConfirmed = ptr(false)
	}

	return out, nil
}

// checkConfirmation returns the confirmation field to store, nil when the
// update leaves it as it is.
func checkConfirmation(s *domain.Session, confirmed bool) (*bool, error) {
	if !confirmed {
		if s != nil && s.CounterpartyConfirmed {
			return nil, fmt.Errorf("%w: a confirmation cannot be withdrawn", domain.ErrInvalidTransition)
		}
		return nil, nil
	}

	patch, changed, err := Confirm(s)
	if err != nil || !changed {
		return nil, err
	}
	return patch.CounterpartyConfirmed, nil
}

func optionsOf(opts []domain.Option) *domain.Session {
	return &domain.Session{Options: opts}
}

func appendUnique(list []string, name string) []string {
	out := append([]string(nil), list...)
	for _, v := range out {
		if v == name {
			return out
		}
	}
	return append(out, name)
}

func ptr[T any](v T) *T { return &v }
