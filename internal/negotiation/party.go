package negotiation

import (
	"fmt"

	"github.com/rachmurali02/social-app/internal/domain"
)

type Role int

const (
	RoleInitiator Role = iota + 1
	RoleCounterparty
)

func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return "initiator"
	case RoleCounterparty:
		return "counterparty"
	}
	return "unknown"
}

// Bind resolves the caller's role in the session. The first caller other
// than the initiator claims the counterparty seat; the returned patch records
// the claim and is empty otherwise.
func Bind(s *domain.Session, callerID string) (Role, domain.SessionPatch, error) {
	if callerID == "" {
		return 0, domain.SessionPatch{}, domain.ErrUnauthorized
	}

	switch {
	case s.InitiatorID == "":
		return RoleInitiator, domain.SessionPatch{InitiatorID: &callerID}, nil
	case s.InitiatorID == callerID:
		return RoleInitiator, domain.SessionPatch{}, nil
	case s.CounterpartyID == callerID:
		return RoleCounterparty, domain.SessionPatch{}, nil
	case s.CounterpartyID == "":
		return RoleCounterparty, domain.SessionPatch{CounterpartyID: &callerID}, nil
	default:
		return 0, domain.SessionPatch{}, fmt.Errorf("%w: caller is not a party to this session", domain.ErrForbidden)
	}
}

// Require binds the caller and checks that the resulting role is want.
func Require(s *domain.Session, callerID string, want Role) (domain.SessionPatch, error) {
	role, claim, err := Bind(s, callerID)
	if err != nil {
		return domain.SessionPatch{}, err
	}
	if role != want {
		return domain.SessionPatch{}, fmt.Errorf("%w: only the %s may do this", domain.ErrForbidden, want)
	}
	return claim, nil
}

// Authorize checks that a raw update only touches fields owned by role.
// Preferences, options and the selection belong to the initiator; the
// confirmation flag belongs to the counterparty.
func Authorize(role Role, patch domain.SessionPatch) error {
	initiatorFields := patch.Preferences != nil || patch.Options != nil ||
		patch.Selection != nil || patch.ClearSelection
	if initiatorFields && role != RoleInitiator {
		return fmt.Errorf("%w: only the %s may change preferences, options or the selection", domain.ErrForbidden, RoleInitiator)
	}
	if patch.CounterpartyConfirmed != nil && role != RoleCounterparty {
		return fmt.Errorf("%w: only the %s may confirm", domain.ErrForbidden, RoleCounterparty)
	}
	return nil
}

// CanRead allows the two parties, and anyone while the counterparty seat is
// still open so a shared link can be joined.
func CanRead(s *domain.Session, callerID string) error {
	if callerID == "" {
		return domain.ErrUnauthorized
	}
	if s.InitiatorID == "" || s.CounterpartyID == "" ||
		callerID == s.InitiatorID || callerID == s.CounterpartyID {
		return nil
	}
	return fmt.Errorf("%w: caller is not a party to this session", domain.ErrForbidden)
}

// Merge combines patches; fields set in later patches win.
func Merge(patches ...domain.SessionPatch) domain.SessionPatch {
	var out domain.SessionPatch
	for _, p := range patches {
		if p.Preferences != nil {
			out.Preferences = p.Preferences
		}
		if p.Options != nil {
			out.Options = p.Options
		}
		if p.Selection != nil {
			out.Selection = p.Selection
			out.ClearSelection = false
		}
		if p.ClearSelection {
			out.ClearSelection = true
			out.Selection = nil
		}
		if p.CounterpartyConfirmed != nil {
			out.CounterpartyConfirmed = p.CounterpartyConfirmed
		}
		if p.SeenPlaces != nil {
			out.SeenPlaces = p.SeenPlaces
		}
		if p.AttemptCount != nil {
			out.AttemptCount = p.AttemptCount
		}
		if p.InitiatorID != nil {
			out.InitiatorID = p.InitiatorID
		}
		if p.CounterpartyID != nil {
			out.CounterpartyID = p.CounterpartyID
		}
	}
	return out
}
