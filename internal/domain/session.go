package domain

import "time"

type Preferences struct {
	Location string  `json:"location" dynamodbav:"location"`
	Radius   float64 `json:"radius" dynamodbav:"radius"`
	Time     string  `json:"time" dynamodbav:"time"`
	Activity string  `json:"activity" dynamodbav:"activity"`
}

// Option is a candidate venue produced by the recommendation source.
// Field names follow the wire contract shared with the web client.
type Option struct {
	Name          string  `json:"name" dynamodbav:"name"`
	Address       string  `json:"address,omitempty" dynamodbav:"address,omitempty"`
	Rating        float64 `json:"rating,omitempty" dynamodbav:"rating,omitempty"`
	Popularity    string  `json:"popularity,omitempty" dynamodbav:"popularity,omitempty"`
	Reason        string  `json:"reason,omitempty" dynamodbav:"reason,omitempty"`
	MapURL        string  `json:"mapUrl,omitempty" dynamodbav:"mapUrl,omitempty"`
	IsRecommended bool    `json:"isRecommended,omitempty" dynamodbav:"isRecommended,omitempty"`
}

// Session is the ephemeral two-party negotiation record.
type Session struct {
	ID                    string       `json:"sessionId" dynamodbav:"sessionId"`
	Preferences           *Preferences `json:"preferences" dynamodbav:"preferences,omitempty"`
	Options               []Option     `json:"options" dynamodbav:"options"`
	InitiatorSelection    *Option      `json:"userASelection" dynamodbav:"userASelection,omitempty"`
	CounterpartyConfirmed bool         `json:"userBConfirmed" dynamodbav:"userBConfirmed"`
	SeenPlaces            []string     `json:"seenPlaces" dynamodbav:"seenPlaces,omitempty"`
	AttemptCount          int          `json:"attemptCount" dynamodbav:"attemptCount"`
	InitiatorID           string       `json:"initiatorId,omitempty" dynamodbav:"initiatorId,omitempty"`
	CounterpartyID        string       `json:"counterpartyId,omitempty" dynamodbav:"counterpartyId,omitempty"`
	CreatedAt             time.Time    `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt             time.Time    `json:"updatedAt" dynamodbav:"updatedAt"`
}

// HasOption reports whether an option with the given name is among the
// currently stored options.
func (s *Session) HasOption(name string) (Option, bool) {
	for _, o := range s.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// SessionPatch is a field-level update. Nil fields are left untouched.
// ClearSelection removes the initiator selection; it wins over Selection.
type SessionPatch struct {
	Preferences           *Preferences
	Options               *[]Option
	Selection             *Option
	ClearSelection        bool
	CounterpartyConfirmed *bool
	SeenPlaces            *[]string
	AttemptCount          *int
	InitiatorID           *string
	CounterpartyID        *string
}

func (p SessionPatch) IsEmpty() bool {
	return p.Preferences == nil && p.Options == nil && p.Selection == nil && !p.ClearSelection &&
		p.CounterpartyConfirmed == nil && p.SeenPlaces == nil && p.AttemptCount == nil &&
		p.InitiatorID == nil && p.CounterpartyID == nil
}

// Apply merges the patch into s in place.
func (p SessionPatch) Apply(s *Session) {
	if p.Preferences != nil {
		prefs := *p.Preferences
		s.Preferences = &prefs
	}
	if p.Options != nil {
		s.Options = CloneOptions(*p.Options)
	}
	if p.Selection != nil {
		sel := *p.Selection
		s.InitiatorSelection = &sel
	}
	if p.ClearSelection {
		s.InitiatorSelection = nil
	}
	if p.CounterpartyConfirmed != nil {
		s.CounterpartyConfirmed = *p.CounterpartyConfirmed
	}
	if p.SeenPlaces != nil {
		s.SeenPlaces = append([]string(nil), (*p.SeenPlaces)...)
	}
	if p.AttemptCount != nil {
		s.AttemptCount = *p.AttemptCount
	}
	if p.InitiatorID != nil {
		s.InitiatorID = *p.InitiatorID
	}
	if p.CounterpartyID != nil {
		s.CounterpartyID = *p.CounterpartyID
	}
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	c := *s
	if s.Preferences != nil {
		prefs := *s.Preferences
		c.Preferences = &prefs
	}
	if s.InitiatorSelection != nil {
		sel := *s.InitiatorSelection
		c.InitiatorSelection = &sel
	}
	c.Options = CloneOptions(s.Options)
	c.SeenPlaces = append([]string(nil), s.SeenPlaces...)
	return &c
}

func CloneOptions(opts []Option) []Option {
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// RecommendationQuery is what the recommendation source is asked for.
type RecommendationQuery struct {
	Preferences Preferences
	Exclude     []string
}
