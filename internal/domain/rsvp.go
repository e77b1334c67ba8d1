package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateRSVP is returned when the same respondent email RSVPs twice to
// one event. Callers match on this instead of sniffing error messages.
var ErrDuplicateRSVP = errors.New("respondent has already RSVPed to this event")

// BirthMonths is the fixed set of accepted child birth month values.
var BirthMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsBirthMonth reports whether s is one of the twelve accepted month names.
func IsBirthMonth(s string) bool {
	for _, m := range BirthMonths {
		if m == s {
			return true
		}
	}
	return false
}

// RSVP represents a guest's response to an event.
// swagger:model RSVP
type RSVP struct {
	ID              int       `json:"id"`
	EventID         int       `json:"event_id"`
	ParentEmail     string    `json:"parent_email"`
	ChildName       string    `json:"child_name"`
	ChildBirthMonth string    `json:"child_birth_month"`
	ReceiveUpdates  bool      `json:"receive_updates"`
	Attending       bool      `json:"attending"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewRSVP returns a new RSVP with the given fields. ID is set by the
// repository on create.
func NewRSVP(eventID int, parentEmail, childName, childBirthMonth string, receiveUpdates, attending bool) *RSVP {
	return &RSVP{
		EventID:         eventID,
		ParentEmail:     parentEmail,
		ChildName:       childName,
		ChildBirthMonth: childBirthMonth,
		ReceiveUpdates:  receiveUpdates,
		Attending:       attending,
	}
}

// RSVPSummary is the public-safe subset of an RSVP exposed to guest-token
// holders. Respondent emails and opt-in flags stay private.
// swagger:model RSVPSummary
type RSVPSummary struct {
	ChildName       string `json:"child_name"`
	ChildBirthMonth string `json:"child_birth_month"`
	Attending       bool   `json:"attending"`
}

// Summary returns the guest-safe view of the RSVP.
func (r *RSVP) Summary() *RSVPSummary {
	return &RSVPSummary{
		ChildName:       r.ChildName,
		ChildBirthMonth: r.ChildBirthMonth,
		Attending:       r.Attending,
	}
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	// Create persists the RSVP. A second RSVP from the same respondent email
	// for the same event returns ErrDuplicateRSVP.
	Create(ctx context.Context, rsvp *RSVP) error
	CountByEventID(ctx context.Context, eventID int) (int, error)
	ListByEventID(ctx context.Context, eventID int) ([]*RSVP, error)
}

// RSVPService defines the guest-facing RSVP operations. Guest operations
// authenticate by guest token, admin operations by admin token.
type RSVPService interface {
	// SubmitRSVP persists the RSVP for the event matching guestToken, then
	// sends the confirmation email with a calendar invite attached and, when
	// the respondent opted into updates, a notice to the organizer. Email
	// delivery is best-effort and never fails the submission.
	SubmitRSVP(ctx context.Context, guestToken string, rsvp *RSVP) error
	CountRSVPs(ctx context.Context, guestToken string) (int, error)
	ListRSVPSummaries(ctx context.Context, guestToken string) ([]*RSVPSummary, error)
	ListRSVPs(ctx context.Context, adminToken string) ([]*RSVP, error)
}
