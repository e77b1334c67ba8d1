package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when no row matches the lookup (unknown token or ID).
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for requests that fail business-level validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Event represents a birthday party event created by a parent.
// swagger:model Event
type Event struct {
	ID          int       `json:"id"`
	ParentEmail string    `json:"parent_email"`
	ChildName   string    `json:"child_name"`
	AgeTurning  int       `json:"age_turning"`
	EventDate   time.Time `json:"event_date"`
	Description string    `json:"description"`
	Interests   []string  `json:"interests"`
	AdminToken  string    `json:"admin_token"`
	GuestToken  string    `json:"guest_token"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID and tokens are set
// by the service/repository on create.
func NewEvent(parentEmail, childName string, ageTurning int, eventDate time.Time, description string, interests []string) *Event {
	return &Event{
		ParentEmail: parentEmail,
		ChildName:   childName,
		AgeTurning:  ageTurning,
		EventDate:   eventDate,
		Description: description,
		Interests:   interests,
	}
}

// GuestView is the event projection returned to guest-token holders.
// It never carries the admin token; the guest token is the credential the
// caller already holds. Gift suggestions are derived from the interests.
// swagger:model GuestView
type GuestView struct {
	ID              int       `json:"id"`
	ChildName       string    `json:"child_name"`
	AgeTurning      int       `json:"age_turning"`
	EventDate       time.Time `json:"event_date"`
	Description     string    `json:"description"`
	Interests       []string  `json:"interests"`
	GuestToken      string    `json:"guest_token"`
	GiftSuggestions []string  `json:"gift_suggestions"`
}

// GuestProjection returns the guest-safe view of the event.
func (e *Event) GuestProjection() *GuestView {
	return &GuestView{
		ID:              e.ID,
		ChildName:       e.ChildName,
		AgeTurning:      e.AgeTurning,
		EventDate:       e.EventDate,
		Description:     e.Description,
		Interests:       e.Interests,
		GuestToken:      e.GuestToken,
		GiftSuggestions: SuggestGifts(e.Interests),
	}
}

// EventUpdate carries the mutable event fields for the update operation.
// All fields are overwritten; the tokens and timestamps are not touched.
type EventUpdate struct {
	ParentEmail string
	ChildName   string
	AgeTurning  int
	EventDate   time.Time
	Description string
	Interests   []string
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByGuestToken(ctx context.Context, token string) (*Event, error)
	GetByAdminToken(ctx context.Context, token string) (*Event, error)
	Update(ctx context.Context, id int, upd *EventUpdate) (*Event, error)
	// Delete removes the event and all its RSVPs in a single transaction.
	Delete(ctx context.Context, id int) error
}

// EventService defines the organizer-facing operations.
type EventService interface {
	// CreateEvent issues the admin and guest tokens, persists the event, and
	// sends the creation email (best-effort). The tokens are set on event.
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByGuestToken(ctx context.Context, token string) (*Event, error)
	GetEventByAdminToken(ctx context.Context, token string) (*Event, error)
	UpdateEvent(ctx context.Context, adminToken string, upd *EventUpdate) (*Event, error)
	// DeleteEvent cancels the event and cascades deletion of its RSVPs.
	DeleteEvent(ctx context.Context, adminToken string) error
}

// TokenGenerator produces opaque bearer tokens for admin and guest access.
type TokenGenerator interface {
	Generate() (string, error)
}
