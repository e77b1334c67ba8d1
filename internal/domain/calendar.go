package domain

import "time"

// DefaultInviteDuration is used when a calendar event has no explicit end.
const DefaultInviteDuration = 2 * time.Hour

// CalendarEvent describes the time window and text of a calendar invite.
// A zero End means Start plus DefaultInviteDuration.
type CalendarEvent struct {
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
}

// InviteBuilder renders a CalendarEvent as an iCalendar document.
type InviteBuilder interface {
	Build(event CalendarEvent) (string, error)
}
