package domain

import (
	"context"
	"time"
)

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string, attachments []Attachment) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventCreatedEmailData holds data for the event-creation confirmation sent
// to the organizer. AdminURL and GuestURL are the management and RSVP links.
type EventCreatedEmailData struct {
	ParentEmail string
	ChildName   string
	AgeTurning  int
	EventDate   time.Time
	Description string
	AdminURL    string
	GuestURL    string
}

// RSVPConfirmationEmailData holds data for the confirmation sent to a
// respondent. CalendarICS, when non-empty, is attached as text/calendar.
type RSVPConfirmationEmailData struct {
	ParentEmail string
	EventName   string
	EventDate   time.Time
	Description string
	CalendarICS string
}

// NewRSVPNoticeEmailData holds data for the new-RSVP notice sent to the
// organizer when a respondent opts into updates.
type NewRSVPNoticeEmailData struct {
	ParentEmail    string
	EventName      string
	GuestChildName string
	RSVPCount      int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventCreated(ctx context.Context, data *EventCreatedEmailData) error
	SendRSVPConfirmation(ctx context.Context, data *RSVPConfirmationEmailData) error
	SendNewRSVPNotice(ctx context.Context, data *NewRSVPNoticeEmailData) error
}
