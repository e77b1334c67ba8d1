package services

import (
	"context"
	"fmt"
	"log"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendEventCreated sends the creation confirmation with the admin and guest
// links using the "event_created" template.
func (s *emailService) SendEventCreated(ctx context.Context, data *domain.EventCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("event created data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_created", data)
	if err != nil {
		return fmt.Errorf("failed to render event_created template: %w", err)
	}
	if err := s.mailer.Send(data.ParentEmail, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("failed to send event created email: %w", err)
	}
	log.Printf("[EMAIL] Event creation email sent to %s", data.ParentEmail)
	return nil
}

// SendRSVPConfirmation sends the respondent confirmation using the
// "rsvp_confirmation" template, attaching the calendar invite when present.
func (s *emailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_confirmation template: %w", err)
	}
	var attachments []domain.Attachment
	if data.CalendarICS != "" {
		attachments = []domain.Attachment{{
			Filename:    "invite.ics",
			ContentType: "text/calendar",
			Content:     []byte(data.CalendarICS),
		}}
	}
	if err := s.mailer.Send(data.ParentEmail, subject, htmlBody, textBody, attachments); err != nil {
		return fmt.Errorf("failed to send rsvp confirmation email: %w", err)
	}
	log.Printf("[EMAIL] RSVP confirmation sent to %s", data.ParentEmail)
	return nil
}

// SendNewRSVPNotice sends the organizer notice using the "rsvp_notice" template.
func (s *emailService) SendNewRSVPNotice(ctx context.Context, data *domain.NewRSVPNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("new rsvp notice data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_notice", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_notice template: %w", err)
	}
	if err := s.mailer.Send(data.ParentEmail, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("failed to send new rsvp notice email: %w", err)
	}
	log.Printf("[EMAIL] New RSVP notice sent to %s", data.ParentEmail)
	return nil
}
