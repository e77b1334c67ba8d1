package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

type rsvpService struct {
	eventRepo      domain.EventRepository
	rsvpRepo       domain.RSVPRepository
	inviteBuilder  domain.InviteBuilder
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService creates an RSVPService with the given repositories and collaborators.
func NewRSVPService(
	eventRepo domain.EventRepository,
	rsvpRepo domain.RSVPRepository,
	inviteBuilder domain.InviteBuilder,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		eventRepo:      eventRepo,
		rsvpRepo:       rsvpRepo,
		inviteBuilder:  inviteBuilder,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) SubmitRSVP(ctx context.Context, guestToken string, rsvp *domain.RSVP) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByGuestToken(ctx, guestToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event by guest token: %w", err)
	}

	rsvp.EventID = event.ID
	rsvp.CreatedAt = time.Now()
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrDuplicateRSVP) {
			return domain.ErrDuplicateRSVP
		}
		return fmt.Errorf("create rsvp: %w", err)
	}

	s.sendRSVPEmails(ctx, event, rsvp)
	return nil
}

// sendRSVPEmails delivers the confirmation and the optional organizer notice.
// Both are best-effort: the RSVP stays persisted whatever happens here.
func (s *rsvpService) sendRSVPEmails(ctx context.Context, event *domain.Event, rsvp *domain.RSVP) {
	eventName := fmt.Sprintf("%s's %dth Birthday Party", event.ChildName, event.AgeTurning)

	ics, err := s.inviteBuilder.Build(domain.CalendarEvent{
		Start:       event.EventDate,
		Summary:     eventName,
		Description: event.Description,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "calendar invite build failed", "event_id", event.ID, "err", err)
		ics = ""
	}

	confirmation := &domain.RSVPConfirmationEmailData{
		ParentEmail: rsvp.ParentEmail,
		EventName:   eventName,
		EventDate:   event.EventDate,
		Description: event.Description,
		CalendarICS: ics,
	}
	if err := s.emailService.SendRSVPConfirmation(ctx, confirmation); err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation email failed", "event_id", event.ID, "err", err)
	}

	if !rsvp.ReceiveUpdates {
		return
	}
	count, err := s.rsvpRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "rsvp count for notice failed", "event_id", event.ID, "err", err)
		count = 0
	}
	notice := &domain.NewRSVPNoticeEmailData{
		ParentEmail:    event.ParentEmail,
		EventName:      eventName,
		GuestChildName: rsvp.ChildName,
		RSVPCount:      count,
	}
	if err := s.emailService.SendNewRSVPNotice(ctx, notice); err != nil {
		s.logger.WarnContext(ctx, "new rsvp notice email failed", "event_id", event.ID, "err", err)
	}
}

func (s *rsvpService) CountRSVPs(ctx context.Context, guestToken string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByGuestToken(ctx, guestToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get event by guest token: %w", err)
	}

	count, err := s.rsvpRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}
	return count, nil
}

func (s *rsvpService) ListRSVPSummaries(ctx context.Context, guestToken string) ([]*domain.RSVPSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByGuestToken(ctx, guestToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by guest token: %w", err)
	}

	rsvps, err := s.rsvpRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	summaries := make([]*domain.RSVPSummary, 0, len(rsvps))
	for _, rsvp := range rsvps {
		summaries = append(summaries, rsvp.Summary())
	}
	return summaries, nil
}

func (s *rsvpService) ListRSVPs(ctx context.Context, adminToken string) ([]*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByAdminToken(ctx, adminToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by admin token: %w", err)
	}

	rsvps, err := s.rsvpRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}
