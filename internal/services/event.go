package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	tokens         domain.TokenGenerator
	emailService   domain.EmailService
	logger         *slog.Logger
	baseURL        string
	contextTimeout time.Duration
}

// NewEventService creates an EventService. baseURL is the public URL used to
// build the admin and guest links embedded in the creation email.
func NewEventService(
	eventRepo domain.EventRepository,
	tokens domain.TokenGenerator,
	emailService domain.EmailService,
	logger *slog.Logger,
	baseURL string,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		tokens:         tokens,
		emailService:   emailService,
		logger:         logger,
		baseURL:        baseURL,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	adminToken, err := s.tokens.Generate()
	if err != nil {
		return fmt.Errorf("generate admin token: %w", err)
	}
	guestToken, err := s.tokens.Generate()
	if err != nil {
		return fmt.Errorf("generate guest token: %w", err)
	}
	event.AdminToken = adminToken
	event.GuestToken = guestToken
	event.CreatedAt = time.Now()
	if event.Interests == nil {
		event.Interests = []string{}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	// Email is best-effort: the event is persisted regardless of delivery.
	data := &domain.EventCreatedEmailData{
		ParentEmail: event.ParentEmail,
		ChildName:   event.ChildName,
		AgeTurning:  event.AgeTurning,
		EventDate:   event.EventDate,
		Description: event.Description,
		AdminURL:    s.pageURL("admin", event.AdminToken),
		GuestURL:    s.pageURL("event", event.GuestToken),
	}
	if err := s.emailService.SendEventCreated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "event creation email failed", "event_id", event.ID, "err", err)
	}
	return nil
}

func (s *eventService) GetEventByGuestToken(ctx context.Context, token string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByGuestToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by guest token: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByAdminToken(ctx context.Context, token string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByAdminToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by admin token: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, adminToken string, upd *domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByAdminToken(ctx, adminToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by admin token: %w", err)
	}
	if upd.Interests == nil {
		upd.Interests = []string{}
	}

	updated, err := s.eventRepo.Update(ctx, event.ID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, adminToken string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByAdminToken(ctx, adminToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event by admin token: %w", err)
	}

	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) pageURL(page, token string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, page, url.PathEscape(token))
}
