package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID   map[int]*domain.Event
	nextID int
	err    error // if set, every call returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[int]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByGuestToken(ctx context.Context, token string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.GuestToken == token {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetByAdminToken(ctx context.Context, token string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.AdminToken == token {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, id int, upd *domain.EventUpdate) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.ParentEmail = upd.ParentEmail
	e.ChildName = upd.ChildName
	e.AgeTurning = upd.AgeTurning
	e.EventDate = upd.EventDate
	e.Description = upd.Description
	e.Interests = upd.Interests
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeTokenGen issues a deterministic token sequence.
type fakeTokenGen struct {
	n   int
	err error
}

func (f *fakeTokenGen) Generate() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.n++
	return fmt.Sprintf("token-%d", f.n), nil
}

// fakeEmailService records sent emails and can fail on demand.
type fakeEmailService struct {
	created       []*domain.EventCreatedEmailData
	confirmations []*domain.RSVPConfirmationEmailData
	notices       []*domain.NewRSVPNoticeEmailData
	err           error
}

func (f *fakeEmailService) SendEventCreated(ctx context.Context, data *domain.EventCreatedEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, data)
	return nil
}

func (f *fakeEmailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.confirmations = append(f.confirmations, data)
	return nil
}

func (f *fakeEmailService) SendNewRSVPNotice(ctx context.Context, data *domain.NewRSVPNoticeEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.notices = append(f.notices, data)
	return nil
}

func newTestEventService(repo *fakeEventRepo, emails *fakeEmailService) domain.EventService {
	return NewEventService(repo, &fakeTokenGen{}, emails, testLogger, "https://party.example.com", 5*time.Second)
}

func testEvent() *domain.Event {
	return domain.NewEvent(
		"parent@example.com", "Ana", 7,
		time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC),
		"Cake and games",
		[]string{"Science", "Music"},
	)
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	emails := &fakeEmailService{}
	svc := newTestEventService(repo, emails)

	event := testEvent()
	require.NoError(t, svc.CreateEvent(ctx, event))

	assert.Equal(t, 1, event.ID)
	assert.NotEmpty(t, event.AdminToken)
	assert.NotEmpty(t, event.GuestToken)
	assert.NotEqual(t, event.AdminToken, event.GuestToken)
	assert.False(t, event.CreatedAt.IsZero())

	// Retrievable by both tokens.
	byAdmin, err := svc.GetEventByAdminToken(ctx, event.AdminToken)
	require.NoError(t, err)
	assert.Equal(t, event.ID, byAdmin.ID)
	byGuest, err := svc.GetEventByGuestToken(ctx, event.GuestToken)
	require.NoError(t, err)
	assert.Equal(t, event.ID, byGuest.ID)

	// Creation email carries both links.
	require.Len(t, emails.created, 1)
	assert.Equal(t, "parent@example.com", emails.created[0].ParentEmail)
	assert.True(t, strings.HasSuffix(emails.created[0].AdminURL, "/admin/"+event.AdminToken))
	assert.True(t, strings.HasSuffix(emails.created[0].GuestURL, "/event/"+event.GuestToken))
}

func TestEventService_CreateEvent_EmailFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	emails := &fakeEmailService{err: errors.New("smtp down")}
	svc := newTestEventService(repo, emails)

	event := testEvent()
	require.NoError(t, svc.CreateEvent(ctx, event))
	assert.Equal(t, 1, event.ID)
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.err = errors.New("db down")
	emails := &fakeEmailService{}
	svc := newTestEventService(repo, emails)

	require.Error(t, svc.CreateEvent(ctx, testEvent()))
	assert.Empty(t, emails.created)
}

func TestEventService_GetEventByGuestToken_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService(newFakeEventRepo(), &fakeEmailService{})

	_, err := svc.GetEventByGuestToken(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_GetEventByAdminToken_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService(newFakeEventRepo(), &fakeEmailService{})

	_, err := svc.GetEventByAdminToken(ctx, "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := newTestEventService(repo, &fakeEmailService{})

	event := testEvent()
	require.NoError(t, svc.CreateEvent(ctx, event))

	updated, err := svc.UpdateEvent(ctx, event.AdminToken, &domain.EventUpdate{
		ParentEmail: "parent@example.com",
		ChildName:   "Ana",
		AgeTurning:  8,
		EventDate:   event.EventDate,
		Description: "New plan",
		Interests:   []string{"Sports"},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.AgeTurning)
	assert.Equal(t, "New plan", updated.Description)
	assert.Equal(t, []string{"Sports"}, updated.Interests)
	// Tokens survive updates.
	assert.Equal(t, event.AdminToken, updated.AdminToken)
	assert.Equal(t, event.GuestToken, updated.GuestToken)
}

func TestEventService_UpdateEvent_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService(newFakeEventRepo(), &fakeEmailService{})

	_, err := svc.UpdateEvent(ctx, "nope", &domain.EventUpdate{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := newTestEventService(repo, &fakeEmailService{})

	event := testEvent()
	require.NoError(t, svc.CreateEvent(ctx, event))
	require.NoError(t, svc.DeleteEvent(ctx, event.AdminToken))

	_, err := svc.GetEventByAdminToken(ctx, event.AdminToken)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetEventByGuestToken(ctx, event.GuestToken)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_DeleteEvent_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestEventService(newFakeEventRepo(), &fakeEmailService{})

	require.ErrorIs(t, svc.DeleteEvent(ctx, "nope"), domain.ErrNotFound)
}

func TestEventService_CreateEvent_TokenGenError(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(newFakeEventRepo(), &fakeTokenGen{err: errors.New("entropy gone")},
		&fakeEmailService{}, testLogger, "https://party.example.com", 5*time.Second)

	require.Error(t, svc.CreateEvent(ctx, testEvent()))
}
