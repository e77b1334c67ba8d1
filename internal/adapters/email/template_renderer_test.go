package email

import (
	"testing"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_EventCreated(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("event_created", &domain.EventCreatedEmailData{
		ParentEmail: "parent@example.com",
		ChildName:   "Ana",
		AgeTurning:  7,
		EventDate:   time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC),
		Description: "Cake and games",
		AdminURL:    "https://example.com/admin/tok-a",
		GuestURL:    "https://example.com/event/tok-g",
	})
	require.NoError(t, err)
	assert.Equal(t, "Birthday event for Ana created", subject)
	assert.Contains(t, html, "https://example.com/admin/tok-a")
	assert.Contains(t, html, "https://example.com/event/tok-g")
	assert.Contains(t, html, "Ana's 7th birthday")
	assert.Contains(t, text, "https://example.com/event/tok-g")
}

func TestTemplateRenderer_RSVPConfirmation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("rsvp_confirmation", &domain.RSVPConfirmationEmailData{
		ParentEmail: "guest@example.com",
		EventName:   "Ana's 7th Birthday Party",
		EventDate:   time.Date(2025, 12, 25, 15, 0, 0, 0, time.UTC),
		Description: "Cake and games",
	})
	require.NoError(t, err)
	assert.Equal(t, "RSVP confirmed for Ana's 7th Birthday Party", subject)
	assert.Contains(t, html, "calendar invite")
	assert.Contains(t, text, "Ana's 7th Birthday Party")
}

func TestTemplateRenderer_RSVPNotice(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, _, err := r.Render("rsvp_notice", &domain.NewRSVPNoticeEmailData{
		ParentEmail:    "parent@example.com",
		EventName:      "Ana's 7th Birthday Party",
		GuestChildName: "Ben",
		RSVPCount:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, "New RSVP for Ana's 7th Birthday Party", subject)
	assert.Contains(t, html, "Ben")
	assert.Contains(t, html, "3")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
