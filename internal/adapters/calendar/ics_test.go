package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTokens returns the same UID for every invite.
type fixedTokens struct{ token string }

func (f fixedTokens) Generate() (string, error) { return f.token, nil }

func buildLines(t *testing.T, event domain.CalendarEvent) []string {
	t.Helper()
	b := &icsBuilder{
		tokens: fixedTokens{token: "uid-123"},
		now:    func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
	out, err := b.Build(event)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\r\n"))
	return strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
}

func TestICSBuilder_FieldOrder(t *testing.T) {
	lines := buildLines(t, domain.CalendarEvent{
		Start:       time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		End:         time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
		Summary:     "Ana's 7th Birthday Party",
		Description: "Cake and games",
		Location:    "12 Park Lane",
	})

	want := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//BirthdayBuddy//EN",
		"BEGIN:VEVENT",
		"UID:uid-123",
		"DTSTAMP:20250501T120000Z",
		"DTSTART:20250601T180000Z",
		"DTEND:20250601T200000Z",
		"SUMMARY:Ana's 7th Birthday Party",
		"DESCRIPTION:Cake and games",
		"LOCATION:12 Park Lane",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	assert.Equal(t, want, lines)
}

func TestICSBuilder_DefaultTwoHourDuration(t *testing.T) {
	lines := buildLines(t, domain.CalendarEvent{
		Start:       time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Summary:     "Party",
		Description: "Details",
	})

	assert.Contains(t, lines, "DTSTART:20250601T180000Z")
	assert.Contains(t, lines, "DTEND:20250601T200000Z")
}

func TestICSBuilder_OmitsEmptyLocation(t *testing.T) {
	lines := buildLines(t, domain.CalendarEvent{
		Start:       time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Summary:     "Party",
		Description: "Details",
	})
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, "LOCATION:"), line)
	}
}

func TestICSBuilder_TimesRenderedInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	lines := buildLines(t, domain.CalendarEvent{
		Start:       time.Date(2025, 12, 25, 18, 0, 0, 0, loc),
		Summary:     "Party",
		Description: "Details",
	})
	assert.Contains(t, lines, "DTSTART:20251225T150000Z")
}

func TestICSBuilder_EscapesReservedCharacters(t *testing.T) {
	lines := buildLines(t, domain.CalendarEvent{
		Start:       time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Summary:     "Cake, games; fun",
		Description: "Line one\nLine two",
	})
	assert.Contains(t, lines, `SUMMARY:Cake\, games\; fun`)
	assert.Contains(t, lines, `DESCRIPTION:Line one\nLine two`)
}
