// Package calendar renders iCalendar (RFC 5545) invite documents for event
// confirmations. Field order is fixed so calendar clients can round-trip the
// output.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

const prodID = "-//BirthdayBuddy//EN"

// icsTimeLayout is the UTC basic format required for DTSTART/DTEND/DTSTAMP.
const icsTimeLayout = "20060102T150405Z"

type icsBuilder struct {
	tokens domain.TokenGenerator
	now    func() time.Time
}

// NewICSBuilder returns an InviteBuilder that renders VCALENDAR documents.
// The token generator supplies the per-invite UID.
func NewICSBuilder(tokens domain.TokenGenerator) domain.InviteBuilder {
	return &icsBuilder{tokens: tokens, now: time.Now}
}

func (b *icsBuilder) Build(event domain.CalendarEvent) (string, error) {
	uid, err := b.tokens.Generate()
	if err != nil {
		return "", fmt.Errorf("generate invite uid: %w", err)
	}

	end := event.End
	if end.IsZero() {
		end = event.Start.Add(domain.DefaultInviteDuration)
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + b.now().UTC().Format(icsTimeLayout),
		"DTSTART:" + event.Start.UTC().Format(icsTimeLayout),
		"DTEND:" + end.UTC().Format(icsTimeLayout),
		"SUMMARY:" + escapeText(event.Summary),
		"DESCRIPTION:" + escapeText(event.Description),
	}
	if event.Location != "" {
		lines = append(lines, "LOCATION:"+escapeText(event.Location))
	}
	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	// RFC 5545 content lines end with CRLF.
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// escapeText escapes the characters RFC 5545 reserves in TEXT values.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
