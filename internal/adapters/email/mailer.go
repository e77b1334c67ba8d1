package email

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/heatonjb/BirthdayBuddy/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
}

// NewMailer creates a mailer from config. Provider "ses" uses AWS SES; "noop" or unknown uses a no-op mailer.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "ses":
		sesConfig := config.SES
		if config.SES.InsecureSkipVerify {
			log.Printf("[MAILER] WARNING: TLS certificate verification is disabled for SES. Use only in development.")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: sesConfig.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region: sesConfig.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					sesConfig.AccessKeyID,
					sesConfig.SecretAccessKey,
					"",
				),
			),
			HTTPClient: httpClient,
		}
		client := ses.NewFromConfig(awsCfg)
		return &sesMailer{
			client:      client,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		log.Printf("[MAILER] Unknown email provider %q, using noop", config.Provider)
		return &noopMailer{}, nil
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) Send(to, subject, html, text string, attachments []domain.Attachment) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	ctx := context.Background()

	// SendEmail has no attachment support, so messages with attachments go
	// through SendRawEmail with a hand-built MIME multipart body.
	if len(attachments) > 0 {
		raw := buildRawMessage(source, to, subject, html, text, attachments)
		result, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
			RawMessage: &types.RawMessage{Data: raw},
		})
		if err != nil {
			return fmt.Errorf("failed to send raw email via SES: %w", err)
		}
		log.Printf("[MAILER] Email with %d attachment(s) sent via SES. MessageID: %s", len(attachments), aws.ToString(result.MessageId))
		return nil
	}

	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if html != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(html),
			Charset: aws.String("UTF-8"),
		}
	}
	if text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

// buildRawMessage assembles a multipart/mixed MIME message: an alternative
// part with the text and html bodies, followed by base64-encoded attachments.
func buildRawMessage(from, to, subject, html, text string, attachments []domain.Attachment) []byte {
	const mixedBoundary = "birthdaybuddy-mixed"
	const altBoundary = "birthdaybuddy-alt"

	var b strings.Builder
	write := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\r\n", args...)
	}

	write("From: %s", from)
	write("To: %s", to)
	write("Subject: %s", subject)
	write("MIME-Version: 1.0")
	write("Content-Type: multipart/mixed; boundary=%q", mixedBoundary)
	write("")

	write("--%s", mixedBoundary)
	write("Content-Type: multipart/alternative; boundary=%q", altBoundary)
	write("")
	if text != "" {
		write("--%s", altBoundary)
		write("Content-Type: text/plain; charset=UTF-8")
		write("")
		write("%s", text)
	}
	if html != "" {
		write("--%s", altBoundary)
		write("Content-Type: text/html; charset=UTF-8")
		write("")
		write("%s", html)
	}
	write("--%s--", altBoundary)

	for _, att := range attachments {
		write("--%s", mixedBoundary)
		write("Content-Type: %s; name=%q", att.ContentType, att.Filename)
		write("Content-Disposition: attachment; filename=%q", att.Filename)
		write("Content-Transfer-Encoding: base64")
		write("")
		encoded := base64.StdEncoding.EncodeToString(att.Content)
		// Wrap base64 output at 76 characters per RFC 2045.
		for len(encoded) > 76 {
			write("%s", encoded[:76])
			encoded = encoded[76:]
		}
		write("%s", encoded)
	}
	write("--%s--", mixedBoundary)

	return []byte(b.String())
}

type noopMailer struct{}

func (n *noopMailer) Send(to, subject, html, text string, attachments []domain.Attachment) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", to, "subject", subject, "attachments", len(attachments))
	return nil
}
