package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/dangolbeeker/streamhive/core"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates the transactional email sender. When mail is globally
// disabled, a discarding sender is returned so callers never special-case it.
func NewMailer(config core.Config) core.EmailSender {
	if !config.Mail.Enabled {
		return &discardMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Mail.Host, config.Mail.Port, config.Mail.Username, config.Mail.Password),
		from:   config.Mail.From,
	}
}

func (m *smtpMailer) Notify(ctx context.Context, recipient core.User, subject string, items []core.EmailItem) error {
	_, span := tracer.Start(ctx, "Notify.Mailer.Notify")
	defer span.End()

	if recipient.Email == "" {
		return errors.Errorf("user %s has no email address", recipient.ID)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", recipient.DisplayName)
	for _, item := range items {
		fmt.Fprintf(&body, "  - %s", item.Title)
		if item.Detail != "" {
			fmt.Fprintf(&body, " (%s)", item.Detail)
		}
		body.WriteString("\n")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", recipient.Email)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body.String())

	err := m.dialer.DialAndSend(message)
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "send mail to %s", recipient.Email)
	}
	return nil
}

type discardMailer struct{}

func (m *discardMailer) Notify(ctx context.Context, recipient core.User, subject string, items []core.EmailItem) error {
	slog.DebugContext(
		ctx,
		fmt.Sprintf("mail disabled, dropped %d item(s) for %s", len(items), recipient.ID),
		slog.String("module", "notify"),
	)
	return nil
}
