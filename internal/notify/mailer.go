package notify

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/wneessen/go-mail"
)

// Message is a single HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers messages over SMTP, upgrading with STARTTLS when the server offers it.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // Reply-To address, also the envelope sender when Username is empty
	FromName string
}

// sender returns the envelope sender. Providers such as Gmail require it to match the login.
func (m *SMTPMailer) sender() string {
	if m.Username != "" {
		return m.Username
	}
	return m.From
}

func (m *SMTPMailer) newMsg(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.FromFormat(m.FromName, m.sender()); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	if m.From != "" {
		if err := out.ReplyTo(m.From); err != nil {
			return nil, fmt.Errorf("reply-to address: %w", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetDate()
	out.SetBodyString(mail.TypeTextHTML, msg.HTML)
	return out, nil
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.Username != "" && m.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.Username),
			mail.WithPassword(m.Password),
		)
	}
	return mail.NewClient(m.Host, opts...)
}

// Send delivers msg. The context deadline bounds the whole exchange.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out, err := m.newMsg(msg)
	if err != nil {
		return err
	}
	c, err := m.client()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	return nil
}

// LogMailer only logs messages. Used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	logger.Log.Infow("email not sent, smtp disabled", "to", msg.To, "subject", msg.Subject)
	return nil
}
