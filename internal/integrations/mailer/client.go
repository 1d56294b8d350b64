package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/primebarbervip/PrimeBarberClub/internal/config"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client sends transactional email over SMTP. Delivery is best-effort:
// callers log failures but never fail the business operation.
type Client struct {
	smtp    *mail.Client
	from    string
	enabled bool
	logger  Logger
}

// NewClient builds the SMTP client from config. When mail is disabled
// the client is returned in a no-op state.
func NewClient(cfg config.MailConfig, logger Logger) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false, logger: logger}, nil
	}

	smtp, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create smtp client: %v", ErrBuildMessage, err)
	}

	return &Client{
		smtp:    smtp,
		from:    cfg.From,
		enabled: true,
		logger:  logger,
	}, nil
}

// SendConfirmation emails the appointment ticket to the client.
func (c *Client) SendConfirmation(ctx context.Context, to string, data TicketData) error {
	if !c.enabled {
		return ErrDisabled
	}

	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("%w: set from: %v", ErrBuildMessage, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: set to: %v", ErrBuildMessage, err)
	}
	msg.Subject(fmt.Sprintf("%s - Cita confirmada", data.ShopName))
	if err := msg.SetBodyHTMLTemplate(confirmationTemplate, data); err != nil {
		return fmt.Errorf("%w: render body: %v", ErrBuildMessage, err)
	}

	if err := c.smtp.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	c.logger.Info("Confirmation email sent: to=%s", to)
	return nil
}
