package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/VinhCT16/SWP391-G5-sub002/internal/config"
	"github.com/VinhCT16/SWP391-G5-sub002/internal/model"
)

// Mailer sends contract notification emails over SMTP. It is the notifier
// wired in production; transitions never wait on it for correctness, so a
// delivery failure surfaces only as a warning in the caller's log.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    zerolog.Logger
}

func New(cfg config.SMTPConfig, log zerolog.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (m *Mailer) ContractIssued(ctx context.Context, payload model.ContractIssuedNotification) error {
	subject := fmt.Sprintf("Your moving contract %s is ready", payload.Contract.ContractNumber)
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"Your move request from %s to %s has been approved and contract %s has been issued.\r\n"+
			"Scheduled date: %s\r\n"+
			"Total price: %d VND\r\n\r\n"+
			"Please review and accept the contract in your account.\r\n\r\n"+
			"Best regards,\r\nG5 Moving Service",
		payload.CustomerName,
		payload.Request.PickupAddress,
		payload.Request.DropoffAddress,
		payload.Contract.ContractNumber,
		payload.Request.ScheduledAt.Format("02.01.2006 15:04"),
		payload.Contract.Pricing.Total,
	)
	return m.send(ctx, payload.CustomerEmail, subject, body)
}

func (m *Mailer) ContractRejected(ctx context.Context, payload model.ContractRejectedNotification) error {
	subject := "Your moving contract was rejected"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\n"+
			"The contract for your move from %s to %s was rejected.\r\n"+
			"Reason: %s\r\n\r\n"+
			"You are welcome to submit a new request.\r\n\r\n"+
			"Best regards,\r\nG5 Moving Service",
		payload.CustomerName,
		payload.Request.PickupAddress,
		payload.Request.DropoffAddress,
		payload.RejectionReason,
	)
	return m.send(ctx, payload.CustomerEmail, subject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.log.Debug().Str("to", to).Str("subject", subject).Msg("notification sent")
	return nil
}

// NoopNotifier is used when SMTP is not configured (local development,
// tests). It records nothing and always succeeds.
type NoopNotifier struct {
	log zerolog.Logger
}

func NewNoopNotifier(log zerolog.Logger) *NoopNotifier {
	return &NoopNotifier{log: log}
}

func (n *NoopNotifier) ContractIssued(_ context.Context, payload model.ContractIssuedNotification) error {
	n.log.Info().Str("to", payload.CustomerEmail).Msg("skipping issue email: smtp not configured")
	return nil
}

func (n *NoopNotifier) ContractRejected(_ context.Context, payload model.ContractRejectedNotification) error {
	n.log.Info().Str("to", payload.CustomerEmail).Msg("skipping rejection email: smtp not configured")
	return nil
}
