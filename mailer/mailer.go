package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/simhonchourasia/playbet-be/config"
	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

type sendFunc func(ctx context.Context, msg *mail.Msg) error

var headerSafe = strings.NewReplacer("\r", "", "\n", "")

// SMTPMailer sends plain text mail. Without a host it only logs what it would have sent.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	log  logrus.FieldLogger
	send sendFunc
	now  func() time.Time
}

func New(cfg config.SMTPConfig, log logrus.FieldLogger) *SMTPMailer {
	m := &SMTPMailer{
		cfg: cfg,
		log: log.WithField("component", "mailer"),
		now: time.Now,
	}
	m.send = m.dialAndSend
	return m
}

func (m *SMTPMailer) Enabled() bool {
	return m.cfg.Host != ""
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !m.Enabled() {
		m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Warn("smtp not configured, mail dropped")
		return nil
	}

	msg, err := m.message(to, subject, body)
	if err != nil {
		return err
	}
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	m.log.WithField("to", to).Debug("mail sent")
	return nil
}

func (m *SMTPMailer) from() string {
	if m.cfg.From != "" {
		return m.cfg.From
	}
	return m.cfg.Username
}

func (m *SMTPMailer) message(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from()); err != nil {
		return nil, fmt.Errorf("smtp from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp recipient %q: %w", to, err)
	}
	msg.Subject(headerSafe.Replace(subject))
	msg.SetDateWithValue(m.now())
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if m.cfg.Port != 0 {
		opts = append(opts, mail.WithPort(m.cfg.Port))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}
