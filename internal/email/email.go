package email

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/wneessen/go-mail"
)

type transport interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Sender delivers booking notifications over SMTP. Without a configured host
// it only logs what would have been sent.
type Sender struct {
	from   string
	client transport
	logf   func(format string, args ...any)
}

func NewSender(cfg config.SMTPConfig) (*Sender, error) {
	s := &Sender{from: cfg.From, logf: log.Printf}
	if cfg.Host == "" {
		return s, nil
	}

	opts := []mail.Option{mail.WithPort(cfg.Port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return errors.New("booking event has no recipient")
	}
	subject := Subject(event)
	if s.client == nil {
		s.logf("[EMAIL] to=%s subject=%q", event.Email, subject)
		return nil
	}

	msg, err := s.message(event, subject)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send to %s: %w", event.Email, err)
	}
	s.logf("[EMAIL] sent to=%s subject=%q", event.Email, subject)
	return nil
}

func (s *Sender) message(event kafka.BookingEvent, subject string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("set from %q: %w", s.from, err)
	}
	if err := msg.To(event.Email); err != nil {
		return nil, fmt.Errorf("set to %q: %w", event.Email, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, Body(event))
	return msg, nil
}

// Subject renders the notification subject line for an event.
func Subject(event kafka.BookingEvent) string {
	switch event.Type {
	case "booking_created":
		return fmt.Sprintf("Booking confirmed: flight %d, seat %s", event.FlightID, event.Seat)
	default:
		return fmt.Sprintf("Booking update (%s): flight %d", event.Type, event.FlightID)
	}
}

func Body(event kafka.BookingEvent) string {
	return fmt.Sprintf("Hello %s,\n\nbooking #%d on flight %d, seat %s is now %s.\n",
		event.PassengerName, event.BookingID, event.FlightID, event.Seat, event.Status)
}
