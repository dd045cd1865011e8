package notify

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/naimkchao/barbershop-backend/internal/config"
	"github.com/naimkchao/barbershop-backend/internal/models"
)

// Service sends booking confirmations and reminders. Email via
// SendGrid, SMS via Twilio when configured. All sends are asynchronous
// and best-effort; a notification failure never fails a booking.
type Service struct {
	cfg *config.Config
	loc *time.Location
}

func New(cfg *config.Config, loc *time.Location) *Service {
	return &Service{cfg: cfg, loc: loc}
}

func (s *Service) BookingConfirmed(b *models.Booking, svc *models.Service, barber *models.Barber) {
	subject := fmt.Sprintf("Your booking #%d is confirmed", b.ID)
	start := b.StartTime.In(s.loc)

	plain := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking at Naim Kchao Barbershop is confirmed.\n\n"+
			"Booking number: %d\n"+
			"Service: %s\n"+
			"Barber: %s\n"+
			"Date: %s\n"+
			"Time: %s\n\n"+
			"See you soon!",
		b.CustomerName, b.ID, svc.Name, barber.Name,
		start.Format("02 Jan 2006"), start.Format("15:04"),
	)
	html := confirmationHTML(b, svc, barber, start)

	go func() {
		if err := s.sendEmail(b.CustomerEmail, b.CustomerName, subject, plain, html); err != nil {
			log.Printf("booking %d: confirmation email failed: %v", b.ID, err)
		}
	}()

	if s.cfg.TwilioSID != "" {
		sms := fmt.Sprintf(
			"Naim Kchao Barbershop: booking #%d confirmed for %s at %s.",
			b.ID, start.Format("02/01"), start.Format("15:04"),
		)
		go func() {
			if err := s.sendSMS(b.Phone, sms); err != nil {
				log.Printf("booking %d: confirmation SMS failed: %v", b.ID, err)
			}
		}()
	}
}

// BookingReminder is used by the daily cron for next-day appointments.
func (s *Service) BookingReminder(b *models.Booking) {
	start := b.StartTime.In(s.loc)
	subject := "Reminder: your appointment tomorrow"
	plain := fmt.Sprintf(
		"Hello %s,\n\nA reminder of your appointment at Naim Kchao Barbershop "+
			"tomorrow, %s at %s.\n\nSee you there!",
		b.CustomerName, start.Format("02 Jan 2006"), start.Format("15:04"),
	)

	if err := s.sendEmail(b.CustomerEmail, b.CustomerName, subject, plain, ""); err != nil {
		log.Printf("booking %d: reminder email failed: %v", b.ID, err)
	}
}

func (s *Service) sendEmail(toAddr, toName, subject, plain, html string) error {
	if s.cfg.SendGridAPIKey == "" || s.cfg.SendGridFrom == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFrom)
	to := mail.NewEmail(toName, toAddr)
	if html == "" {
		html = "<pre>" + plain + "</pre>"
	}
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *Service) sendSMS(toNumber, body string) error {
	if s.cfg.TwilioSID == "" || s.cfg.TwilioToken == "" || s.cfg.TwilioFrom == "" {
		return fmt.Errorf("twilio is not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		return fmt.Errorf("phone %q is not in E.164 format", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.TwilioSID,
		Password: s.cfg.TwilioToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFrom)
	params.SetBody(body)

	_, err := client.Api.CreateMessage(params)
	return err
}

func confirmationHTML(b *models.Booking, svc *models.Service, barber *models.Barber, start time.Time) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #d4af37; margin: 0;">Naim Kchao Barbershop</h1>
    <div style="width: 50px; height: 2px; background: #d4af37; margin: 10px auto;"></div>
  </div>
  <h2 style="color: #333; text-align: center;">Booking confirmed</h2>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 0 0 10px 0;"><strong>Booking number:</strong> %d</p>
    <p style="margin: 0 0 10px 0;"><strong>Service:</strong> %s</p>
    <p style="margin: 0 0 10px 0;"><strong>Barber:</strong> %s</p>
    <p style="margin: 0 0 10px 0;"><strong>Date:</strong> %s</p>
    <p style="margin: 0;"><strong>Time:</strong> %s</p>
  </div>
</div>`,
		b.ID, svc.Name, barber.Name,
		start.Format("02 Jan 2006"), start.Format("15:04"),
	)
}
