package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactMessage(name, email, phone, message string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	contactInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, contactInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		contactInbox: contactInbox,
	}
}

// SendContactMessage forwards a contact form submission to the dealership
// inbox. Reply-To is set to the visitor so staff can answer directly.
func (s *emailService) SendContactMessage(name, email, phone, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.contactInbox)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("Nouveau message de %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nouveau message depuis le site</h2>
			<p><strong>Nom:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Téléphone:</strong> %s</p>
			<hr>
			<p>%s</p>
		</div>
	`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(phone), html.EscapeString(message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send contact message from %s: %w", email, err)
	}
	return nil
}
