package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInvite(toEmail, fullName, tempPassword string) error
	SendApprovalNotice(toEmail, scholarshipRef string, amount float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendInvite(toEmail, fullName, tempPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Scholarship Fund Dashboard Account")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome, %s</h2>
			<p>An account has been created for you on the scholarship fund dashboard.</p>
			<p>Your temporary password is:</p>
			<h1 style="letter-spacing: 3px;">%s</h1>
			<p>Please sign in and change it as soon as possible.</p>
		</div>
	`, fullName, tempPassword)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invite to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendApprovalNotice(toEmail, scholarshipRef string, amount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Scholarship %s fully approved", scholarshipRef))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Scholarship %s</h2>
			<p>The award of $%.2f has received both required approvals and is ready for disbursement.</p>
		</div>
	`, scholarshipRef, amount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send approval notice to %s: %w", toEmail, err)
	}
	return nil
}
