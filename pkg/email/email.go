package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"simplehire-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// ReferenceRequestData holds the data for referee outreach emails
type ReferenceRequestData struct {
	RefereeName   string
	CandidateName string
	Company       string
	Relation      string
	ResponseURL   string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// referenceRequestTemplate is the HTML template for referee outreach
const referenceRequestTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Reference Request</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a73e8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .button { display: inline-block; background: #1a73e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Reference Request</h1>
        </div>
        <div class="content">
            <p>Hi {{.RefereeName}},</p>
            <p>{{.CandidateName}} listed you as a professional reference
            ({{.Relation}}{{if .Company}} at {{.Company}}{{end}}) as part of their
            Simplehire verification.</p>
            <p>Could you take a couple of minutes to confirm your experience
            working with them?</p>
            <a class="button" href="{{.ResponseURL}}">Respond to request</a>
        </div>
        <div class="footer">
            <p>This email was sent by Simplehire on behalf of {{.CandidateName}}.</p>
            <p>If you do not know this person you can safely ignore this email.</p>
        </div>
    </div>
</body>
</html>`

// SendReferenceRequest sends a reference-check outreach email to a referee
func (s *EmailService) SendReferenceRequest(toEmail string, data ReferenceRequestData) error {
	tmpl, err := template.New("reference").Parse(referenceRequestTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Reference request for %s", data.CandidateName)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		toEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
