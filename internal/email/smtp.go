package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	BaseURL  string
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	cfg Config
}

func NewSMTPProvider(cfg Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendVerification(to, name, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify?token=%s", p.cfg.BaseURL, token)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.From, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verify your StayNest account")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email address by opening the link below:</p><p><a href=%q>%s</a></p>",
		name, link, link,
	))

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send verification mail: %w", err)
	}
	return nil
}
