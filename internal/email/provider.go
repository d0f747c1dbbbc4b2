package email

// Provider sends transactional mail. Handlers never depend on the
// concrete sender so tests and local runs can swap in the no-op.
type Provider interface {
	// SendVerification mails the email-verification link for the token.
	SendVerification(to, name, token string) error
}

// NoopProvider is used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) SendVerification(to, name, token string) error { return nil }
