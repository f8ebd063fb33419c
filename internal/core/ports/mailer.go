package ports

// Mailer sends transactional account emails. Tokens are embedded in links
// built from the configured app base URL.
type Mailer interface {
	SendVerificationEmail(to, username, token string) error
	SendResetEmail(to, username, token string) error
}
