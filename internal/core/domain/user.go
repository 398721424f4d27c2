package domain

// AuthenticatedUser carries the identity extracted from a verified provider
// ID token. Subject is the provider's stable user ID and is the owner key for
// every transaction.
type AuthenticatedUser struct {
	Subject string
	Email   string
	Name    string
}
