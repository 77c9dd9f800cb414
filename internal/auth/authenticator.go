package auth

import (
	"context"

	"tripledger/internal/models"
)

// Authenticator abstracts over authentication methods so the service layer
// does not care whether credentials are passwords, OAuth tokens, or
// something else.
type Authenticator interface {
	// Register creates a new account from an email, display name, and
	// credential, returning the created user.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks whether the credential meets the
	// implementation's requirements (length, format, ...).
	ValidateCredential(credential string) error
}
