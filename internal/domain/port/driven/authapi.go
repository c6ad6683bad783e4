package driven

import (
	"context"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

// AuthAPI defines the driven port for the platform's authentication
// endpoints. Implementations translate non-2xx responses into
// *model.AuthError and network failures into *model.TransportError.
type AuthAPI interface {
	// Register creates a new anonymous user account and returns the
	// principal together with its freshly issued bearer token.
	Register(ctx context.Context, username, password string) (model.Principal, string, error)

	// Login signs an existing user in, returning the principal and a
	// new bearer token.
	Login(ctx context.Context, username, password string) (model.Principal, string, error)

	// InstitutionLogin signs a partner institution in by registration
	// number, returning the institution principal and token.
	InstitutionLogin(ctx context.Context, registration, password string) (model.Principal, string, error)

	// Verify checks that the currently stored token is still accepted
	// by the server. A nil error means the session is valid.
	Verify(ctx context.Context) error
}
