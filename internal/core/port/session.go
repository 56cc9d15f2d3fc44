package port

import (
	"context"

	"beatboost/internal/core/domain"
)

// Session resolves the current identity against a fixed user directory.
type Session interface {
	Login(ctx context.Context, username string, role domain.Role) (domain.Identity, error)
	Logout(ctx context.Context) error
	// Current returns the logged-in identity, if any.
	Current(ctx context.Context) (domain.Identity, bool, error)
}
