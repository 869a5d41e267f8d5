package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
