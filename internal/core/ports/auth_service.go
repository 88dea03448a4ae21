package ports

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
