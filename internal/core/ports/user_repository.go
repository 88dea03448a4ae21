package ports

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Email uniqueness
// is enforced by the store itself (unique index), not by callers.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}
