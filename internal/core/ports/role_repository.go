package ports

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
)

// RoleRepository defines the interface for role persistence. Role names are
// unique across the store.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
