package ports

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
)

type RoleService interface {
	// AssignRoles adds the named roles to the user. All names are resolved
	// before anything is written: a missing user or role persists nothing.
	AssignRoles(ctx context.Context, userID string, roleNames []string) error
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
}
