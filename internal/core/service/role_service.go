package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
)

// RoleService mutates the role model. It performs no access control itself:
// reaching it through a privileged route is the transport layer's job.
type RoleService struct {
	users ports.UserRepository
	roles ports.RoleRepository
}

func NewRoleService(users ports.UserRepository, roles ports.RoleRepository) *RoleService {
	return &RoleService{users: users, roles: roles}
}

// AssignRoles adds the named roles to the user's role set. Assignment is
// all-or-nothing: every name is resolved before the single persist at the
// end, so a missing user or role leaves the stored record untouched.
func (s *RoleService) AssignRoles(ctx context.Context, userID string, roleNames []string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	resolved := make([]*domain.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := s.roles.FindByName(ctx, name)
		if err != nil {
			// Only a genuine miss becomes a client error; a store failure
			// stays unwrapped so it surfaces as an internal error.
			if errors.Is(err, domain.ErrRoleNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrRoleNotFound, name)
			}
			return err
		}
		resolved = append(resolved, role)
	}

	for _, role := range resolved {
		user.AddRole(role.Name)
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, user)
}

// CreateRole persists a new role; name uniqueness is owned by the store.
func (s *RoleService) CreateRole(ctx context.Context, name string) (*domain.Role, error) {
	return s.roles.Create(ctx, &domain.Role{Name: name, CreatedAt: time.Now().UTC()})
}
