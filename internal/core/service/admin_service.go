package service

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
)

// AdminService serves administrative read models. Like RoleService it performs
// no access control itself; the transport layer gates the routes.
type AdminService struct {
	users ports.UserRepository
}

func NewAdminService(users ports.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// Stats returns aggregate account figures.
func (s *AdminService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.AdminStats{TotalUsers: total}, nil
}
