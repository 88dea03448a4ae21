package ports

import (
	"context"

	"github.com/bookstore/identity-service/internal/core/domain"
)

type AdminService interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
}
