package ports

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts. Create must be
// atomic with respect to the email uniqueness check (unique index, not a prior
// read) and return domain.ErrEmailTaken on a duplicate.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}
