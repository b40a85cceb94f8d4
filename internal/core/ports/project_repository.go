package ports

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for portfolio projects.
// Update and Delete return domain.ErrProjectNotFound when no row matches.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
