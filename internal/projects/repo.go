package projects

import "context"

// ProjectsRepo defines persistence operations for portfolio projects.
type ProjectsRepo interface {
	Create(ctx context.Context, project Project) error
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, filter Filter) ([]Project, error)
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	Technologies(ctx context.Context) ([]string, error)
}
