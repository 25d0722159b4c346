package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for portfolio projects.
type Service struct {
	Repo ProjectsRepo
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Create stores a new project.
func (s *Service) Create(ctx context.Context, project Project) (Project, error) {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return Project{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	project.Technologies = normalizeTechnologies(project.Technologies)

	project.ID = uuid.NewString()
	project.CreatedAt = s.now()
	project.UpdatedAt = project.CreatedAt

	if err := s.Repo.Create(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Get returns a project by ID.
func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns projects matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Project, error) {
	return s.Repo.List(ctx, filter)
}

// Featured returns only featured projects.
func (s *Service) Featured(ctx context.Context) ([]Project, error) {
	featured := true
	return s.Repo.List(ctx, Filter{Featured: &featured})
}

// Technologies returns the distinct set of technologies across projects.
func (s *Service) Technologies(ctx context.Context) ([]string, error) {
	return s.Repo.Technologies(ctx)
}

// Update rewrites a project.
func (s *Service) Update(ctx context.Context, project Project) (Project, error) {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return Project{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	project.Technologies = normalizeTechnologies(project.Technologies)
	project.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, project); err != nil {
		return Project{}, err
	}
	return s.Repo.GetByID(ctx, project.ID)
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SetFeatured flips the featured flag.
func (s *Service) SetFeatured(ctx context.Context, id string, featured bool) (Project, error) {
	if err := s.Repo.SetFeatured(ctx, id, featured); err != nil {
		return Project{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// AddTechnology appends a technology to a project if not already present.
func (s *Service) AddTechnology(ctx context.Context, id, tech string) (Project, error) {
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return Project{}, fmt.Errorf("%w: technology is required", ErrInvalidInput)
	}

	project, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	for _, existing := range project.Technologies {
		if existing == tech {
			return project, nil
		}
	}
	project.Technologies = append(append([]string(nil), project.Technologies...), tech)
	project.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// RemoveTechnology drops a technology from a project.
func (s *Service) RemoveTechnology(ctx context.Context, id, tech string) (Project, error) {
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return Project{}, fmt.Errorf("%w: technology is required", ErrInvalidInput)
	}

	project, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}

	// Build a fresh slice; compacting in place would write through any
	// backing array shared with the repo.
	kept := make([]string, 0, len(project.Technologies))
	for _, existing := range project.Technologies {
		if existing != tech {
			kept = append(kept, existing)
		}
	}
	project.Technologies = kept
	project.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

func normalizeTechnologies(tech []string) []string {
	out := make([]string, 0, len(tech))
	seen := make(map[string]struct{}, len(tech))
	for _, t := range tech {
		trimmed := strings.TrimSpace(t)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
