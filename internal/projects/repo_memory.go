package projects

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of ProjectsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Project
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Project)}
}

// cloneProject detaches the Technologies backing array so stored state and
// returned values never alias each other.
func cloneProject(project Project) Project {
	project.Technologies = append([]string(nil), project.Technologies...)
	return project
}

// Create stores a new project.
func (r *MemoryRepo) Create(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[project.ID] = cloneProject(project)
	return nil
}

// GetByID returns a project by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.data[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return cloneProject(project), nil
}

// List returns projects matching the filter, featured first.
func (r *MemoryRepo) List(ctx context.Context, filter Filter) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	var out []Project
	for _, project := range r.data {
		if matches(project, filter) {
			out = append(out, cloneProject(project))
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(out) {
		return []Project{}, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

// Update rewrites the mutable fields of a project.
func (r *MemoryRepo) Update(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[project.ID]
	if !ok {
		return ErrNotFound
	}
	project.Featured = existing.Featured
	project.CreatedAt = existing.CreatedAt
	r.data[project.ID] = cloneProject(project)
	return nil
}

// Delete removes a project.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// SetFeatured flips the featured flag.
func (r *MemoryRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	project.Featured = featured
	project.UpdatedAt = time.Now().UTC()
	r.data[id] = project
	return nil
}

// Technologies returns the distinct sorted set of technologies.
func (r *MemoryRepo) Technologies(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	seen := make(map[string]struct{})
	for _, project := range r.data {
		for _, tech := range project.Technologies {
			seen[tech] = struct{}{}
		}
	}
	r.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for tech := range seen {
		out = append(out, tech)
	}
	sort.Strings(out)
	return out, nil
}

func matches(project Project, filter Filter) bool {
	if filter.Featured != nil && project.Featured != *filter.Featured {
		return false
	}
	if tech := strings.TrimSpace(filter.Technology); tech != "" {
		found := false
		for _, t := range project.Technologies {
			if t == tech {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(project.Title), needle) &&
			!strings.Contains(strings.ToLower(project.Description), needle) {
			return false
		}
	}
	return true
}

var _ ProjectsRepo = (*MemoryRepo)(nil)
