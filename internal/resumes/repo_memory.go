package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of ResumesRepo, used when no
// database is configured and in tests.
type MemoryRepo struct {
	mu          sync.RWMutex
	resumes     map[string]Resume
	experiences map[string][]Experience
	educations  map[string][]Education
	skills      map[string][]Skill
	projects    map[string][]Project
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes:     make(map[string]Resume),
		experiences: make(map[string][]Experience),
		educations:  make(map[string][]Education),
		skills:      make(map[string][]Skill),
		projects:    make(map[string][]Project),
	}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

// GetByID returns a resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// GetActive returns the active resume.
func (r *MemoryRepo) GetActive(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resume := range r.resumes {
		if resume.IsActive {
			return resume, nil
		}
	}
	return Resume{}, ErrNotFound
}

// List returns all resumes, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, 0, len(r.resumes))
	for _, resume := range r.resumes {
		out = append(out, resume)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update rewrites the mutable fields of a resume.
func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[resume.ID]
	if !ok {
		return ErrNotFound
	}
	resume.IsActive = existing.IsActive
	resume.PDFKey = existing.PDFKey
	resume.CreatedAt = existing.CreatedAt
	r.resumes[resume.ID] = resume
	return nil
}

// Delete removes a resume with its child records.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[id]; !ok {
		return ErrNotFound
	}
	delete(r.resumes, id)
	delete(r.experiences, id)
	delete(r.educations, id)
	delete(r.skills, id)
	delete(r.projects, id)
	return nil
}

// SetActive marks one resume active and deactivates the rest.
func (r *MemoryRepo) SetActive(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.resumes[id]
	if !ok {
		return ErrNotFound
	}
	for key, resume := range r.resumes {
		if resume.IsActive {
			resume.IsActive = false
			r.resumes[key] = resume
		}
	}
	target.IsActive = true
	target.UpdatedAt = time.Now().UTC()
	r.resumes[id] = target
	return nil
}

// SetPDFKey records the storage key of the rendered PDF.
func (r *MemoryRepo) SetPDFKey(ctx context.Context, id, pdfKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[id]
	if !ok {
		return ErrNotFound
	}
	resume.PDFKey = pdfKey
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[id] = resume
	return nil
}

// ListExperiences returns experiences for a resume, ordered for rendering.
func (r *MemoryRepo) ListExperiences(ctx context.Context, resumeID string) ([]Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Experience(nil), r.experiences[resumeID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return laterStart(out[i].StartDate, out[j].StartDate)
	})
	return out, nil
}

// CreateExperience inserts a work history entry.
func (r *MemoryRepo) CreateExperience(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[exp.ResumeID]; !ok {
		return ErrNotFound
	}
	r.experiences[exp.ResumeID] = append(r.experiences[exp.ResumeID], exp)
	return nil
}

// UpdateExperience rewrites a work history entry.
func (r *MemoryRepo) UpdateExperience(ctx context.Context, exp Experience) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.experiences[exp.ResumeID]
	for i := range items {
		if items[i].ID == exp.ID {
			exp.SortOrder = items[i].SortOrder
			items[i] = exp
			return nil
		}
	}
	return ErrNotFound
}

// DeleteExperience removes a work history entry.
func (r *MemoryRepo) DeleteExperience(ctx context.Context, resumeID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.experiences[resumeID]
	for i := range items {
		if items[i].ID == id {
			r.experiences[resumeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListEducations returns education entries for a resume.
func (r *MemoryRepo) ListEducations(ctx context.Context, resumeID string) ([]Education, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Education(nil), r.educations[resumeID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return laterStart(out[i].StartDate, out[j].StartDate)
	})
	return out, nil
}

// CreateEducation inserts an education entry.
func (r *MemoryRepo) CreateEducation(ctx context.Context, edu Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[edu.ResumeID]; !ok {
		return ErrNotFound
	}
	r.educations[edu.ResumeID] = append(r.educations[edu.ResumeID], edu)
	return nil
}

// UpdateEducation rewrites an education entry.
func (r *MemoryRepo) UpdateEducation(ctx context.Context, edu Education) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.educations[edu.ResumeID]
	for i := range items {
		if items[i].ID == edu.ID {
			edu.SortOrder = items[i].SortOrder
			items[i] = edu
			return nil
		}
	}
	return ErrNotFound
}

// DeleteEducation removes an education entry.
func (r *MemoryRepo) DeleteEducation(ctx context.Context, resumeID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.educations[resumeID]
	for i := range items {
		if items[i].ID == id {
			r.educations[resumeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListSkills returns skills for a resume.
func (r *MemoryRepo) ListSkills(ctx context.Context, resumeID string) ([]Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Skill(nil), r.skills[resumeID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// CreateSkill inserts a skill.
func (r *MemoryRepo) CreateSkill(ctx context.Context, skill Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[skill.ResumeID]; !ok {
		return ErrNotFound
	}
	r.skills[skill.ResumeID] = append(r.skills[skill.ResumeID], skill)
	return nil
}

// UpdateSkill rewrites a skill.
func (r *MemoryRepo) UpdateSkill(ctx context.Context, skill Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.skills[skill.ResumeID]
	for i := range items {
		if items[i].ID == skill.ID {
			skill.SortOrder = items[i].SortOrder
			items[i] = skill
			return nil
		}
	}
	return ErrNotFound
}

// DeleteSkill removes a skill.
func (r *MemoryRepo) DeleteSkill(ctx context.Context, resumeID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.skills[resumeID]
	for i := range items {
		if items[i].ID == id {
			r.skills[resumeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListProjects returns resume-scoped project entries.
func (r *MemoryRepo) ListProjects(ctx context.Context, resumeID string) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Project(nil), r.projects[resumeID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return laterStart(out[i].StartDate, out[j].StartDate)
	})
	return out, nil
}

// CreateProject inserts a resume-scoped project entry.
func (r *MemoryRepo) CreateProject(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[project.ResumeID]; !ok {
		return ErrNotFound
	}
	r.projects[project.ResumeID] = append(r.projects[project.ResumeID], project)
	return nil
}

// UpdateProject rewrites a resume-scoped project entry.
func (r *MemoryRepo) UpdateProject(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.projects[project.ResumeID]
	for i := range items {
		if items[i].ID == project.ID {
			project.SortOrder = items[i].SortOrder
			items[i] = project
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProject removes a resume-scoped project entry.
func (r *MemoryRepo) DeleteProject(ctx context.Context, resumeID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.projects[resumeID]
	for i := range items {
		if items[i].ID == id {
			r.projects[resumeID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func laterStart(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.After(*b)
	}
}

var _ ResumesRepo = (*MemoryRepo)(nil)
