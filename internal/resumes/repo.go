package resumes

import "context"

// ResumesRepo defines persistence operations for resumes and their child
// collections. Child lists come back pre-sorted for rendering.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, id string) error
	GetActive(ctx context.Context) (Resume, error)
	SetActive(ctx context.Context, id string) error
	SetPDFKey(ctx context.Context, id, pdfKey string) error

	ListExperiences(ctx context.Context, resumeID string) ([]Experience, error)
	CreateExperience(ctx context.Context, exp Experience) error
	UpdateExperience(ctx context.Context, exp Experience) error
	DeleteExperience(ctx context.Context, resumeID, id string) error

	ListEducations(ctx context.Context, resumeID string) ([]Education, error)
	CreateEducation(ctx context.Context, edu Education) error
	UpdateEducation(ctx context.Context, edu Education) error
	DeleteEducation(ctx context.Context, resumeID, id string) error

	ListSkills(ctx context.Context, resumeID string) ([]Skill, error)
	CreateSkill(ctx context.Context, skill Skill) error
	UpdateSkill(ctx context.Context, skill Skill) error
	DeleteSkill(ctx context.Context, resumeID, id string) error

	ListProjects(ctx context.Context, resumeID string) ([]Project, error)
	CreateProject(ctx context.Context, project Project) error
	UpdateProject(ctx context.Context, project Project) error
	DeleteProject(ctx context.Context, resumeID, id string) error
}
