package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/pdf"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/storage/object"
	"portfolio-backend/internal/shared/telemetry"
	"portfolio-backend/internal/shared/util"
)

// Renderer turns a resume snapshot into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, snap pdf.Snapshot, now time.Time) ([]byte, error)
}

// ResumeDetail is a resume with all child collections loaded.
type ResumeDetail struct {
	Resume
	Experiences []Experience
	Educations  []Education
	Skills      []Skill
	Projects    []Project
}

// Service contains business logic for resumes. Every mutation regenerates the
// stored PDF so the downloadable copy never lags the data.
type Service struct {
	Repo     ResumesRepo
	Store    object.ObjectStore
	Renderer Renderer
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Create stores a new resume and renders its first PDF.
func (s *Service) Create(ctx context.Context, resume Resume) (Resume, error) {
	resume.Name = strings.TrimSpace(resume.Name)
	if resume.Name == "" {
		return Resume{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	resume.ID = uuid.NewString()
	resume.IsActive = false
	resume.PDFKey = ""
	resume.CreatedAt = s.now()
	resume.UpdatedAt = resume.CreatedAt

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	s.regenerateBestEffort(ctx, resume.ID)
	return s.Repo.GetByID(ctx, resume.ID)
}

// Get returns a resume by ID.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all resumes.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Detail returns a resume with all child collections loaded.
func (s *Service) Detail(ctx context.Context, id string) (ResumeDetail, error) {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return ResumeDetail{}, err
	}
	return s.loadDetail(ctx, resume)
}

// Active returns the active resume with child collections.
func (s *Service) Active(ctx context.Context) (ResumeDetail, error) {
	resume, err := s.Repo.GetActive(ctx)
	if err != nil {
		return ResumeDetail{}, err
	}
	return s.loadDetail(ctx, resume)
}

// Activate marks a resume as the active one.
func (s *Service) Activate(ctx context.Context, id string) (Resume, error) {
	if err := s.Repo.SetActive(ctx, id); err != nil {
		return Resume{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Update rewrites a resume's own fields and regenerates its PDF.
func (s *Service) Update(ctx context.Context, resume Resume) (Resume, error) {
	resume.Name = strings.TrimSpace(resume.Name)
	if resume.Name == "" {
		return Resume{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	resume.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}

	s.regenerateBestEffort(ctx, resume.ID)
	return s.Repo.GetByID(ctx, resume.ID)
}

// Delete removes a resume and its stored PDF.
func (s *Service) Delete(ctx context.Context, id string) error {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume.PDFKey != "" {
		if err := s.Store.Delete(ctx, resume.PDFKey); err != nil {
			telemetry.Warn("pdf.delete.failed", map[string]any{"resume_id": id, "error": err.Error()})
		}
	}
	return s.Repo.Delete(ctx, id)
}

// AddExperience appends a work history entry and regenerates the PDF.
func (s *Service) AddExperience(ctx context.Context, exp Experience) (Experience, error) {
	exp.Company = strings.TrimSpace(exp.Company)
	if exp.Company == "" {
		return Experience{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	exp.ID = uuid.NewString()
	if err := s.Repo.CreateExperience(ctx, exp); err != nil {
		return Experience{}, err
	}
	s.regenerateBestEffort(ctx, exp.ResumeID)
	return exp, nil
}

// UpdateExperience rewrites a work history entry and regenerates the PDF.
func (s *Service) UpdateExperience(ctx context.Context, exp Experience) (Experience, error) {
	exp.Company = strings.TrimSpace(exp.Company)
	if exp.Company == "" {
		return Experience{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if err := s.Repo.UpdateExperience(ctx, exp); err != nil {
		return Experience{}, err
	}
	s.regenerateBestEffort(ctx, exp.ResumeID)
	return exp, nil
}

// DeleteExperience removes a work history entry and regenerates the PDF.
func (s *Service) DeleteExperience(ctx context.Context, resumeID, id string) error {
	if err := s.Repo.DeleteExperience(ctx, resumeID, id); err != nil {
		return err
	}
	s.regenerateBestEffort(ctx, resumeID)
	return nil
}

// AddEducation appends an education entry and regenerates the PDF.
func (s *Service) AddEducation(ctx context.Context, edu Education) (Education, error) {
	edu.Institution = strings.TrimSpace(edu.Institution)
	if edu.Institution == "" {
		return Education{}, fmt.Errorf("%w: institution is required", ErrInvalidInput)
	}
	edu.ID = uuid.NewString()
	if err := s.Repo.CreateEducation(ctx, edu); err != nil {
		return Education{}, err
	}
	s.regenerateBestEffort(ctx, edu.ResumeID)
	return edu, nil
}

// UpdateEducation rewrites an education entry and regenerates the PDF.
func (s *Service) UpdateEducation(ctx context.Context, edu Education) (Education, error) {
	edu.Institution = strings.TrimSpace(edu.Institution)
	if edu.Institution == "" {
		return Education{}, fmt.Errorf("%w: institution is required", ErrInvalidInput)
	}
	if err := s.Repo.UpdateEducation(ctx, edu); err != nil {
		return Education{}, err
	}
	s.regenerateBestEffort(ctx, edu.ResumeID)
	return edu, nil
}

// DeleteEducation removes an education entry and regenerates the PDF.
func (s *Service) DeleteEducation(ctx context.Context, resumeID, id string) error {
	if err := s.Repo.DeleteEducation(ctx, resumeID, id); err != nil {
		return err
	}
	s.regenerateBestEffort(ctx, resumeID)
	return nil
}

// AddSkill appends a skill and regenerates the PDF.
func (s *Service) AddSkill(ctx context.Context, skill Skill) (Skill, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return Skill{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	skill.ID = uuid.NewString()
	if err := s.Repo.CreateSkill(ctx, skill); err != nil {
		return Skill{}, err
	}
	s.regenerateBestEffort(ctx, skill.ResumeID)
	return skill, nil
}

// UpdateSkill rewrites a skill and regenerates the PDF.
func (s *Service) UpdateSkill(ctx context.Context, skill Skill) (Skill, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return Skill{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.Repo.UpdateSkill(ctx, skill); err != nil {
		return Skill{}, err
	}
	s.regenerateBestEffort(ctx, skill.ResumeID)
	return skill, nil
}

// DeleteSkill removes a skill and regenerates the PDF.
func (s *Service) DeleteSkill(ctx context.Context, resumeID, id string) error {
	if err := s.Repo.DeleteSkill(ctx, resumeID, id); err != nil {
		return err
	}
	s.regenerateBestEffort(ctx, resumeID)
	return nil
}

// AddProject appends a resume project entry and regenerates the PDF.
func (s *Service) AddProject(ctx context.Context, project Project) (Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return Project{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	project.ID = uuid.NewString()
	if err := s.Repo.CreateProject(ctx, project); err != nil {
		return Project{}, err
	}
	s.regenerateBestEffort(ctx, project.ResumeID)
	return project, nil
}

// UpdateProject rewrites a resume project entry and regenerates the PDF.
func (s *Service) UpdateProject(ctx context.Context, project Project) (Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return Project{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.Repo.UpdateProject(ctx, project); err != nil {
		return Project{}, err
	}
	s.regenerateBestEffort(ctx, project.ResumeID)
	return project, nil
}

// DeleteProject removes a resume project entry and regenerates the PDF.
func (s *Service) DeleteProject(ctx context.Context, resumeID, id string) error {
	if err := s.Repo.DeleteProject(ctx, resumeID, id); err != nil {
		return err
	}
	s.regenerateBestEffort(ctx, resumeID)
	return nil
}

// RegeneratePDF re-renders and stores the PDF for a resume.
func (s *Service) RegeneratePDF(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.regenerate(ctx, id)
}

// DownloadPDF returns the stored PDF bytes and a download filename. A resume
// with no stored PDF gets rendered on demand.
func (s *Service) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if resume.PDFKey == "" {
		if err := s.regenerate(ctx, id); err != nil {
			return nil, "", err
		}
		resume, err = s.Repo.GetByID(ctx, id)
		if err != nil {
			return nil, "", err
		}
	}

	rc, err := s.Store.Open(ctx, resume.PDFKey)
	if err != nil {
		return nil, "", fmt.Errorf("open pdf: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("read pdf: %w", err)
	}
	return data, downloadFileName(resume.Name), nil
}

// DeletePDF removes the stored PDF without touching resume data.
func (s *Service) DeletePDF(ctx context.Context, id string) error {
	resume, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume.PDFKey == "" {
		return ErrNoPDF
	}
	if err := s.Store.Delete(ctx, resume.PDFKey); err != nil {
		return err
	}
	return s.Repo.SetPDFKey(ctx, id, "")
}

func (s *Service) loadDetail(ctx context.Context, resume Resume) (ResumeDetail, error) {
	experiences, err := s.Repo.ListExperiences(ctx, resume.ID)
	if err != nil {
		return ResumeDetail{}, err
	}
	educations, err := s.Repo.ListEducations(ctx, resume.ID)
	if err != nil {
		return ResumeDetail{}, err
	}
	skills, err := s.Repo.ListSkills(ctx, resume.ID)
	if err != nil {
		return ResumeDetail{}, err
	}
	projects, err := s.Repo.ListProjects(ctx, resume.ID)
	if err != nil {
		return ResumeDetail{}, err
	}
	return ResumeDetail{
		Resume:      resume,
		Experiences: experiences,
		Educations:  educations,
		Skills:      skills,
		Projects:    projects,
	}, nil
}

// regenerateBestEffort re-renders the PDF after a mutation. Render failures
// are logged, not surfaced; the record mutation already succeeded and the
// next download retries the render.
func (s *Service) regenerateBestEffort(ctx context.Context, id string) {
	if err := s.regenerate(ctx, id); err != nil {
		telemetry.Warn("pdf.render.failed", map[string]any{"resume_id": id, "error": err.Error()})
	}
}

func (s *Service) regenerate(ctx context.Context, id string) error {
	metrics.IncRenderStarted()
	start := time.Now()

	detail, err := s.Detail(ctx, id)
	if err != nil {
		metrics.IncRenderFailed()
		return err
	}

	data, err := s.Renderer.Render(ctx, toSnapshot(detail), s.now())
	if err != nil {
		metrics.IncRenderFailed()
		return err
	}

	key := path.Join("resumes", id+".pdf")
	if _, err := s.Store.Save(ctx, key, "application/pdf", bytes.NewReader(data)); err != nil {
		metrics.IncRenderFailed()
		return fmt.Errorf("store pdf: %w", err)
	}
	if err := s.Repo.SetPDFKey(ctx, id, key); err != nil {
		metrics.IncRenderFailed()
		return err
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.IncRenderCompleted()
	metrics.ObserveRenderDurationMs(elapsed)
	telemetry.Info("pdf.render.complete", map[string]any{
		"resume_id":   id,
		"size_bytes":  len(data),
		"duration_ms": elapsed,
	})
	return nil
}

func toSnapshot(detail ResumeDetail) pdf.Snapshot {
	snap := pdf.Snapshot{
		Name:         detail.Name,
		Title:        detail.Title,
		Email:        detail.Email,
		Phone:        detail.Phone,
		Location:     detail.Location,
		Summary:      detail.Summary,
		GitHubURL:    detail.GitHubURL,
		LinkedInURL:  detail.LinkedInURL,
		PortfolioURL: detail.PortfolioURL,
	}
	for _, exp := range detail.Experiences {
		snap.Experience = append(snap.Experience, pdf.Experience{
			Company:     exp.Company,
			Position:    exp.Position,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Current:     exp.Current,
			Description: exp.Description,
		})
	}
	for _, edu := range detail.Educations {
		snap.Education = append(snap.Education, pdf.Education{
			Institution:  edu.Institution,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    edu.StartDate,
			EndDate:      edu.EndDate,
			Current:      edu.Current,
			Description:  edu.Description,
		})
	}
	for _, skill := range detail.Skills {
		snap.Skills = append(snap.Skills, pdf.Skill{Name: skill.Name, Level: skill.Level})
	}
	for _, project := range detail.Projects {
		snap.Projects = append(snap.Projects, pdf.Project{
			Name:         project.Name,
			Description:  project.Description,
			Technologies: project.Technologies,
			ProjectURL:   project.ProjectURL,
			SourceURL:    project.SourceURL,
			StartDate:    project.StartDate,
			EndDate:      project.EndDate,
		})
	}
	return snap
}

func downloadFileName(name string) string {
	base := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	sanitized, err := util.SanitizeFileName(base + "_Resume.pdf")
	if err != nil {
		return "Resume.pdf"
	}
	return sanitized
}
