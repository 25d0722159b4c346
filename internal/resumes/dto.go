package resumes

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type resumeRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Summary      string `json:"summary"`
	GitHubURL    string `json:"githubUrl"`
	LinkedInURL  string `json:"linkedinUrl"`
	PortfolioURL string `json:"portfolioUrl"`
}

func (r resumeRequest) toModel() Resume {
	return Resume{
		Name:         strings.TrimSpace(r.Name),
		Title:        strings.TrimSpace(r.Title),
		Email:        strings.TrimSpace(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		Location:     strings.TrimSpace(r.Location),
		Summary:      r.Summary,
		GitHubURL:    strings.TrimSpace(r.GitHubURL),
		LinkedInURL:  strings.TrimSpace(r.LinkedInURL),
		PortfolioURL: strings.TrimSpace(r.PortfolioURL),
	}
}

type experienceRequest struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (r experienceRequest) toModel() (Experience, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return Experience{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return Experience{}, err
	}
	return Experience{
		Company:     strings.TrimSpace(r.Company),
		Position:    strings.TrimSpace(r.Position),
		StartDate:   start,
		EndDate:     end,
		Current:     r.Current,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}, nil
}

type educationRequest struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
	SortOrder    int    `json:"sortOrder"`
}

func (r educationRequest) toModel() (Education, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return Education{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return Education{}, err
	}
	return Education{
		Institution:  strings.TrimSpace(r.Institution),
		Degree:       strings.TrimSpace(r.Degree),
		FieldOfStudy: strings.TrimSpace(r.FieldOfStudy),
		StartDate:    start,
		EndDate:      end,
		Current:      r.Current,
		Description:  r.Description,
		SortOrder:    r.SortOrder,
	}, nil
}

type skillRequest struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	SortOrder int    `json:"sortOrder"`
}

func (r skillRequest) toModel() Skill {
	return Skill{
		Name:      strings.TrimSpace(r.Name),
		Level:     strings.ToLower(strings.TrimSpace(r.Level)),
		SortOrder: r.SortOrder,
	}
}

type projectRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"projectUrl"`
	SourceURL    string   `json:"sourceUrl"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	SortOrder    int      `json:"sortOrder"`
}

func (r projectRequest) toModel() (Project, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return Project{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return Project{}, err
	}
	return Project{
		Name:         strings.TrimSpace(r.Name),
		Description:  r.Description,
		Technologies: r.Technologies,
		ProjectURL:   strings.TrimSpace(r.ProjectURL),
		SourceURL:    strings.TrimSpace(r.SourceURL),
		StartDate:    start,
		EndDate:      end,
		SortOrder:    r.SortOrder,
	}, nil
}

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID     string    `json:"resumeId"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Summary      string    `json:"summary"`
	GitHubURL    string    `json:"githubUrl"`
	LinkedInURL  string    `json:"linkedinUrl"`
	PortfolioURL string    `json:"portfolioUrl"`
	IsActive     bool      `json:"isActive"`
	HasPDF       bool      `json:"hasPdf"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ResumeDetailResponse nests the child collections under the resume.
type ResumeDetailResponse struct {
	ResumeResponse
	Experiences []ExperienceResponse `json:"experiences"`
	Educations  []EducationResponse  `json:"educations"`
	Skills      []SkillResponse      `json:"skills"`
	Projects    []ProjectResponse    `json:"projects"`
}

type ExperienceResponse struct {
	ExperienceID string  `json:"experienceId"`
	Company      string  `json:"company"`
	Position     string  `json:"position"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Current      bool    `json:"current"`
	Description  string  `json:"description"`
}

type EducationResponse struct {
	EducationID  string  `json:"educationId"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Current      bool    `json:"current"`
	Description  string  `json:"description"`
}

type SkillResponse struct {
	SkillID string `json:"skillId"`
	Name    string `json:"name"`
	Level   string `json:"level"`
}

type ProjectResponse struct {
	ProjectID    string   `json:"projectId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"projectUrl"`
	SourceURL    string   `json:"sourceUrl"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:     resume.ID,
		Name:         resume.Name,
		Title:        resume.Title,
		Email:        resume.Email,
		Phone:        resume.Phone,
		Location:     resume.Location,
		Summary:      resume.Summary,
		GitHubURL:    resume.GitHubURL,
		LinkedInURL:  resume.LinkedInURL,
		PortfolioURL: resume.PortfolioURL,
		IsActive:     resume.IsActive,
		HasPDF:       resume.PDFKey != "",
		CreatedAt:    resume.CreatedAt,
		UpdatedAt:    resume.UpdatedAt,
	}
}

func toDetailResponse(detail ResumeDetail) ResumeDetailResponse {
	out := ResumeDetailResponse{
		ResumeResponse: toResponse(detail.Resume),
		Experiences:    make([]ExperienceResponse, 0, len(detail.Experiences)),
		Educations:     make([]EducationResponse, 0, len(detail.Educations)),
		Skills:         make([]SkillResponse, 0, len(detail.Skills)),
		Projects:       make([]ProjectResponse, 0, len(detail.Projects)),
	}
	for _, exp := range detail.Experiences {
		out.Experiences = append(out.Experiences, toExperienceResponse(exp))
	}
	for _, edu := range detail.Educations {
		out.Educations = append(out.Educations, toEducationResponse(edu))
	}
	for _, skill := range detail.Skills {
		out.Skills = append(out.Skills, toSkillResponse(skill))
	}
	for _, project := range detail.Projects {
		out.Projects = append(out.Projects, toProjectResponse(project))
	}
	return out
}

func toExperienceResponse(exp Experience) ExperienceResponse {
	return ExperienceResponse{
		ExperienceID: exp.ID,
		Company:      exp.Company,
		Position:     exp.Position,
		StartDate:    formatDate(exp.StartDate),
		EndDate:      formatDate(exp.EndDate),
		Current:      exp.Current,
		Description:  exp.Description,
	}
}

func toEducationResponse(edu Education) EducationResponse {
	return EducationResponse{
		EducationID:  edu.ID,
		Institution:  edu.Institution,
		Degree:       edu.Degree,
		FieldOfStudy: edu.FieldOfStudy,
		StartDate:    formatDate(edu.StartDate),
		EndDate:      formatDate(edu.EndDate),
		Current:      edu.Current,
		Description:  edu.Description,
	}
}

func toSkillResponse(skill Skill) SkillResponse {
	return SkillResponse{
		SkillID: skill.ID,
		Name:    skill.Name,
		Level:   skill.Level,
	}
}

func toProjectResponse(project Project) ProjectResponse {
	tech := project.Technologies
	if tech == nil {
		tech = []string{}
	}
	return ProjectResponse{
		ProjectID:    project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Technologies: tech,
		ProjectURL:   project.ProjectURL,
		SourceURL:    project.SourceURL,
		StartDate:    formatDate(project.StartDate),
		EndDate:      formatDate(project.EndDate),
	}
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", ErrInvalidInput, raw)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
