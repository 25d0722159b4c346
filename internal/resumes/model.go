package resumes

import "time"

// Resume is the top-level resume record. At most one resume is active at a
// time; the active one backs the public portfolio page.
type Resume struct {
	ID           string
	Name         string
	Title        string
	Email        string
	Phone        string
	Location     string
	Summary      string
	GitHubURL    string
	LinkedInURL  string
	PortfolioURL string
	IsActive     bool
	PDFKey       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Experience is a work history entry belonging to a resume.
type Experience struct {
	ID          string
	ResumeID    string
	Company     string
	Position    string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     bool
	Description string
	SortOrder   int
}

// Education is a study history entry belonging to a resume.
type Education struct {
	ID           string
	ResumeID     string
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    *time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
	SortOrder    int
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	ID        string
	ResumeID  string
	Name      string
	Level     string
	SortOrder int
}

// Project is a resume-scoped project entry, distinct from portfolio projects.
type Project struct {
	ID           string
	ResumeID     string
	Name         string
	Description  string
	Technologies []string
	ProjectURL   string
	SourceURL    string
	StartDate    *time.Time
	EndDate      *time.Time
	SortOrder    int
}
