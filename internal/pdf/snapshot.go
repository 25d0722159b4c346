package pdf

import "time"

// Snapshot is an immutable point-in-time view of one resume and its related
// collections. It is assembled by the caller and never mutated during a render.
type Snapshot struct {
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	Summary  string

	GitHubURL    string
	LinkedInURL  string
	PortfolioURL string

	Experience []Experience
	Education  []Education
	Skills     []Skill
	Projects   []Project
}

// Experience is a work history entry. Entries are rendered in input order;
// callers pass them pre-sorted (newest first).
type Experience struct {
	Company     string
	Position    string
	StartDate   *time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

// Education is a study history entry with the same date-range rules as
// Experience.
type Education struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    *time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
}

// Skill is a named skill with a proficiency level (beginner, intermediate,
// advanced, expert). Skills with an empty name are dropped from output.
type Skill struct {
	Name  string
	Level string
}

// Project is a resume-scoped project entry.
type Project struct {
	Name         string
	Description  string
	Technologies []string
	ProjectURL   string
	SourceURL    string
	StartDate    *time.Time
	EndDate      *time.Time
}
