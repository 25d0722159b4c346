package projects

import "time"

// Project is a standalone portfolio project, independent of any resume.
// Featured projects surface first on the public portfolio page.
type Project struct {
	ID           string
	Title        string
	Description  string
	Technologies []string
	GitHubURL    string
	LiveURL      string
	ImageURL     string
	Featured     bool
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter narrows project listings.
type Filter struct {
	Featured   *bool
	Technology string
	Search     string
	Limit      int
	Offset     int
}
