package projects

import (
	"strings"
	"time"
)

type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	ImageURL     string   `json:"imageUrl"`
	SortOrder    int      `json:"sortOrder"`
}

func (r projectRequest) toModel() Project {
	return Project{
		Title:        strings.TrimSpace(r.Title),
		Description:  r.Description,
		Technologies: r.Technologies,
		GitHubURL:    strings.TrimSpace(r.GitHubURL),
		LiveURL:      strings.TrimSpace(r.LiveURL),
		ImageURL:     strings.TrimSpace(r.ImageURL),
		SortOrder:    r.SortOrder,
	}
}

// ProjectResponse is the outward-facing representation of a portfolio project.
type ProjectResponse struct {
	ProjectID    string    `json:"projectId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	GitHubURL    string    `json:"githubUrl"`
	LiveURL      string    `json:"liveUrl"`
	ImageURL     string    `json:"imageUrl"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toResponse(project Project) ProjectResponse {
	tech := project.Technologies
	if tech == nil {
		tech = []string{}
	}
	return ProjectResponse{
		ProjectID:    project.ID,
		Title:        project.Title,
		Description:  project.Description,
		Technologies: tech,
		GitHubURL:    project.GitHubURL,
		LiveURL:      project.LiveURL,
		ImageURL:     project.ImageURL,
		Featured:     project.Featured,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

func toResponseList(items []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, project := range items {
		out = append(out, toResponse(project))
	}
	return out
}
