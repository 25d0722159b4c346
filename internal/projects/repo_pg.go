package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PGRepo implements ProjectsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const projectColumns = `id, title, description, technologies, github_url, live_url, image_url, featured, sort_order, created_at, updated_at`

// Create inserts a new project.
func (r *PGRepo) Create(ctx context.Context, project Project) error {
	tech, err := encodeTechnologies(project.Technologies)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO portfolio_projects (
    id, title, description, technologies, github_url, live_url, image_url,
    featured, sort_order, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		project.ID,
		project.Title,
		project.Description,
		tech,
		project.GitHubURL,
		project.LiveURL,
		project.ImageURL,
		project.Featured,
		project.SortOrder,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

// GetByID fetches a project by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolio_projects WHERE id = $1`, projectColumns)
	return scanProject(r.DB.QueryRowContext(ctx, query, id))
}

// List returns projects matching the filter, featured first.
func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Project, error) {
	var conds []string
	var args []any

	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if tech := strings.TrimSpace(filter.Technology); tech != "" {
		args = append(args, tech)
		conds = append(conds, fmt.Sprintf("technologies ? $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM portfolio_projects`, projectColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY featured DESC, sort_order ASC, created_at DESC"

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
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, project)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a project.
func (r *PGRepo) Update(ctx context.Context, project Project) error {
	tech, err := encodeTechnologies(project.Technologies)
	if err != nil {
		return err
	}
	const query = `
UPDATE portfolio_projects
SET title = $1, description = $2, technologies = $3, github_url = $4,
    live_url = $5, image_url = $6, sort_order = $7, updated_at = $8
WHERE id = $9`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		project.Title,
		project.Description,
		tech,
		project.GitHubURL,
		project.LiveURL,
		project.ImageURL,
		project.SortOrder,
		project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a project.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM portfolio_projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetFeatured flips the featured flag.
func (r *PGRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE portfolio_projects SET featured = $1, updated_at = $2 WHERE id = $3`, featured, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Technologies returns the distinct set of technologies across all projects.
func (r *PGRepo) Technologies(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT jsonb_array_elements_text(technologies) AS tech
FROM portfolio_projects
ORDER BY tech`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var tech string
		if err := rows.Scan(&tech); err != nil {
			return nil, err
		}
		out = append(out, tech)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var project Project
	var techRaw []byte
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&techRaw,
		&project.GitHubURL,
		&project.LiveURL,
		&project.ImageURL,
		&project.Featured,
		&project.SortOrder,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	if len(techRaw) > 0 {
		if err := json.Unmarshal(techRaw, &project.Technologies); err != nil {
			return Project{}, fmt.Errorf("decode technologies: %w", err)
		}
	}
	return project, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeTechnologies(tech []string) ([]byte, error) {
	if tech == nil {
		tech = []string{}
	}
	data, err := json.Marshal(tech)
	if err != nil {
		return nil, fmt.Errorf("encode technologies: %w", err)
	}
	return data, nil
}

var _ ProjectsRepo = (*PGRepo)(nil)
