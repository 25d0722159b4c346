package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, name, title, email, phone, location, summary, github_url, linkedin_url, portfolio_url, is_active, pdf_key, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id, name, title, email, phone, location, summary,
    github_url, linkedin_url, portfolio_url, is_active, pdf_key,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.Name,
		resume.Title,
		resume.Email,
		resume.Phone,
		resume.Location,
		resume.Summary,
		resume.GitHubURL,
		resume.LinkedInURL,
		resume.PortfolioURL,
		resume.IsActive,
		resume.PDFKey,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE id = $1`, resumeColumns)
	return r.scanResume(r.DB.QueryRowContext(ctx, query, id))
}

// GetActive fetches the active resume.
func (r *PGRepo) GetActive(ctx context.Context) (Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE is_active LIMIT 1`, resumeColumns)
	return r.scanResume(r.DB.QueryRowContext(ctx, query))
}

// List returns all resumes, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes ORDER BY created_at DESC`, resumeColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := r.scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a resume.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET name = $1, title = $2, email = $3, phone = $4, location = $5, summary = $6,
    github_url = $7, linkedin_url = $8, portfolio_url = $9, updated_at = $10
WHERE id = $11`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		resume.Name,
		resume.Title,
		resume.Email,
		resume.Phone,
		resume.Location,
		resume.Summary,
		resume.GitHubURL,
		resume.LinkedInURL,
		resume.PortfolioURL,
		resume.UpdatedAt,
		resume.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a resume; child rows cascade.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetActive marks one resume active and deactivates the rest atomically.
func (r *PGRepo) SetActive(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE resumes SET is_active = FALSE WHERE is_active`); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE resumes SET is_active = TRUE, updated_at = $1 WHERE id = $2`, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// SetPDFKey records the storage key of the rendered PDF.
func (r *PGRepo) SetPDFKey(ctx context.Context, id, pdfKey string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE resumes SET pdf_key = $1, updated_at = $2 WHERE id = $3`, pdfKey, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListExperiences returns experiences for a resume, ordered for rendering.
func (r *PGRepo) ListExperiences(ctx context.Context, resumeID string) ([]Experience, error) {
	const query = `
SELECT id, resume_id, company, position, start_date, end_date, current, description, sort_order
FROM experiences
WHERE resume_id = $1
ORDER BY sort_order ASC, start_date DESC NULLS LAST`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		var exp Experience
		var start, end sql.NullTime
		if err := rows.Scan(&exp.ID, &exp.ResumeID, &exp.Company, &exp.Position, &start, &end, &exp.Current, &exp.Description, &exp.SortOrder); err != nil {
			return nil, err
		}
		exp.StartDate = nullableTime(start)
		exp.EndDate = nullableTime(end)
		out = append(out, exp)
	}
	return out, rows.Err()
}

// CreateExperience inserts a work history entry.
func (r *PGRepo) CreateExperience(ctx context.Context, exp Experience) error {
	const query = `
INSERT INTO experiences (id, resume_id, company, position, start_date, end_date, current, description, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query, exp.ID, exp.ResumeID, exp.Company, exp.Position, exp.StartDate, exp.EndDate, exp.Current, exp.Description, exp.SortOrder)
	return err
}

// UpdateExperience rewrites a work history entry scoped to its resume.
func (r *PGRepo) UpdateExperience(ctx context.Context, exp Experience) error {
	const query = `
UPDATE experiences
SET company = $1, position = $2, start_date = $3, end_date = $4, current = $5, description = $6
WHERE resume_id = $7 AND id = $8`
	res, err := r.DB.ExecContext(ctx, query, exp.Company, exp.Position, exp.StartDate, exp.EndDate, exp.Current, exp.Description, exp.ResumeID, exp.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteExperience removes a work history entry.
func (r *PGRepo) DeleteExperience(ctx context.Context, resumeID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM experiences WHERE resume_id = $1 AND id = $2`, resumeID, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListEducations returns education entries for a resume.
func (r *PGRepo) ListEducations(ctx context.Context, resumeID string) ([]Education, error) {
	const query = `
SELECT id, resume_id, institution, degree, field_of_study, start_date, end_date, current, description, sort_order
FROM educations
WHERE resume_id = $1
ORDER BY sort_order ASC, start_date DESC NULLS LAST`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Education
	for rows.Next() {
		var edu Education
		var start, end sql.NullTime
		if err := rows.Scan(&edu.ID, &edu.ResumeID, &edu.Institution, &edu.Degree, &edu.FieldOfStudy, &start, &end, &edu.Current, &edu.Description, &edu.SortOrder); err != nil {
			return nil, err
		}
		edu.StartDate = nullableTime(start)
		edu.EndDate = nullableTime(end)
		out = append(out, edu)
	}
	return out, rows.Err()
}

// CreateEducation inserts an education entry.
func (r *PGRepo) CreateEducation(ctx context.Context, edu Education) error {
	const query = `
INSERT INTO educations (id, resume_id, institution, degree, field_of_study, start_date, end_date, current, description, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query, edu.ID, edu.ResumeID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate, edu.Current, edu.Description, edu.SortOrder)
	return err
}

// UpdateEducation rewrites an education entry scoped to its resume.
func (r *PGRepo) UpdateEducation(ctx context.Context, edu Education) error {
	const query = `
UPDATE educations
SET institution = $1, degree = $2, field_of_study = $3, start_date = $4, end_date = $5, current = $6, description = $7
WHERE resume_id = $8 AND id = $9`
	res, err := r.DB.ExecContext(ctx, query, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate, edu.Current, edu.Description, edu.ResumeID, edu.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteEducation removes an education entry.
func (r *PGRepo) DeleteEducation(ctx context.Context, resumeID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM educations WHERE resume_id = $1 AND id = $2`, resumeID, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListSkills returns skills for a resume.
func (r *PGRepo) ListSkills(ctx context.Context, resumeID string) ([]Skill, error) {
	const query = `
SELECT id, resume_id, name, level, sort_order
FROM skills
WHERE resume_id = $1
ORDER BY sort_order ASC, name ASC`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		var skill Skill
		if err := rows.Scan(&skill.ID, &skill.ResumeID, &skill.Name, &skill.Level, &skill.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, skill)
	}
	return out, rows.Err()
}

// CreateSkill inserts a skill.
func (r *PGRepo) CreateSkill(ctx context.Context, skill Skill) error {
	const query = `
INSERT INTO skills (id, resume_id, name, level, sort_order)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, skill.ID, skill.ResumeID, skill.Name, skill.Level, skill.SortOrder)
	return err
}

// UpdateSkill rewrites a skill scoped to its resume.
func (r *PGRepo) UpdateSkill(ctx context.Context, skill Skill) error {
	const query = `
UPDATE skills
SET name = $1, level = $2
WHERE resume_id = $3 AND id = $4`
	res, err := r.DB.ExecContext(ctx, query, skill.Name, skill.Level, skill.ResumeID, skill.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteSkill removes a skill.
func (r *PGRepo) DeleteSkill(ctx context.Context, resumeID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM skills WHERE resume_id = $1 AND id = $2`, resumeID, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListProjects returns resume-scoped project entries.
func (r *PGRepo) ListProjects(ctx context.Context, resumeID string) ([]Project, error) {
	const query = `
SELECT id, resume_id, name, description, technologies, project_url, source_url, start_date, end_date, sort_order
FROM resume_projects
WHERE resume_id = $1
ORDER BY sort_order ASC, start_date DESC NULLS LAST`

	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var project Project
		var start, end sql.NullTime
		var techRaw []byte
		if err := rows.Scan(&project.ID, &project.ResumeID, &project.Name, &project.Description, &techRaw, &project.ProjectURL, &project.SourceURL, &start, &end, &project.SortOrder); err != nil {
			return nil, err
		}
		project.StartDate = nullableTime(start)
		project.EndDate = nullableTime(end)
		if len(techRaw) > 0 {
			if err := json.Unmarshal(techRaw, &project.Technologies); err != nil {
				return nil, fmt.Errorf("decode technologies: %w", err)
			}
		}
		out = append(out, project)
	}
	return out, rows.Err()
}

// CreateProject inserts a resume-scoped project entry.
func (r *PGRepo) CreateProject(ctx context.Context, project Project) error {
	tech, err := encodeTechnologies(project.Technologies)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resume_projects (id, resume_id, name, description, technologies, project_url, source_url, start_date, end_date, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.DB.ExecContext(ctx, query, project.ID, project.ResumeID, project.Name, project.Description, tech, project.ProjectURL, project.SourceURL, project.StartDate, project.EndDate, project.SortOrder)
	return err
}

// UpdateProject rewrites a resume-scoped project entry.
func (r *PGRepo) UpdateProject(ctx context.Context, project Project) error {
	tech, err := encodeTechnologies(project.Technologies)
	if err != nil {
		return err
	}
	const query = `
UPDATE resume_projects
SET name = $1, description = $2, technologies = $3, project_url = $4, source_url = $5, start_date = $6, end_date = $7
WHERE resume_id = $8 AND id = $9`
	res, err := r.DB.ExecContext(ctx, query, project.Name, project.Description, tech, project.ProjectURL, project.SourceURL, project.StartDate, project.EndDate, project.ResumeID, project.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteProject removes a resume-scoped project entry.
func (r *PGRepo) DeleteProject(ctx context.Context, resumeID, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resume_projects WHERE resume_id = $1 AND id = $2`, resumeID, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	err := row.Scan(
		&resume.ID,
		&resume.Name,
		&resume.Title,
		&resume.Email,
		&resume.Phone,
		&resume.Location,
		&resume.Summary,
		&resume.GitHubURL,
		&resume.LinkedInURL,
		&resume.PortfolioURL,
		&resume.IsActive,
		&resume.PDFKey,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
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

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
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

var _ ResumesRepo = (*PGRepo)(nil)
