package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/pkg/helpers"
)

// ProjectRepository handles database operations for projects and their
// participants
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// EnsureProject inserts the project unless a row with the same natural key
// (course_id, internal_guide_id, group_no) already exists. The insert relies
// on the unique constraint so two concurrent uploads of the same group cannot
// both create it. Existing rows keep their group-level fields untouched.
func (r *ProjectRepository) EnsureProject(ctx context.Context, project *models.Project) (bool, error) {
	insert := `
		INSERT INTO projects (group_no, group_name, title, description, file_url, internal_guide_id, external_guide_name, course_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (course_id, internal_guide_id, group_no) DO NOTHING
		RETURNING id
	`

	err := r.db.QueryRow(ctx, insert,
		project.GroupNo,
		helpers.NullString(project.GroupName),
		helpers.NullString(project.Title),
		helpers.NullString(project.Description),
		helpers.NullString(project.FileURL),
		project.InternalGuideID,
		helpers.NullString(project.ExternalGuideName),
		project.CourseID,
	).Scan(&project.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error inserting project: %w", err)
	}

	// Conflict: the group already exists, reuse it.
	err = r.db.QueryRow(ctx,
		`SELECT id FROM projects WHERE course_id = $1 AND internal_guide_id = $2 AND group_no = $3`,
		project.CourseID, project.InternalGuideID, project.GroupNo,
	).Scan(&project.ID)
	if err != nil {
		return false, fmt.Errorf("error resolving existing project: %w", err)
	}

	return false, nil
}

// EnsureParticipant inserts the (project, student) pair unless it already
// exists. Reports whether a new row was added.
func (r *ProjectRepository) EnsureParticipant(ctx context.Context, projectID, studentID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO project_participants (project_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, student_id) DO NOTHING
	`, projectID, studentID)
	if err != nil {
		return false, fmt.Errorf("error inserting participant: %w", err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

const projectColumns = `id, group_no, COALESCE(group_name, ''), COALESCE(title, ''), COALESCE(description, ''),
		COALESCE(file_url, ''), internal_guide_id, COALESCE(external_guide_name, ''), course_id, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.GroupNo,
		&project.GroupName,
		&project.Title,
		&project.Description,
		&project.FileURL,
		&project.InternalGuideID,
		&project.ExternalGuideName,
		&project.CourseID,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByCourseAndGuide retrieves all projects for a course where the given
// faculty member is the internal guide, participants included, ordered by
// group number.
func (r *ProjectRepository) GetByCourseAndGuide(ctx context.Context, courseID, guideID int64) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE course_id = $1 AND internal_guide_id = $2 ORDER BY group_no ASC`

	rows, err := r.db.Query(ctx, query, courseID, guideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, project := range projects {
		participants, err := r.getParticipants(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		project.Participants = participants
	}

	return projects, nil
}

// getParticipants loads the participants of one project with their student
// summaries.
func (r *ProjectRepository) getParticipants(ctx context.Context, projectID int64) ([]*models.ProjectParticipant, error) {
	query := `
		SELECT pp.id, pp.project_id, pp.student_id, pp.created_at, u.id, u.name, u.email, u.role
		FROM project_participants pp
		JOIN users u ON u.id = pp.student_id
		WHERE pp.project_id = $1
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.ProjectParticipant
	for rows.Next() {
		var participant models.ProjectParticipant
		var student models.User
		if err := rows.Scan(
			&participant.ID,
			&participant.ProjectID,
			&participant.StudentID,
			&participant.CreatedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Role,
		); err != nil {
			return nil, err
		}
		participant.Student = &student
		participants = append(participants, &participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// GetByStudentID retrieves all projects a student participates in, with course
// and internal guide attached, ordered by group number.
func (r *ProjectRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Project, error) {
	query := `
		SELECT p.id, p.group_no, COALESCE(p.group_name, ''), COALESCE(p.title, ''), COALESCE(p.description, ''),
			COALESCE(p.file_url, ''), p.internal_guide_id, COALESCE(p.external_guide_name, ''), p.course_id,
			p.created_at, p.updated_at,
			c.id, c.course_code, c.name, c.semester, c.year,
			g.id, g.name, g.email, g.role
		FROM projects p
		JOIN project_participants pp ON pp.project_id = p.id
		JOIN courses c ON c.id = p.course_id
		JOIN users g ON g.id = p.internal_guide_id
		WHERE pp.student_id = $1
		ORDER BY p.group_no ASC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		var course models.Course
		var guide models.User
		if err := rows.Scan(
			&project.ID,
			&project.GroupNo,
			&project.GroupName,
			&project.Title,
			&project.Description,
			&project.FileURL,
			&project.InternalGuideID,
			&project.ExternalGuideName,
			&project.CourseID,
			&project.CreatedAt,
			&project.UpdatedAt,
			&course.ID,
			&course.CourseCode,
			&course.Name,
			&course.Semester,
			&course.Year,
			&guide.ID,
			&guide.Name,
			&guide.Email,
			&guide.Role,
		); err != nil {
			return nil, err
		}
		project.Course = &course
		project.Guide = &guide
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
