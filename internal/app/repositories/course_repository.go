package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/rajank18/prograde/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses and course-faculty
// assignments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, course_code, name, semester, year, COALESCE(description, ''), created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.CourseCode,
		&course.Name,
		&course.Semester,
		&course.Year,
		&course.Description,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_code, name, semester, year, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseCode, course.Name, course.Semester, course.Year, course.Description).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("course code already exists")
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY year DESC, semester DESC, course_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetByCode retrieves a course by course code. Matching is case-insensitive.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE lower(course_code) = lower($1)`

	course, err := scanCourse(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}

	return course, nil
}

// AssignFaculty assigns a faculty member to a course
func (r *CourseRepository) AssignFaculty(ctx context.Context, courseID, facultyID int64) error {
	query := `INSERT INTO course_faculty (course_id, faculty_id) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, courseID, facultyID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyAlreadyAssigned
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error assigning faculty to course: %w", err)
	}

	return nil
}

// RemoveFaculty removes a faculty member from a course
func (r *CourseRepository) RemoveFaculty(ctx context.Context, courseID, facultyID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM course_faculty WHERE course_id = $1 AND faculty_id = $2`, courseID, facultyID)
	if err != nil {
		return fmt.Errorf("error removing faculty from course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("faculty is not assigned to this course")
	}

	return nil
}

// IsFacultyAssigned checks if a faculty member is assigned to a course
func (r *CourseRepository) IsFacultyAssigned(ctx context.Context, courseID, facultyID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM course_faculty WHERE course_id = $1 AND faculty_id = $2)`,
		courseID, facultyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course assignment: %w", err)
	}

	return exists, nil
}

// GetByFacultyID retrieves all courses assigned to a faculty member
func (r *CourseRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.course_code, c.name, c.semester, c.year, COALESCE(c.description, ''), c.created_at, c.updated_at
		FROM courses c
		JOIN course_faculty cf ON cf.course_id = c.id
		WHERE cf.faculty_id = $1
		ORDER BY c.year DESC, c.semester DESC, c.course_code
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
