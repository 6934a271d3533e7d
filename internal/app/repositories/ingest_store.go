package repositories

import (
	"context"
	"errors"

	"github.com/rajank18/prograde/internal/app/ingest"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/rajank18/prograde/internal/pkg/dberrors"
)

// IngestStore adapts the repositories to the ingestion pipeline's Store
// contract. It is also where store errors are classified: absence becomes the
// pipeline's ErrNotFound, data-level constraint violations stay row-scoped,
// and anything else (connection loss, timeouts) aborts the run — once the
// store itself is failing, per-row accounting cannot be trusted.
type IngestStore struct {
	users    *UserRepository
	courses  *CourseRepository
	projects *ProjectRepository
}

// NewIngestStore creates a new IngestStore over the given repositories.
func NewIngestStore(users *UserRepository, courses *CourseRepository, projects *ProjectRepository) *IngestStore {
	return &IngestStore{
		users:    users,
		courses:  courses,
		projects: projects,
	}
}

// classifyLookupErr translates a repository lookup error for the pipeline.
// notFound is the repository's absence sentinel; any other error means the
// store itself is misbehaving.
func classifyLookupErr(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ingest.ErrNotFound
	}
	return &ingest.FatalError{Err: err}
}

// classifyUpsertErr keeps data-level constraint violations row-scoped and
// escalates everything else.
func classifyUpsertErr(err error) error {
	if dberrors.IsUniqueViolation(err) || dberrors.IsForeignKeyViolation(err) {
		return err
	}
	return &ingest.FatalError{Err: err}
}

// FindCourseByCode resolves a course by its code, case-insensitively.
func (s *IngestStore) FindCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, classifyLookupErr(err, apperrors.ErrCourseNotFound)
	}
	return course, nil
}

// FindStudentByEmail resolves a student account by email, case-insensitively.
// Accounts with other roles do not match.
func (s *IngestStore) FindStudentByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmailAndRole(ctx, email, models.RoleStudent)
	if err != nil {
		return nil, classifyLookupErr(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// EnsureProject delegates to the atomic natural-key upsert.
func (s *IngestStore) EnsureProject(ctx context.Context, project *models.Project) (bool, error) {
	created, err := s.projects.EnsureProject(ctx, project)
	if err != nil {
		return false, classifyUpsertErr(err)
	}
	return created, nil
}

// EnsureParticipant delegates to the atomic pair upsert.
func (s *IngestStore) EnsureParticipant(ctx context.Context, projectID, studentID int64) (bool, error) {
	added, err := s.projects.EnsureParticipant(ctx, projectID, studentID)
	if err != nil {
		return false, classifyUpsertErr(err)
	}
	return added, nil
}
