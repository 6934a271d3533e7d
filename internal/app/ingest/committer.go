package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned by Store lookups when no matching row exists.
var ErrNotFound = errors.New("not found")

// FatalError wraps a store failure that invalidates the whole run. Once the
// store itself is failing, per-row accounting can no longer be trusted.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("store failure: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Store is the persistence surface the committer runs against. Course and
// student lookups are case-insensitive on their key. EnsureProject and
// EnsureParticipant must be atomic find-or-create operations against the
// natural keys so concurrent uploads of the same group cannot duplicate rows.
type Store interface {
	FindCourseByCode(ctx context.Context, code string) (*models.Course, error)
	FindStudentByEmail(ctx context.Context, email string) (*models.User, error)
	EnsureProject(ctx context.Context, project *models.Project) (created bool, err error)
	EnsureParticipant(ctx context.Context, projectID, studentID int64) (added bool, err error)
}

// Committer persists group drafts. It recovers row-scoped failures locally and
// aborts only when the store itself is failing.
type Committer struct {
	store Store
	log   zerolog.Logger
}

// NewCommitter creates a new Committer.
func NewCommitter(store Store, log zerolog.Logger) *Committer {
	return &Committer{store: store, log: log}
}

// Commit persists each draft in order, folding outcomes into the report.
// A non-nil error means the run was aborted and the report is not trustworthy.
func (c *Committer) Commit(ctx context.Context, drafts []*GroupDraft, guide Identity, report *Report) error {
	for _, draft := range drafts {
		if err := c.commitDraft(ctx, draft, guide, report); err != nil {
			return err
		}
	}
	return nil
}

func (c *Committer) commitDraft(ctx context.Context, draft *GroupDraft, guide Identity, report *Report) error {
	// Skips already charged against this draft; used to keep group-granularity
	// failures from losing rows.
	draftSkipped := 0

	course, err := c.store.FindCourseByCode(ctx, draft.CourseCode)
	if errors.Is(err, ErrNotFound) {
		// Rejection happens at group granularity but every source row counts
		// individually toward the reported skip total.
		report.SkipN(ReasonCourseNotFound, draft.SourceRows)
		return nil
	}
	if err != nil {
		if isFatal(err) {
			return err
		}
		report.SkipN(ReasonRowError, draft.SourceRows)
		c.log.Warn().Err(err).Str("courseCode", draft.CourseCode).Int("groupNo", draft.GroupNo).Msg("Course lookup failed, skipping group")
		return nil
	}

	students := make([]*models.User, 0, len(draft.Students))
	for _, email := range draft.Students {
		student, err := c.store.FindStudentByEmail(ctx, email)
		if errors.Is(err, ErrNotFound) {
			report.Skip(ReasonStudentNotFound)
			draftSkipped++
			continue
		}
		if err != nil {
			if isFatal(err) {
				return err
			}
			report.Skip(ReasonRowError)
			draftSkipped++
			c.log.Warn().Err(err).Str("studentEmail", email).Msg("Student lookup failed, skipping row")
			continue
		}
		students = append(students, student)
	}

	project := &models.Project{
		GroupNo:           draft.GroupNo,
		GroupName:         draft.GroupName,
		Title:             draft.Title,
		Description:       draft.Description,
		FileURL:           draft.FileURL,
		ExternalGuideName: draft.ExternalGuideName,
		InternalGuideID:   guide.UserID,
		CourseID:          course.ID,
	}

	created, err := c.store.EnsureProject(ctx, project)
	if err != nil {
		if isFatal(err) {
			return err
		}
		report.SkipN(ReasonRowError, draft.SourceRows-draftSkipped)
		c.log.Warn().Err(err).Int("groupNo", draft.GroupNo).Str("courseCode", draft.CourseCode).Msg("Project upsert failed, skipping group")
		return nil
	}
	if created {
		report.CreatedProjects++
	}

	for _, student := range students {
		added, err := c.store.EnsureParticipant(ctx, project.ID, student.ID)
		if err != nil {
			if isFatal(err) {
				return err
			}
			report.Skip(ReasonRowError)
			c.log.Warn().Err(err).Int64("projectId", project.ID).Int64("studentId", student.ID).Msg("Participant upsert failed, skipping row")
			continue
		}
		if added {
			report.AddedParticipants++
		}
	}

	return nil
}

// isFatal reports whether a store error should abort the whole run rather than
// be charged to a single row.
func isFatal(err error) bool {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
