package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/rajank18/prograde/internal/app/ingest"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/repositories"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/rajank18/prograde/internal/pkg/filestage"
	"github.com/rs/zerolog"
)

// FacultyService handles course views and roster uploads for faculty members
type FacultyService struct {
	userRepo    *repositories.UserRepository
	courseRepo  *repositories.CourseRepository
	projectRepo *repositories.ProjectRepository
	pipeline    *ingest.Pipeline
	stager      *filestage.Stager
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(
	userRepo *repositories.UserRepository,
	courseRepo *repositories.CourseRepository,
	projectRepo *repositories.ProjectRepository,
	pipeline *ingest.Pipeline,
	stager *filestage.Stager,
	logger zerolog.Logger,
) *FacultyService {
	return &FacultyService{
		userRepo:    userRepo,
		courseRepo:  courseRepo,
		projectRepo: projectRepo,
		pipeline:    pipeline,
		stager:      stager,
		logger:      logger,
	}
}

// GetAssignedCourses retrieves the courses assigned to the faculty member
func (s *FacultyService) GetAssignedCourses(ctx context.Context, facultyID int64) ([]*models.Course, error) {
	return s.courseRepo.GetByFacultyID(ctx, facultyID)
}

// GetCourseProjects retrieves the projects the faculty member guides within a
// course. The faculty member must be assigned to the course.
func (s *FacultyService) GetCourseProjects(ctx context.Context, facultyID, courseID int64) ([]*models.Project, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	assigned, err := s.courseRepo.IsFacultyAssigned(ctx, courseID, facultyID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperrors.ErrFacultyNotAssigned
	}

	return s.projectRepo.GetByCourseAndGuide(ctx, courseID, facultyID)
}

// UploadRoster stages the uploaded CSV file and runs it through the ingestion
// pipeline under the uploading faculty member's identity. The staged file is
// removed before returning.
func (s *FacultyService) UploadRoster(ctx context.Context, facultyID int64, fileHeader *multipart.FileHeader) (*ingest.Report, error) {
	guide, err := s.userRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if guide.Role != models.RoleFaculty {
		return nil, apperrors.ErrNotFacultyRow
	}

	stagedPath, release, err := s.stager.Stage(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("error staging roster file: %w", err)
	}
	defer release()

	f, err := os.Open(stagedPath)
	if err != nil {
		return nil, fmt.Errorf("error reading staged roster file: %w", err)
	}
	defer f.Close()

	report, err := s.pipeline.Run(ctx, f, ingest.Identity{
		UserID: guide.ID,
		Email:  guide.Email,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("facultyId", facultyID).Msg("Roster upload failed")
		return nil, uploadError(err)
	}

	return report, nil
}

// uploadError maps pipeline failures onto the service's sentinels so the API
// layer can tell an unreadable file from a failing store.
func uploadError(err error) error {
	var decodeErr *ingest.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Errorf("%w: %v", apperrors.ErrDecodeFailed, err)
	}

	var fatalErr *ingest.FatalError
	if errors.As(err, &fatalErr) {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreFailure, err)
	}

	return err
}
