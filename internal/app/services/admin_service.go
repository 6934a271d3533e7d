package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/models/dto"
	"github.com/rajank18/prograde/internal/app/repositories"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/rajank18/prograde/internal/pkg/auth"
)

// AdminService handles course and faculty administration
type AdminService struct {
	userRepo   *repositories.UserRepository
	courseRepo *repositories.CourseRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(userRepo *repositories.UserRepository, courseRepo *repositories.CourseRepository) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

// CreateCourse creates a new course
func (s *AdminService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		CourseCode:  strings.TrimSpace(req.CourseCode),
		Name:        strings.TrimSpace(req.Name),
		Semester:    req.Semester,
		Year:        req.Year,
		Description: req.Description,
	}

	if course.CourseCode == "" {
		return nil, apperrors.NewBadRequestError("course code cannot be empty")
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourses retrieves all courses
func (s *AdminService) GetCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourseByID retrieves a single course
func (s *AdminService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// CreateFaculty creates a faculty account
func (s *AdminService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     hashed,
		Role:         models.RoleFaculty,
		DepartmentID: req.DepartmentID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetAllFaculty retrieves all faculty accounts
func (s *AdminService) GetAllFaculty(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAllByRole(ctx, models.RoleFaculty)
}

// UpdateFaculty updates a faculty account
func (s *AdminService) UpdateFaculty(ctx context.Context, facultyID int64, req *dto.UpdateFacultyRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleFaculty {
		return nil, apperrors.ErrUserNotFound
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.TrimSpace(req.Email)
	user.DepartmentID = req.DepartmentID

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteFaculty deletes a faculty account
func (s *AdminService) DeleteFaculty(ctx context.Context, facultyID int64) error {
	user, err := s.userRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}

	if user.Role != models.RoleFaculty {
		return apperrors.ErrUserNotFound
	}

	return s.userRepo.Delete(ctx, facultyID)
}

// AssignFaculty assigns a faculty member to a course
func (s *AdminService) AssignFaculty(ctx context.Context, courseID, facultyID int64) error {
	user, err := s.userRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if user.Role != models.RoleFaculty {
		return apperrors.NewBadRequestError("user is not a faculty account")
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}

	return s.courseRepo.AssignFaculty(ctx, courseID, facultyID)
}

// RemoveFaculty removes a faculty member from a course
func (s *AdminService) RemoveFaculty(ctx context.Context, courseID, facultyID int64) error {
	return s.courseRepo.RemoveFaculty(ctx, courseID, facultyID)
}
