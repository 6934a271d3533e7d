package services

import (
	"context"

	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/repositories"
)

// StudentService handles project views for students
type StudentService struct {
	projectRepo *repositories.ProjectRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(projectRepo *repositories.ProjectRepository) *StudentService {
	return &StudentService{
		projectRepo: projectRepo,
	}
}

// GetMyProjects retrieves the projects the student participates in
func (s *StudentService) GetMyProjects(ctx context.Context, studentID int64) ([]*models.Project, error) {
	return s.projectRepo.GetByStudentID(ctx, studentID)
}
