package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/app/models/dto"
	"github.com/rajank18/prograde/internal/app/services"
	"github.com/rajank18/prograde/internal/middleware"
)

// StudentController handles project views for students
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetMyProjects retrieves the caller's project groups
// @Summary Get my projects
// @Description Retrieves the project groups the authenticated student participates in
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentProjectResponse} "Projects retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/projects [get]
func (c *StudentController) GetMyProjects(ctx *gin.Context) {
	studentID, ok := callerID(ctx)
	if !ok {
		return
	}

	projects, err := c.studentService.GetMyProjects(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.StudentProjectResponse, 0, len(projects))
	for _, project := range projects {
		resp := dto.StudentProjectResponse{
			ID:                project.ID,
			GroupNo:           project.GroupNo,
			GroupName:         project.GroupName,
			Title:             project.Title,
			Description:       project.Description,
			FileURL:           project.FileURL,
			ExternalGuideName: project.ExternalGuideName,
		}
		if project.Course != nil {
			resp.Course = &dto.CourseSummary{
				ID:         project.Course.ID,
				CourseCode: project.Course.CourseCode,
				Name:       project.Course.Name,
				Semester:   project.Course.Semester,
				Year:       project.Course.Year,
			}
		}
		if project.Guide != nil {
			resp.Faculty = &dto.UserSummary{
				ID:    project.Guide.ID,
				Name:  project.Guide.Name,
				Email: project.Guide.Email,
				Role:  string(project.Guide.Role),
			}
		}
		responses = append(responses, resp)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}
