package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/app/models/dto"
	"github.com/rajank18/prograde/internal/app/services"
	"github.com/rajank18/prograde/internal/middleware"
	"github.com/rs/zerolog"
)

// AdminController handles course and faculty administration endpoints
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.adminService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseCode", course.CourseCode).Msg("Course created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses [get]
func (c *AdminController) GetCourses(ctx *gin.Context) {
	courses, err := c.adminService.GetCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id} [get]
func (c *AdminController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.adminService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// CreateFaculty handles faculty account creation
// @Summary Create a faculty account
// @Description Creates a new faculty account with the provided information
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.UserSummary} "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty [post]
func (c *AdminController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.adminService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("facultyId", user.ID).Msg("Faculty account created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
		Timestamp: time.Now(),
	})
}

// GetAllFaculty retrieves all faculty accounts
// @Summary Get all faculty
// @Description Retrieves a list of all faculty accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserSummary} "Faculty retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty [get]
func (c *AdminController) GetAllFaculty(ctx *gin.Context) {
	faculty, err := c.adminService.GetAllFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summaries := make([]dto.UserSummary, 0, len(faculty))
	for _, user := range faculty {
		summaries = append(summaries, dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summaries,
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates a faculty account
// @Summary Update a faculty account
// @Description Updates an existing faculty account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Faculty information"
// @Success 200 {object} dto.APIResponse{data=dto.UserSummary} "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty/{id} [put]
func (c *AdminController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.adminService.UpdateFaculty(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
		Timestamp: time.Now(),
	})
}

// DeleteFaculty deletes a faculty account
// @Summary Delete a faculty account
// @Description Deletes an existing faculty account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/faculty/{id} [delete]
func (c *AdminController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty deleted successfully"},
		Timestamp: time.Now(),
	})
}

// AssignFaculty assigns a faculty member to a course
// @Summary Assign faculty to course
// @Description Assigns a faculty member to a course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AssignFacultyRequest true "Faculty assignment"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course or faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty already assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id}/faculty [post]
func (c *AdminController) AssignFaculty(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.AssignFaculty(ctx.Request.Context(), courseID, req.FacultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("courseId", courseID).Int64("facultyId", req.FacultyID).Msg("Faculty assigned to course")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty assigned successfully"},
		Timestamp: time.Now(),
	})
}

// RemoveFaculty removes a faculty member from a course
// @Summary Remove faculty from course
// @Description Removes a faculty member's assignment from a course
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param facultyId path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Faculty removed successfully"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/courses/{id}/faculty/{facultyId} [delete]
func (c *AdminController) RemoveFaculty(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "facultyId")
	if !ok {
		return
	}

	if err := c.adminService.RemoveFaculty(ctx.Request.Context(), courseID, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty removed successfully"},
		Timestamp: time.Now(),
	})
}
