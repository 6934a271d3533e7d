package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/app/ingest"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/models/dto"
	"github.com/rajank18/prograde/internal/app/services"
	"github.com/rajank18/prograde/internal/middleware"
	"github.com/rs/zerolog"
)

// FacultyController handles course views and roster uploads for faculty
type FacultyController struct {
	facultyService *services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		logger:         logger,
	}
}

// callerID extracts the authenticated user's ID from the request context
func callerID(ctx *gin.Context) (int64, bool) {
	raw, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	id, ok := raw.(int64)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetMyCourses retrieves the courses assigned to the caller
// @Summary Get assigned courses
// @Description Retrieves the courses the authenticated faculty member is assigned to
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/courses [get]
func (c *FacultyController) GetMyCourses(ctx *gin.Context) {
	facultyID, ok := callerID(ctx)
	if !ok {
		return
	}

	courses, err := c.facultyService.GetAssignedCourses(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseProjects retrieves the caller's project groups within a course
// @Summary Get course projects
// @Description Retrieves the project groups the authenticated faculty member guides in a course
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ProjectResponse} "Projects retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 403 {object} dto.ErrorResponse "Faculty not assigned to course"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/courses/{id}/projects [get]
func (c *FacultyController) GetCourseProjects(ctx *gin.Context) {
	facultyID, ok := callerID(ctx)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	projects, err := c.facultyService.GetCourseProjects(ctx.Request.Context(), facultyID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// UploadRoster handles a CSV roster upload
// @Summary Upload project roster
// @Description Ingests a CSV file of project groups and students. Rows naming another guide or unknown students are counted as skipped; the call succeeds with a per-reason breakdown.
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV roster file"
// @Success 200 {object} dto.UploadReportResponse "Upload processed"
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a faculty account"
// @Failure 500 {object} dto.ErrorResponse "Malformed file or store failure"
// @Router /faculty/projects/upload [post]
func (c *FacultyController) UploadRoster(ctx *gin.Context) {
	facultyID, ok := callerID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		c.logger.Warn().Err(err).Int64("facultyId", facultyID).Msg("Roster upload without file")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file was uploaded")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	report, err := c.facultyService.UploadRoster(ctx.Request.Context(), facultyID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toUploadReportResponse(report))
}

func toProjectResponse(project *models.Project) dto.ProjectResponse {
	resp := dto.ProjectResponse{
		ID:                project.ID,
		GroupNo:           project.GroupNo,
		GroupName:         project.GroupName,
		Title:             project.Title,
		Description:       project.Description,
		FileURL:           project.FileURL,
		ExternalGuideName: project.ExternalGuideName,
		CourseID:          project.CourseID,
	}
	for _, participant := range project.Participants {
		if participant.Student == nil {
			continue
		}
		resp.Participants = append(resp.Participants, dto.ParticipantResponse{
			ID: participant.ID,
			Student: dto.UserSummary{
				ID:    participant.Student.ID,
				Name:  participant.Student.Name,
				Email: participant.Student.Email,
				Role:  string(participant.Student.Role),
			},
		})
	}
	return resp
}

func toUploadReportResponse(report *ingest.Report) dto.UploadReportResponse {
	return dto.UploadReportResponse{
		CreatedProjects:   report.CreatedProjects,
		AddedParticipants: report.AddedParticipants,
		SkippedRows:       report.SkippedRows,
		SkippedByReason: dto.SkippedByReasonBody{
			InternalGuideMismatch: report.SkippedByReason[ingest.ReasonInternalGuideMismatch],
			MissingFields:         report.SkippedByReason[ingest.ReasonMissingFields],
			CourseNotFound:        report.SkippedByReason[ingest.ReasonCourseNotFound],
			StudentNotFound:       report.SkippedByReason[ingest.ReasonStudentNotFound],
			RowError:              report.SkippedByReason[ingest.ReasonRowError],
		},
	}
}
