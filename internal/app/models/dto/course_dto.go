package dto

// CreateCourseRequest is the payload for course creation
type CreateCourseRequest struct {
	CourseCode  string `json:"courseCode" binding:"required" example:"IT501"`
	Name        string `json:"name" binding:"required" example:"Software Group Project"`
	Semester    int    `json:"semester" binding:"required,min=1,max=12" example:"5"`
	Year        int    `json:"year" binding:"required" example:"2025"`
	Description string `json:"description,omitempty"`
}

// CreateFacultyRequest is the payload for creating a faculty account
type CreateFacultyRequest struct {
	Name         string `json:"name" binding:"required" example:"Prof. X"`
	Email        string `json:"email" binding:"required,email" example:"prof@college.edu"`
	Password     string `json:"password" binding:"required,min=8"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// UpdateFacultyRequest is the payload for updating a faculty account
type UpdateFacultyRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// AssignFacultyRequest assigns a faculty member to a course
type AssignFacultyRequest struct {
	FacultyID int64 `json:"facultyId" binding:"required" example:"3"`
}
