package dto

// ParticipantResponse is one student inside a project group listing
type ParticipantResponse struct {
	ID      int64       `json:"id"`
	Student UserSummary `json:"student"`
}

// ProjectResponse is one project group with its participants
type ProjectResponse struct {
	ID                int64                 `json:"id"`
	GroupNo           int                   `json:"groupNo" example:"1"`
	GroupName         string                `json:"groupName,omitempty"`
	Title             string                `json:"title,omitempty"`
	Description       string                `json:"description,omitempty"`
	FileURL           string                `json:"fileUrl,omitempty"`
	ExternalGuideName string                `json:"externalGuideName,omitempty"`
	CourseID          int64                 `json:"courseId"`
	Participants      []ParticipantResponse `json:"participants,omitempty"`
}

// StudentProjectResponse is one project group from the student's point of view
type StudentProjectResponse struct {
	ID                int64          `json:"id"`
	GroupNo           int            `json:"groupNo"`
	GroupName         string         `json:"groupName,omitempty"`
	Title             string         `json:"title,omitempty"`
	Description       string         `json:"description,omitempty"`
	FileURL           string         `json:"fileUrl,omitempty"`
	ExternalGuideName string         `json:"externalGuideName,omitempty"`
	Course            *CourseSummary `json:"course,omitempty"`
	Faculty           *UserSummary   `json:"faculty,omitempty"`
}

// CourseSummary is the compact course view embedded in project listings
type CourseSummary struct {
	ID         int64  `json:"id"`
	CourseCode string `json:"courseCode"`
	Name       string `json:"name"`
	Semester   int    `json:"semester"`
	Year       int    `json:"year"`
}
