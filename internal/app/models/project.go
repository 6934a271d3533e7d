package models

import (
	"time"
)

// Project represents one group's submission for one course.
// The natural key (CourseID, InternalGuideID, GroupNo) is unique and serves as
// the idempotence key across repeated roster uploads.
type Project struct {
	ID                int64     `json:"id" db:"id"`
	GroupNo           int       `json:"groupNo" db:"group_no"`
	GroupName         string    `json:"groupName,omitempty" db:"group_name"`
	Title             string    `json:"title,omitempty" db:"title"`
	Description       string    `json:"description,omitempty" db:"description"`
	FileURL           string    `json:"fileUrl,omitempty" db:"file_url"`
	InternalGuideID   int64     `json:"internalGuideId" db:"internal_guide_id"`
	ExternalGuideName string    `json:"externalGuideName,omitempty" db:"external_guide_name"`
	CourseID          int64     `json:"courseId" db:"course_id"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`

	Participants []*ProjectParticipant `json:"participants,omitempty"` // Relation, no db tag
	Course       *Course               `json:"course,omitempty"`       // Relation, no db tag
	Guide        *User                 `json:"internalGuide,omitempty"`
}

// ProjectParticipant joins a student to a project group.
// (ProjectID, StudentID) is unique; a student appears at most once per project.
type ProjectParticipant struct {
	ID        int64     `json:"id" db:"id"`
	ProjectID int64     `json:"projectId" db:"project_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Student *User `json:"student,omitempty"` // Relation, no db tag
}
