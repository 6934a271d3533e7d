package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	CourseCode  string    `json:"courseCode" db:"course_code" example:"IT501"` // Lookup key during ingestion, matched case-insensitively
	Name        string    `json:"name" db:"name"`
	Semester    int       `json:"semester" db:"semester"`
	Year        int       `json:"year" db:"year"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseFaculty defines the course-faculty assignment based on the 'course_faculty' table
type CourseFaculty struct {
	CourseID  int64     `json:"courseId" db:"course_id"`
	FacultyID int64     `json:"facultyId" db:"faculty_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
