package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name         string    `json:"name" db:"name" example:"Jane Doe"`                       // Display name
	Email        string    `json:"email" db:"email" example:"jane@college.edu"`             // Email address, unique (matched case-insensitively)
	Password     string    `json:"-" db:"password"`                                         // Hashed password (excluded from JSON)
	Role         Role      `json:"role" db:"role" example:"faculty"`                        // admin, faculty or student
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`               // Optional department reference
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
