package dto

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name         string `json:"name" binding:"required" example:"Jane Doe"`
	Email        string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password     string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Role         string `json:"role" binding:"required,oneof=admin faculty student" example:"student"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// UserSummary is the public view of a user account
type UserSummary struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Jane Doe"`
	Email string `json:"email" example:"jane@college.edu"`
	Role  string `json:"role" example:"student"`
}

// LoginResponse carries the issued token plus user summary
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn" example:"86400"`
	User      UserSummary `json:"user"`
}
