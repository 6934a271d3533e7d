package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	ProjectRepository *ProjectRepository
	IngestStore       *IngestStore
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	users := NewUserRepository(db)
	courses := NewCourseRepository(db)
	projects := NewProjectRepository(db)

	return &Repositories{
		UserRepository:    users,
		CourseRepository:  courses,
		ProjectRepository: projects,
		IngestStore:       NewIngestStore(users, courses, projects),
	}
}
