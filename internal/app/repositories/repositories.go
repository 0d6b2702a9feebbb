package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository      *CourseRepository
	CartRepository        *CartRepository
	UserRepository        *UserRepository
	TeacherRepository     *TeacherRepository
	EnrollmentRepository  *EnrollmentRepository
	SettlementRepository  *SettlementRepository
	RoadmapRepository     *RoadmapRepository
	TestimonialRepository *TestimonialRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(db),
		CartRepository:        NewCartRepository(db),
		UserRepository:        NewUserRepository(db),
		TeacherRepository:     NewTeacherRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		SettlementRepository:  NewSettlementRepository(db),
		RoadmapRepository:     NewRoadmapRepository(db),
		TestimonialRepository: NewTestimonialRepository(db),
	}
}
