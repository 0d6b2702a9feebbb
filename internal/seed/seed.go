package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/skillbridge/skillbridge-backend/internal/app/models"
	appRepos "github.com/skillbridge/skillbridge-backend/internal/app/repositories"
)

// CreateDefaultData creates demo users, a teacher profile and a few courses
// so a fresh development database has something to browse. Everything here is
// idempotent; reruns update rather than duplicate.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	teacherRepo := appRepos.NewTeacherRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (users/teachers/courses)...")
	var finalErr error

	demoStudent := &appModels.User{
		ID:    "user_demo_student",
		Name:  "Demo Student",
		Email: "student@skillbridge.dev",
	}
	if err := userRepo.Upsert(ctx, demoStudent); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		finalErr = errors.Join(finalErr, err)
	}

	demoTeacher := &appModels.Teacher{
		ID:              "user_demo_teacher",
		Name:            "Demo Teacher",
		Email:           "teacher@skillbridge.dev",
		Specialization:  "Web Development",
		Skills:          "Go, PostgreSQL, React",
		WorkingAt:       "SkillBridge",
		ExperienceYears: 6,
		Bio:             "Teaches practical backend development.",
	}
	if err := teacherRepo.Upsert(ctx, demoTeacher); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo teacher")
		finalErr = errors.Join(finalErr, err)
	}

	// Courses are keyed by serial id, so only seed when the teacher has none.
	existing, err := courseRepo.ListByTeacher(ctx, demoTeacher.ID, "all")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing demo courses")
		return errors.Join(finalErr, err)
	}
	if len(existing) > 0 {
		return finalErr
	}

	now := time.Now()
	demoCourses := []*appModels.Course{
		{
			Title:          "Go Backend Fundamentals",
			Description:    "Build REST APIs with Go and PostgreSQL from scratch.",
			Category:       "Programming",
			Level:          appModels.LevelBeginner,
			Duration:       "8 weeks",
			Price:          499,
			TotalSlots:     50,
			AvailableSlots: 50,
			ThumbnailURL:   "https://cdn.skillbridge.dev/thumbs/go-backend.png",
			YoutubeURL:     "https://youtube.com/watch?v=demo-go-backend",
			CreatedBy:      demoTeacher.ID,
		},
		{
			Title:          "Advanced SQL for Developers",
			Description:    "Window functions, indexing strategies and transaction design.",
			Category:       "Databases",
			Level:          appModels.LevelAdvanced,
			Duration:       "6 weeks",
			Price:          799,
			TotalSlots:     30,
			AvailableSlots: 30,
			ThumbnailURL:   "https://cdn.skillbridge.dev/thumbs/advanced-sql.png",
			YoutubeURL:     "https://youtube.com/watch?v=demo-advanced-sql",
			CreatedBy:      demoTeacher.ID,
		},
	}

	for _, course := range demoCourses {
		if err := courseRepo.Create(ctx, course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		// Publish the first demo course so the catalog is not empty.
		if course.Title == "Go Backend Fundamentals" {
			if err := courseRepo.Approve(ctx, course.ID, now); err != nil {
				lgr.Error().Err(err).Msg("Error approving demo course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check complete.")
	return finalErr
}
