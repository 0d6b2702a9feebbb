package dto

// UpsertTeacherRequest creates or updates a teacher profile. The profile is
// keyed by the identity-provider id in the URL, so the body carries only
// display attributes.
type UpsertTeacherRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Image           string `json:"image"`
	Phone           string `json:"phone"`
	Bio             string `json:"bio"`
	Specialization  string `json:"specialization"`
	Skills          string `json:"skills"`
	WorkingAt       string `json:"workingAt"`
	ExperienceYears int    `json:"experienceYears"`
	Location        string `json:"location"`
	Website         string `json:"website"`
}
