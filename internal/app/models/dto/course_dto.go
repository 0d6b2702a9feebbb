package dto

// CreateCourseRequest carries the teacher-supplied course attributes.
// Required-field validation happens in the catalog service so that missing
// fields can be named individually in the error response.
type CreateCourseRequest struct {
	Title       string `json:"title" example:"Full Stack Web Development"`
	Description string `json:"description"`
	Category    string `json:"category" example:"General"`
	Level       string `json:"level" example:"Beginner" enums:"Beginner,Intermediate,Advanced"`
	Duration    string `json:"duration" example:"8 weeks"`
	TotalSlots  int    `json:"totalSlots" example:"50"`
	Price       int64  `json:"price" example:"499"`
	ThumbnailURL string `json:"thumbnailUrl"`
	YoutubeURL  string `json:"youtubeUrl"`
	Notes       string `json:"notes"`
}

// UpdateCourseRequest is the owner-only patch for an existing course. Price is
// intentionally absent: it is locked after creation.
type UpdateCourseRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	Level        *string `json:"level,omitempty" enums:"Beginner,Intermediate,Advanced"`
	Duration     *string `json:"duration,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	YoutubeURL   *string `json:"youtubeUrl,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// TeacherCourseFilter selects which of a teacher's courses to list
type TeacherCourseFilter string

const (
	TeacherCoursesAll      TeacherCourseFilter = "all"
	TeacherCoursesPending  TeacherCourseFilter = "pending"
	TeacherCoursesApproved TeacherCourseFilter = "approved"
)
