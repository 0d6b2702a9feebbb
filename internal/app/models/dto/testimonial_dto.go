package dto

// AddTestimonialRequest posts one entry to the testimonial wall
type AddTestimonialRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" example:"Learner"`
	Message     string `json:"message" binding:"required"`
	Avatar      string `json:"avatar" binding:"required"`
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5" example:"5"`
	Achievement string `json:"achievement" example:"Verified Learner"`
}
