package dto

// GenerateRoadmapRequest asks the AI collaborator for a learning roadmap
type GenerateRoadmapRequest struct {
	Topic string `json:"topic" binding:"required" example:"Full Stack Developer"`
	Goal  string `json:"goal" example:"Land a junior role in 6 months"`
}
