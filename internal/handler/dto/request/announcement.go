package request

type AnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}
