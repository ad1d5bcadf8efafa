package api

type SubjectRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

type Subject struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
