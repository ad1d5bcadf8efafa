package api

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
