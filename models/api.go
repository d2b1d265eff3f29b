package models

// UploadResponse is the body returned after a successful synchronous ingest.
type UploadResponse struct {
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	TotalChunks int    `json:"total_chunks"`
}

// ChatRequest is the question payload for the answer endpoint.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse carries the model's completion verbatim.
type ChatResponse struct {
	Answer string `json:"answer"`
}
