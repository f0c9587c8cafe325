package model

// APIResponse is the uniform envelope for mutating/action endpoints and
// error responses.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ResumeInfo is the metadata returned by the resume download endpoint.
// Size and URL are filled only when a resume object is configured in
// object storage; no file content is ever streamed through the API.
type ResumeInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
	URL      string `json:"url,omitempty"`
}
