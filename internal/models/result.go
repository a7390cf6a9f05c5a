package models

// Result is the structured outcome printed by the CLI
type Result struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Title    string   `json:"title,omitempty"`
	PostID   int      `json:"post_id,omitempty"`
	PostURL  string   `json:"post_url,omitempty"`
	EditURL  string   `json:"edit_url,omitempty"`
	Status   string   `json:"status,omitempty"`
	Action   string   `json:"action,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Failure builds an unsuccessful result carrying the given message
func Failure(msg string) *Result {
	return &Result{Success: false, Error: msg}
}
