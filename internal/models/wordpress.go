package models

// Category represents a WordPress post category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Tag represents a WordPress post tag
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// PostRequest is the body sent when creating or updating a post
type PostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Format     string `json:"format"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
}

// Post holds the fields of a created or updated post that the publisher keeps
type Post struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

const (
	// StatusDraft is the only status posts are ever submitted with
	StatusDraft = "draft"
	// FormatStandard is the post format used for every submission
	FormatStandard = "standard"
)
