package dto

// NewsCreateRequest payload for publishing news. IsPublished is optional
// and defaults to true when omitted.
type NewsCreateRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsPublished *bool  `json:"isPublished"`
}

// Validate reports field-level issues keyed by field name.
func (r NewsCreateRequest) Validate() map[string]any {
	issues := make(map[string]any)
	if r.Title == "" {
		issues["title"] = "Title is required"
	}
	if r.Content == "" {
		issues["content"] = "Content is required"
	}
	if r.Category == "" {
		issues["category"] = "Category is required"
	}
	return issues
}
