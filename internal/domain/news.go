package domain

import "time"

// News is a published announcement, event, or success story.
type News struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	IsPublished   bool      `json:"isPublished"`
}
