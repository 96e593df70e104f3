package events

import (
	"time"

	"github.com/spec-kit/skills-registry/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventSkillAdded     EventType = "skill_added"
	EventNewsPublished  EventType = "news_published"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int             `json:"user_id"`
	District string          `json:"district"`
	UserType domain.UserType `json:"user_type"`
}

// SkillAddedPayload payload.
type SkillAddedPayload struct {
	SkillID  int    `json:"skill_id"`
	UserID   int    `json:"user_id"`
	Category string `json:"category"`
}

// NewsPublishedPayload payload.
type NewsPublishedPayload struct {
	NewsID   int    `json:"news_id"`
	Category string `json:"category"`
	Title    string `json:"title"`
}
