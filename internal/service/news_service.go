package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/events"
	"github.com/spec-kit/skills-registry/internal/repository"
)

// NewsService coordinates the news feed.
type NewsService struct {
	news       repository.NewsRepository
	dispatcher events.Dispatcher
}

// NewNewsService builds the service.
func NewNewsService(news repository.NewsRepository, dispatcher events.Dispatcher) *NewsService {
	return &NewsService{news: news, dispatcher: dispatcher}
}

// NewsInput describes a news submission after request validation.
// IsPublished defaults to true when the request leaves it unset.
type NewsInput struct {
	Title       string
	Content     string
	Category    string
	ImageURL    string
	IsPublished *bool
}

// Publish stores a news item.
func (s *NewsService) Publish(ctx context.Context, in NewsInput) (*domain.News, error) {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	item := &domain.News{
		Title:       in.Title,
		Content:     in.Content,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsPublished: published,
	}
	if err := s.news.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.dispatcher != nil && item.IsPublished {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNewsPublished,
			Timestamp: time.Now(),
			Payload: events.NewsPublishedPayload{
				NewsID:   item.ID,
				Category: item.Category,
				Title:    item.Title,
			},
		})
	}
	return item, nil
}

// Feed returns published items, newest first.
func (s *NewsService) Feed(ctx context.Context) ([]domain.News, error) {
	return s.news.ListPublished(ctx)
}

// ByID returns a news item regardless of publish state.
func (s *NewsService) ByID(ctx context.Context, id int) (*domain.News, error) {
	return s.news.GetByID(ctx, id)
}
