package feeds

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// RSSParser загружает и нормализует официальный RSS-фид оповещений
type RSSParser struct {
	feedURL string
	parser  *gofeed.Parser
}

// NewRSSParser создает парсер официального фида
func NewRSSParser(feedURL string, timeout time.Duration) *RSSParser {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	return &RSSParser{
		feedURL: feedURL,
		parser:  parser,
	}
}

// Parse возвращает нормализованный список элементов фида
func (p *RSSParser) Parse(ctx context.Context) ([]models.OfficialUpdate, error) {
	feed, err := p.parser.ParseURLWithContext(p.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse official feed: %w", err)
	}

	updates := make([]models.OfficialUpdate, 0, len(feed.Items))
	for _, item := range feed.Items {
		updates = append(updates, models.OfficialUpdate{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			Published:   item.Published,
		})
	}
	return updates, nil
}
