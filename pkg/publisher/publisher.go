// Package publisher delivers a finished post (caption, hashtags, image) to
// the configured messaging destinations. Destinations report local
// success/failure outcomes instead of raising: one destination's failure
// never aborts the others, and the image file is only read — cleanup is the
// orchestrator's responsibility once every attempt has finished.
package publisher

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
)

const publisherSuccessDetail = "Success"

// Post is the publishable tuple.
type Post struct {
	Text      string
	Hashtags  []string
	ImagePath string
}

// Caption renders the post text with the hashtag line appended.
func (p Post) Caption() string {
	if len(p.Hashtags) == 0 {
		return p.Text
	}

	return p.Text + "\n\n" + strings.Join(p.Hashtags, " ")
}

// Destination is one messaging channel.
type Destination interface {
	Name() string
	Publish(ctx context.Context, post Post) models.PublishOutcome
}

// Publisher fans a post out to every configured destination.
type Publisher struct {
	destinations []Destination
	logger       *slog.Logger
}

func New(logger *slog.Logger, destinations ...Destination) *Publisher {
	return &Publisher{
		destinations: destinations,
		logger:       logger.With("module", "publisher"),
	}
}

// PublishAll attempts delivery to each destination in order and returns one
// outcome per destination.
func (p *Publisher) PublishAll(ctx context.Context, post Post) []models.PublishOutcome {
	outcomes := make([]models.PublishOutcome, 0, len(p.destinations))

	for _, destination := range p.destinations {
		p.logger.InfoContext(ctx, "Attempting to post", "destination", destination.Name())

		outcome := destination.Publish(ctx, post)
		if outcome.OK {
			p.logger.InfoContext(ctx, "Post delivered", "destination", destination.Name())
		} else {
			p.logger.ErrorContext(ctx, "Post failed", "destination", destination.Name(), "detail", outcome.Detail)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}
