package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tacogips/altadder/internal/debug"
	"github.com/tacogips/altadder/internal/source/model"
	"github.com/tacogips/altadder/internal/source/trust"
	"github.com/tacogips/altadder/internal/view"
)

// CardFetcher fetches a source document without relay fallback.
type CardFetcher interface {
	FetchCard(ctx context.Context, url string) (*model.SourceDocument, error)
}

// TrustedCards fetches every trusted source concurrently and returns a card
// for each one that loads, in registry order. Failing sources are skipped.
func TrustedCards(ctx context.Context, fetcher CardFetcher, registry *trust.Registry) []view.Card {
	if registry == nil {
		registry = trust.Default()
	}

	urls := registry.URLs()
	docs := make([]*model.SourceDocument, len(urls))

	var g errgroup.Group
	for i, url := range urls {
		g.Go(func() error {
			doc, err := fetcher.FetchCard(ctx, url)
			if err != nil {
				debug.Debug("[app] Skipping trusted source %s: %v", url, err)
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	var cards []view.Card
	for i, doc := range docs {
		if doc != nil {
			cards = append(cards, view.ProjectCard(doc, urls[i]))
		}
	}
	return cards
}
