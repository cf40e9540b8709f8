package collector

import (
	"context"

	"github.com/haluvia/leadharvest/internal/places"
	"github.com/sirupsen/logrus"
)

// Searcher is the slice of the places client the driver consumes
type Searcher interface {
	TextSearch(ctx context.Context, query, pageToken string) (*places.SearchPage, error)
}

// Driver walks the text-search pagination for a single task
type Driver struct {
	source          Searcher
	pacer           *Pacer
	maxResults      int
	metricsCallback func(pagesFetched, pagesFailed int)
}

// NewDriver creates a search driver capped at maxResults per task
func NewDriver(source Searcher, pacer *Pacer, maxResults int, metricsCallback func(int, int)) *Driver {
	return &Driver{
		source:          source,
		pacer:           pacer,
		maxResults:      maxResults,
		metricsCallback: metricsCallback,
	}
}

// Search runs the paginated text search for one task. A page failure
// abandons the remaining pagination and returns the results collected so
// far; it never aborts the overall run. The returned slice is truncated to
// the per-search cap.
func (d *Driver) Search(ctx context.Context, task Task) []places.RawResult {
	query := task.Query()
	var collected []places.RawResult
	pageToken := ""

	for len(collected) < d.maxResults {
		// A cancelled run stops paginating without charging a failed page
		if ctx.Err() != nil {
			break
		}

		if pageToken != "" {
			// The service needs time before a next-page token is valid
			d.pacer.BeforeNextPage()
		}

		page, err := d.source.TextSearch(ctx, query, pageToken)
		if err != nil {
			logrus.Warnf("Search %q abandoned after %d results: %v", query, len(collected), err)
			if d.metricsCallback != nil {
				d.metricsCallback(0, 1) // pagesFailed++
			}
			break
		}

		if d.metricsCallback != nil {
			d.metricsCallback(1, 0) // pagesFetched++
		}

		collected = append(collected, page.Results...)

		if page.NextPageToken == "" || len(collected) >= d.maxResults {
			break
		}
		pageToken = page.NextPageToken
	}

	if len(collected) > d.maxResults {
		collected = collected[:d.maxResults]
	}
	return collected
}
