package collector

import (
	"context"
	"strings"

	"github.com/haluvia/leadharvest/internal/places"
	"github.com/haluvia/leadharvest/internal/storage"
	"github.com/sirupsen/logrus"
)

// Detailer is the slice of the places client the aggregator consumes
type Detailer interface {
	PlaceDetails(ctx context.Context, placeID string) (*places.Detail, error)
}

// Outcome classifies the terminal state of one candidate
type Outcome int

const (
	Accepted Outcome = iota
	RejectedDuplicate
	RejectedNoWebsite
	RejectedNoName
)

// Checkpointer persists accepted records as they are produced
type Checkpointer interface {
	SaveBusiness(placeID string, rec storage.BusinessRecord) error
}

// Aggregator owns the run-scoped dedup state and the ordered result set.
// It is driven by a single goroutine; the dedup sets never need locking.
type Aggregator struct {
	details       Detailer
	pacer         *Pacer
	includeNoSite bool
	checkpoint    Checkpointer
	onDetailError func()

	seenPlaceIDs map[string]struct{}
	seenNameCity map[string]struct{}
	results      []storage.BusinessRecord
}

// NewAggregator creates an aggregator. checkpoint and onDetailError may be
// nil when persistence or metrics are not wanted (tests).
func NewAggregator(details Detailer, pacer *Pacer, includeNoSite bool, checkpoint Checkpointer, onDetailError func()) *Aggregator {
	return &Aggregator{
		details:       details,
		pacer:         pacer,
		includeNoSite: includeNoSite,
		checkpoint:    checkpoint,
		onDetailError: onDetailError,
		seenPlaceIDs:  make(map[string]struct{}),
		seenNameCity:  make(map[string]struct{}),
	}
}

// Seed preloads dedup state and results from a previous checkpoint so an
// interrupted run keeps its progress. placeIDs is parallel to records; an
// empty entry means the listing had no place ID.
func (a *Aggregator) Seed(records []storage.BusinessRecord, placeIDs []string) {
	for i, rec := range records {
		if i < len(placeIDs) && placeIDs[i] != "" {
			a.seenPlaceIDs[placeIDs[i]] = struct{}{}
		}
		a.seenNameCity[nameCityKey(rec.BusinessName, rec.City)] = struct{}{}
		a.results = append(a.results, rec)
	}
}

// Process runs one candidate through the dedup/enrich/accept pipeline.
// Candidates rejected for lacking a website are NOT remembered, so a later
// encounter with better data gets a fresh enrichment attempt.
func (a *Aggregator) Process(ctx context.Context, task Task, raw places.RawResult) Outcome {
	if raw.PlaceID != "" {
		if _, dup := a.seenPlaceIDs[raw.PlaceID]; dup {
			return RejectedDuplicate
		}
	}

	name := strings.TrimSpace(raw.Name)
	website := strings.TrimSpace(raw.Website)
	phone := ""

	if website == "" && raw.PlaceID != "" {
		a.pacer.BeforeDetail()
		detail, err := a.details.PlaceDetails(ctx, raw.PlaceID)
		if err != nil {
			// Degrade to "no website known" rather than dropping the candidate
			logrus.Warnf("Details unavailable for %q (%s, %s): %v", name, task.Industry, task.City, err)
			if a.onDetailError != nil {
				a.onDetailError()
			}
		} else {
			website = strings.TrimSpace(detail.Website)
			phone = strings.TrimSpace(detail.Phone)
			if detailName := strings.TrimSpace(detail.Name); detailName != "" {
				name = detailName
			}
		}
	}

	if name == "" {
		return RejectedNoName
	}
	if !a.includeNoSite && website == "" {
		return RejectedNoWebsite
	}

	key := nameCityKey(name, task.City)
	if _, dup := a.seenNameCity[key]; dup {
		return RejectedDuplicate
	}

	if raw.PlaceID != "" {
		a.seenPlaceIDs[raw.PlaceID] = struct{}{}
	}
	a.seenNameCity[key] = struct{}{}

	rec := storage.BusinessRecord{
		SiteURL:      website,
		BusinessName: name,
		Industry:     task.Industry,
		CompanyName:  name,
		City:         task.City,
		Phone:        phone,
	}
	a.results = append(a.results, rec)

	if a.checkpoint != nil {
		if err := a.checkpoint.SaveBusiness(raw.PlaceID, rec); err != nil {
			logrus.Warnf("Checkpoint write failed for %q: %v", name, err)
		}
	}

	return Accepted
}

// Results returns the accepted records in first-seen order
func (a *Aggregator) Results() []storage.BusinessRecord {
	return a.results
}

// Len returns the number of accepted records
func (a *Aggregator) Len() int {
	return len(a.results)
}

func nameCityKey(name, city string) string {
	return name + "|" + city
}
