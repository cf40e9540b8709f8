package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/haluvia/leadharvest/internal/storage"
)

// Tracker holds and manages harvest metrics
type Tracker struct {
	mu   sync.Mutex
	data storage.Metrics
}

// NewTracker creates a new metrics tracker
func NewTracker() *Tracker {
	return &Tracker{
		data: storage.Metrics{
			StartTime: time.Now(),
		},
	}
}

// IncrementTasksCompleted increments the completed-task counter
func (t *Tracker) IncrementTasksCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.TasksCompleted++
}

// AddPages records fetched/failed search pages
func (t *Tracker) AddPages(fetched, failed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.PagesFetched += fetched
	t.data.PagesFailed += failed
}

// IncrementCandidatesSeen increments the candidate counter
func (t *Tracker) IncrementCandidatesSeen() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.CandidatesSeen++
}

// IncrementDuplicatesSkipped increments the duplicate counter
func (t *Tracker) IncrementDuplicatesSkipped() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.DuplicatesSkipped++
}

// IncrementRejectedNoWebsite increments the website-policy rejection counter
func (t *Tracker) IncrementRejectedNoWebsite() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.RejectedNoWebsite++
}

// IncrementRejectedNoName increments the empty-name rejection counter
func (t *Tracker) IncrementRejectedNoName() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.RejectedNoName++
}

// IncrementDetailFailures increments the failed-enrichment counter
func (t *Tracker) IncrementDetailFailures() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.DetailFailures++
}

// IncrementAccepted increments the accepted-record counter
func (t *Tracker) IncrementAccepted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.Accepted++
}

// GetSnapshot returns a copy of current metrics
func (t *Tracker) GetSnapshot() storage.Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// WriteToFile exports metrics to a JSON file
func (t *Tracker) WriteToFile(path, reason string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.data.EndTime = time.Now()
	t.data.TerminationReason = reason

	jsonData, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// LogProgress prints current metrics to console (for periodic updates)
func (t *Tracker) LogProgress() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return fmt.Sprintf("Tasks: %d done | Pages: %d fetched, %d failed | Candidates: %d seen, %d dup, %d no-site, %d no-name | Details: %d failed | Accepted: %d",
		t.data.TasksCompleted,
		t.data.PagesFetched,
		t.data.PagesFailed,
		t.data.CandidatesSeen,
		t.data.DuplicatesSkipped,
		t.data.RejectedNoWebsite,
		t.data.RejectedNoName,
		t.data.DetailFailures,
		t.data.Accepted,
	)
}
