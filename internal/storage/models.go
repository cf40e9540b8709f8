package storage

import "time"

// BusinessRecord is one accepted local business. CompanyName always mirrors
// BusinessName in the exported file.
type BusinessRecord struct {
	SiteURL      string
	BusinessName string
	Industry     string
	CompanyName  string
	City         string
	Phone        string
	CreatedAt    time.Time
}

// Metrics tracks harvest statistics for export on exit
type Metrics struct {
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	TasksCompleted    int       `json:"tasks_completed"`
	PagesFetched      int       `json:"pages_fetched"`
	PagesFailed       int       `json:"pages_failed"`
	CandidatesSeen    int       `json:"candidates_seen"`
	DuplicatesSkipped int       `json:"duplicates_skipped"`
	RejectedNoWebsite int       `json:"rejected_no_website"`
	RejectedNoName    int       `json:"rejected_no_name"`
	DetailFailures    int       `json:"detail_failures"`
	Accepted          int       `json:"accepted"`
	TerminationReason string    `json:"termination_reason"`
}
