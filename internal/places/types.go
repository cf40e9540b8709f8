package places

import "fmt"

// RawResult is one entry from a text-search page. PlaceID and Name are
// guaranteed non-empty by the client; Website is present only when the
// service includes it on the search page itself.
type RawResult struct {
	PlaceID string
	Name    string
	Website string
}

// SearchPage is one decoded page of text-search results
type SearchPage struct {
	Results       []RawResult
	NextPageToken string
}

// Detail carries the fields consumed from the place-details endpoint
type Detail struct {
	PlaceID string
	Name    string
	Website string
	Phone   string
}

// StatusError reports a non-OK service status (quota exhausted, request
// denied, invalid request, ...)
type StatusError struct {
	Endpoint string
	Status   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("places %s returned status %s", e.Endpoint, e.Status)
}
