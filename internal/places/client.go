package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// detailFields limits the details response to the fields we consume
	detailFields = "place_id,name,website,formatted_phone_number"
)

// Service statuses that still carry a usable page
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// Client calls the Places web service (text search + place details)
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Places API client with the given request timeout
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// searchResponse is the wire shape of one text-search page
type searchResponse struct {
	Status        string `json:"status"`
	NextPageToken string `json:"next_page_token"`
	Results       []struct {
		PlaceID string `json:"place_id"`
		Name    string `json:"name"`
		Website string `json:"website"`
	} `json:"results"`
}

// detailsResponse is the wire shape of a place-details lookup
type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID string `json:"place_id"`
		Name    string `json:"name"`
		Website string `json:"website"`
		Phone   string `json:"formatted_phone_number"`
	} `json:"result"`
}

// TextSearch fetches one page of text-search results. Pass the next-page
// token from the previous page to continue a search, or "" for the first
// page. Entries missing a place ID or name are dropped at this boundary.
func (c *Client) TextSearch(ctx context.Context, query, pageToken string) (*SearchPage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	var payload searchResponse
	if err := c.getJSON(ctx, "/textsearch/json", params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != StatusOK && payload.Status != StatusZeroResults {
		return nil, &StatusError{Endpoint: "textsearch", Status: payload.Status}
	}

	page := &SearchPage{NextPageToken: payload.NextPageToken}
	for _, entry := range payload.Results {
		if entry.PlaceID == "" || entry.Name == "" {
			logrus.Warnf("Dropping malformed search result for %q (place_id=%q, name=%q)", query, entry.PlaceID, entry.Name)
			continue
		}
		page.Results = append(page.Results, RawResult{
			PlaceID: entry.PlaceID,
			Name:    entry.Name,
			Website: entry.Website,
		})
	}

	return page, nil
}

// PlaceDetails fetches the website and phone number for a place ID
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*Detail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	params.Set("fields", detailFields)

	var payload detailsResponse
	if err := c.getJSON(ctx, "/details/json", params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != StatusOK {
		return nil, &StatusError{Endpoint: "details", Status: payload.Status}
	}

	return &Detail{
		PlaceID: payload.Result.PlaceID,
		Name:    payload.Result.Name,
		Website: payload.Result.Website,
		Phone:   payload.Result.Phone,
	}, nil
}

// getJSON performs a GET against the service and decodes the JSON body
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s responded with status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	return nil
}
