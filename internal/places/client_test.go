package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-key", 5*time.Second)
	client.baseURL = server.URL
	return client, server
}

func TestTextSearchBuildsRequest(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"query":     r.URL.Query().Get("query"),
			"key":       r.URL.Query().Get("key"),
			"pagetoken": r.URL.Query().Get("pagetoken"),
		}
		w.Write([]byte(`{"status":"OK","results":[]}`))
	})
	defer server.Close()

	_, err := client.TextSearch(context.Background(), "Plumber in Toronto, ON", "tok-2")

	assert.NoError(t, err)
	assert.Equal(t, "/textsearch/json", gotPath)
	assert.Equal(t, "Plumber in Toronto, ON", gotQuery["query"])
	assert.Equal(t, "test-key", gotQuery["key"])
	assert.Equal(t, "tok-2", gotQuery["pagetoken"])
}

func TestTextSearchOmitsEmptyPageToken(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("pagetoken"))
		w.Write([]byte(`{"status":"OK","results":[]}`))
	})
	defer server.Close()

	_, err := client.TextSearch(context.Background(), "Plumber in Toronto, ON", "")
	assert.NoError(t, err)
}

func TestTextSearchDecodesPage(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"next_page_token": "tok-next",
			"results": [
				{"place_id": "p1", "name": "Smile Co", "website": "https://smileco.ca"},
				{"place_id": "p2", "name": "NoSite Dental"}
			]
		}`))
	})
	defer server.Close()

	page, err := client.TextSearch(context.Background(), "Dental Clinic in Guelph, ON", "")

	assert.NoError(t, err)
	assert.Equal(t, "tok-next", page.NextPageToken)
	assert.Equal(t, []RawResult{
		{PlaceID: "p1", Name: "Smile Co", Website: "https://smileco.ca"},
		{PlaceID: "p2", Name: "NoSite Dental"},
	}, page.Results)
}

func TestTextSearchDropsMalformedEntries(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "", "name": "No ID Inc"},
				{"place_id": "p2", "name": ""},
				{"place_id": "p3", "name": "Kept Co"}
			]
		}`))
	})
	defer server.Close()

	page, err := client.TextSearch(context.Background(), "Plumber in Milton, ON", "")

	assert.NoError(t, err)
	assert.Len(t, page.Results, 1)
	assert.Equal(t, "p3", page.Results[0].PlaceID)
}

func TestTextSearchStatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "ok", status: "OK", wantErr: false},
		{name: "zero results is not an error", status: "ZERO_RESULTS", wantErr: false},
		{name: "quota exhausted", status: "OVER_QUERY_LIMIT", wantErr: true},
		{name: "denied", status: "REQUEST_DENIED", wantErr: true},
		{name: "invalid", status: "INVALID_REQUEST", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"` + tt.status + `","results":[]}`))
			})
			defer server.Close()

			_, err := client.TextSearch(context.Background(), "q", "")

			if tt.wantErr {
				var statusErr *StatusError
				assert.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.status, statusErr.Status)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlaceDetailsRequestAndDecode(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "place_id,name,website,formatted_phone_number", r.URL.Query().Get("fields"))
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Smile Co",
				"website": "https://smileco.ca",
				"formatted_phone_number": "519-555-0199"
			}
		}`))
	})
	defer server.Close()

	detail, err := client.PlaceDetails(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, &Detail{
		PlaceID: "p1",
		Name:    "Smile Co",
		Website: "https://smileco.ca",
		Phone:   "519-555-0199",
	}, detail)
}

func TestPlaceDetailsNonOKStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"NOT_FOUND"}`))
	})
	defer server.Close()

	_, err := client.PlaceDetails(context.Background(), "missing")

	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "details", statusErr.Endpoint)
}

func TestClientHTTPErrorSurfaces(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer server.Close()

	_, err := client.TextSearch(context.Background(), "q", "")
	assert.Error(t, err)
}
