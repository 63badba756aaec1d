package swapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/swdex/internal/people"
)

const lukeBody = `{
  "count": 1,
  "next": null,
  "previous": null,
  "results": [
    {
      "name": "Luke Skywalker",
      "height": "172",
      "mass": "77",
      "hair_color": "blond",
      "birth_year": "19BBY",
      "films": ["https://swapi.dev/api/films/1/"]
    }
  ]
}`

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) *Client {
	t.Helper()
	client, err := New(&Config{BaseURL: baseURL, Timeout: timeout}, nil)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestClient_New(t *testing.T) {
	client, err := New(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create client with defaults: %v", err)
	}
	if client.Endpoint() != "https://swapi.dev/api/people/" {
		t.Errorf("Expected default endpoint, got %s", client.Endpoint())
	}

	if _, err := New(&Config{BaseURL: "not a url", Timeout: time.Second}, nil); err == nil {
		t.Error("Expected error for relative base URL")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"missing base url", Config{Timeout: time.Second}, true},
		{"relative base url", Config{BaseURL: "/api/", Timeout: time.Second}, true},
		{"zero timeout", Config{BaseURL: DefaultBaseURL}, true},
		{"plain http", Config{BaseURL: "http://localhost:8000/api/", Timeout: time.Second}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_FetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/people/" {
			t.Errorf("Expected path '/api/people/', got '%s'", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET method, got '%s'", r.Method)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query parameters, got '%s'", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("Expected no authorization header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(lukeBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/", 5*time.Second)

	records, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	want := people.Record{Name: "Luke Skywalker", Height: "172", Mass: "77", BirthYear: "19BBY"}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0] != want {
		t.Errorf("Expected %+v, got %+v", want, records[0])
	}
}

func TestClient_FetchAllKeepsOrderAndValues(t *testing.T) {
	body := `{"results": [
		{"name": "C-3PO", "height": "167", "mass": "75", "birth_year": "112BBY"},
		{"name": "Jabba Desilijic Tiure", "height": "175", "mass": "1,358", "birth_year": "600BBY"},
		{"name": "Arvel Crynyd", "height": "unknown", "mass": "unknown", "birth_year": "unknown"}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 5*time.Second)

	records, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	names := people.Names(records)
	wantNames := []string{"C-3PO", "Jabba Desilijic Tiure", "Arvel Crynyd"}
	if strings.Join(names, "|") != strings.Join(wantNames, "|") {
		t.Errorf("Expected order %v, got %v", wantNames, names)
	}
	if records[1].Mass != "1,358" {
		t.Errorf("Expected mass passed through untouched, got %q", records[1].Mass)
	}
	if records[2].Height != "unknown" {
		t.Errorf("Expected height passed through untouched, got %q", records[2].Height)
	}
}

func TestClient_FetchAllEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	records, err := newTestClient(t, server.URL, 5*time.Second).FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", records)
	}
}

func TestClient_FetchAllErrors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantText   string
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantText:   "status 500",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantStatus: http.StatusNotFound,
			wantText:   "status 404",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results": [`))
			},
			wantText: "failed to decode response",
		},
		{
			name: "wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results": "nope"}`))
			},
			wantText: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			records, err := newTestClient(t, server.URL, 5*time.Second).FetchAll(context.Background())
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if records != nil {
				t.Errorf("Expected no records on error, got %v", records)
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("Expected *FetchError, got %T", err)
			}
			if fetchErr.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, fetchErr.StatusCode)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Expected error to contain %q, got %q", tt.wantText, err.Error())
			}
		})
	}
}

func TestClient_FetchAllTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := newTestClient(t, server.URL, 50*time.Millisecond)

	_, err := client.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
	if fetchErr.Message != "request failed" {
		t.Errorf("Expected transport failure message, got %q", fetchErr.Message)
	}
	if !strings.Contains(err.Error(), "Client.Timeout") {
		t.Errorf("Expected timeout in error text, got %q", err.Error())
	}
}

func TestClient_FetchAllUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url, time.Second).FetchAll(context.Background())

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Cause == nil {
		t.Error("Expected wrapped transport cause")
	}
	if fetchErr.Error() == "" {
		t.Error("Expected non-empty error text")
	}
}

func TestClient_FetchAllCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(lukeBody))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, server.URL, time.Second).FetchAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected wrapped context.Canceled, got %v", err)
	}
}

func TestFetchError_Error(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{"message only", &FetchError{Message: "unexpected response"}, "unexpected response"},
		{"with status", newStatusError(503), "unexpected response: status 503"},
		{"with cause", newFetchError("request failed", cause), "request failed: dial tcp: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !errors.Is(newFetchError("request failed", cause), cause) {
		t.Error("Expected errors.Is to reach the cause")
	}
}
