package countryapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TravelTales/blog-service/internal/config"
)

const japanPayload = `[{
	"name": {"common": "Japan"},
	"capital": ["Tokyo"],
	"currencies": {"JPY": {"name": "Japanese yen", "symbol": "¥"}},
	"languages": {"jpn": "Japanese"},
	"flags": {"png": "https://flagcdn.com/w320/jp.png"}
}]`

func testClient(baseURL string) Client {
	return newRestClient(config.CountryAPIConfig{
		BaseURL: baseURL,
		Timeout: time.Second,
	})
}

func TestRestClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/name/Japan" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(japanPayload))
	}))
	defer srv.Close()

	country, err := testClient(srv.URL).Lookup(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}

	if country.Name != "Japan" {
		t.Errorf("expected name Japan, got %q", country.Name)
	}
	if country.Capital != "Tokyo" {
		t.Errorf("expected capital Tokyo, got %q", country.Capital)
	}
	if country.Currency != "Japanese yen" {
		t.Errorf("expected currency 'Japanese yen', got %q", country.Currency)
	}
	if country.Flag != "https://flagcdn.com/w320/jp.png" {
		t.Errorf("unexpected flag URL %q", country.Flag)
	}
	if len(country.Languages) != 1 || country.Languages[0] != "Japanese" {
		t.Errorf("unexpected languages %v", country.Languages)
	}
}

func TestRestClientLookupNoCapital(t *testing.T) {
	payload := `[{
		"name": {"common": "Antarctica"},
		"flags": {"png": "https://flagcdn.com/w320/aq.png"}
	}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	country, err := testClient(srv.URL).Lookup(context.Background(), "Antarctica")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if country.Capital != "N/A" {
		t.Errorf("expected sentinel capital, got %q", country.Capital)
	}
}

func TestRestClientLookupMultiCurrency(t *testing.T) {
	payload := `[{
		"name": {"common": "Panama"},
		"capital": ["Panama City"],
		"currencies": {
			"USD": {"name": "United States dollar", "symbol": "$"},
			"PAB": {"name": "Panamanian balboa", "symbol": "B/."}
		},
		"flags": {"png": "https://flagcdn.com/w320/pa.png"}
	}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	for i := 0; i < 5; i++ {
		country, err := client.Lookup(context.Background(), "Panama")
		if err != nil {
			t.Fatalf("lookup error: %v", err)
		}
		if country.Currency != "Panamanian balboa" {
			t.Fatalf("expected the lowest currency code's name every time, got %q", country.Currency)
		}
	}
}

func TestRestClientLookupErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{"status":404}`, ErrCountryNotFound},
		{"server error", http.StatusInternalServerError, ``, ErrLookupFailed},
		{"empty array", http.StatusOK, `[]`, ErrCountryNotFound},
		{"bad shape", http.StatusOK, `{"not":"an array"}`, ErrLookupFailed},
		{"missing fields", http.StatusOK, `[{}]`, ErrLookupFailed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				w.Write([]byte(c.body))
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).Lookup(context.Background(), "Nowhere")
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestRestClientRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Drop the first connection to simulate a transient network error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatalf("server does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Fatalf("hijack error: %v", err)
			}
			conn.Close()
			return
		}
		w.Write([]byte(japanPayload))
	}))
	defer srv.Close()

	country, err := testClient(srv.URL).Lookup(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("lookup error after retry: %v", err)
	}
	if country.Name != "Japan" {
		t.Errorf("expected name Japan, got %q", country.Name)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 upstream calls, got %d", got)
	}
}

func TestRestClientAllNames(t *testing.T) {
	payload := `[{"name":{"common":"Japan"}},{"name":{"common":"France"}}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	names, err := testClient(srv.URL).AllNames(context.Background())
	if err != nil {
		t.Fatalf("all names error: %v", err)
	}
	if len(names) != 2 || names[0] != "Japan" || names[1] != "France" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestProxyClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/country/Japan" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "proxy-token" {
			t.Fatalf("missing proxy auth token")
		}
		w.Write([]byte(`{"name":"Japan","capital":"Tokyo","currency":"Japanese yen","flag":"https://flagcdn.com/w320/jp.png","languages":["Japanese"]}`))
	}))
	defer srv.Close()

	client := New(config.CountryAPIConfig{
		BaseURL:   srv.URL,
		ProxyURL:  srv.URL,
		AuthToken: "proxy-token",
		Timeout:   time.Second,
	})

	country, err := client.Lookup(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("lookup error: %v", err)
	}
	if country.Capital != "Tokyo" {
		t.Errorf("expected capital Tokyo, got %q", country.Capital)
	}
}
