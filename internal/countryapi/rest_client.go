package countryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/TravelTales/blog-service/internal/config"
	"github.com/TravelTales/blog-service/internal/model"
)

const (
	maxAttempts  = 3
	retryBackoff = 200 * time.Millisecond

	// Some countries list no capital; the snapshot stores a sentinel then.
	noCapital = "N/A"
)

// countryPayload mirrors the relevant part of one element of the external
// API's per-country array.
type countryPayload struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	Flags     struct {
		PNG string `json:"png"`
	} `json:"flags"`
}

type restClient struct {
	baseURL    string
	httpClient *http.Client
}

func newRestClient(cfg config.CountryAPIConfig) Client {
	return &restClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *restClient) Lookup(ctx context.Context, name string) (*model.Country, error) {
	body, err := c.get(ctx, c.baseURL+"/name/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}

	var payload []countryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: unexpected response shape: %s", ErrLookupFailed, err.Error())
	}
	if len(payload) == 0 {
		return nil, ErrCountryNotFound
	}

	return normalize(payload[0])
}

func (c *restClient) AllNames(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, c.baseURL+"/all?fields=name")
	if err != nil {
		return nil, err
	}

	var payload []countryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: unexpected response shape: %s", ErrLookupFailed, err.Error())
	}

	names := make([]string, 0, len(payload))
	for _, country := range payload {
		names = append(names, country.Name.Common)
	}

	return names, nil
}

// get retries transient transport errors a bounded number of times. HTTP
// status errors are not retried: a 404 means the country does not exist
// and anything else is a stable upstream failure.
func (c *restClient) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s", ErrLookupFailed, ctx.Err().Error())
			case <-time.After(retryBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLookupFailed, err.Error())
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrCountryNotFound
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: upstream returned status %d", ErrLookupFailed, resp.StatusCode)
		}
		if readErr != nil {
			lastErr = readErr
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrLookupFailed, lastErr.Error())
}

func normalize(payload countryPayload) (*model.Country, error) {
	if payload.Name.Common == "" || payload.Flags.PNG == "" {
		return nil, fmt.Errorf("%w: unexpected response shape", ErrLookupFailed)
	}

	capital := noCapital
	if len(payload.Capital) > 0 {
		capital = payload.Capital[0]
	}

	// Map iteration order is random; pick the lowest currency code so a
	// multi-currency country always snapshots the same one.
	var currency string
	if len(payload.Currencies) > 0 {
		codes := make([]string, 0, len(payload.Currencies))
		for code := range payload.Currencies {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		currency = payload.Currencies[codes[0]].Name
	}

	languages := make([]string, 0, len(payload.Languages))
	for _, language := range payload.Languages {
		languages = append(languages, language)
	}

	return &model.Country{
		Name:      payload.Name.Common,
		Capital:   capital,
		Currency:  currency,
		Flag:      payload.Flags.PNG,
		Languages: languages,
	}, nil
}
