package countryapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/TravelTales/blog-service/internal/config"
	"github.com/TravelTales/blog-service/internal/model"
)

// proxyClient goes through the internal country service, which returns
// records already normalized. Name listing still comes from the external
// API, which the proxy does not expose.
type proxyClient struct {
	proxyURL   string
	authToken  string
	httpClient *http.Client
	rest       Client
}

func newProxyClient(cfg config.CountryAPIConfig) Client {
	return &proxyClient{
		proxyURL:  cfg.ProxyURL,
		authToken: cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rest: newRestClient(cfg),
	}
}

func (c *proxyClient) Lookup(ctx context.Context, name string) (*model.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxyURL+"/api/country/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailed, err.Error())
	}
	req.Header.Set("Authorization", c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCountryNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: proxy returned status %d", ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLookupFailed, err.Error())
	}

	var country model.Country
	if err := json.Unmarshal(body, &country); err != nil {
		return nil, fmt.Errorf("%w: unexpected response shape: %s", ErrLookupFailed, err.Error())
	}
	if country.Name == "" {
		return nil, fmt.Errorf("%w: unexpected response shape", ErrLookupFailed)
	}

	return &country, nil
}

func (c *proxyClient) AllNames(ctx context.Context) ([]string, error) {
	return c.rest.AllNames(ctx)
}
