package countryapi

import (
	"context"
	"errors"

	"github.com/TravelTales/blog-service/internal/config"
	"github.com/TravelTales/blog-service/internal/model"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrLookupFailed    = errors.New("country lookup failed")
)

// Client resolves a free-text country name into a normalized record. Any
// failure must abort the caller's post write; a post is never stored with
// partial country metadata.
type Client interface {
	Lookup(ctx context.Context, name string) (*model.Country, error)
	AllNames(ctx context.Context) ([]string, error)
}

// New selects the implementation once at startup: the internal proxy when
// a proxy URL and auth token are configured, the external API otherwise.
func New(cfg config.CountryAPIConfig) Client {
	if cfg.ProxyURL != "" && cfg.AuthToken != "" {
		return newProxyClient(cfg)
	}
	return newRestClient(cfg)
}
