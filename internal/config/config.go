package config

import (
	"net/http"
	"time"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// CountryAPIConfig selects the enrichment strategy at startup: when
// ProxyURL and AuthToken are both set the internal proxy is used,
// otherwise the external API at BaseURL.
type CountryAPIConfig struct {
	BaseURL   string
	ProxyURL  string
	AuthToken string
	Timeout   time.Duration
}
