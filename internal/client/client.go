package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/ShowSearch/internal/cache"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// cacheGroup labels the response cache metrics.
const cacheGroup = "directory_responses"

// Client defines the interface for querying the TV directory
type Client interface {
	// SearchShows returns the shows matching term in the directory's order.
	// The term is sent as-is, including when empty.
	SearchShows(ctx context.Context, term string) ([]models.ShowSummary, error)

	// GetEpisodes returns every episode of a show in the directory's order.
	GetEpisodes(ctx context.Context, showID int) ([]models.EpisodeSummary, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient    *http.Client
	baseURL       string
	showParser    parser.Parser[models.ShowSummary]
	episodeParser parser.Parser[models.EpisodeSummary]
	cache         cache.Cache // nil when caching is disabled
}

// NewClient creates a new client instance from the configuration. Invalid
// optional settings (timeout, proxy, cache) are logged and ignored.
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()
	timeout := parseDurationOr(cfg.ClientTimeout, 30*time.Second, "client_timeout")

	// Clone DefaultTransport to keep its pooling, timeouts and HTTP/2 settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	// Every attempt is measured, so retries show up in the request metrics
	transport := metrics.InstrumentRoundTripper(newCompressionTransport(baseTransport))
	transport = withRetries(transport, newRetryPolicy(cfg))

	return &client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		baseURL:       cfg.BaseURL(),
		showParser:    parser.NewShowSearchParser(cfg.FallbackImageURL()),
		episodeParser: parser.NewEpisodeParser(),
		cache:         newResponseCache(cfg),
	}
}

func newResponseCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Provider == "" {
		return nil
	}
	logger := config.GetLogger()

	c, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           parseDurationOr(cfg.Cache.TTL, 10*time.Minute, "cache.ttl"),
		Logger:        cache.NewZerologLogger(logger),
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		KeyPrefix:     responseCacheKeyPrefix(cfg.BaseURL()),
		Group:         cacheGroup,
	})
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.Cache.Provider).Msg("Failed to create response cache, continuing without cache")
		return nil
	}

	logger.Debug().Str("provider", cfg.Cache.Provider).Msg("Response cache enabled")
	return c
}

// responseCacheKeyPrefix scopes cache keys to one directory so deployments
// sharing a Redis instance never serve each other's results.
func responseCacheKeyPrefix(baseURL string) string {
	return "showsearch:" + baseURL + ":"
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Close()
}
