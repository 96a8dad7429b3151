package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "es-ES"
	defaultTimeout  = 30 * time.Second
	userAgent       = "Marquee/1.0"
)

// Options configures a Client. Everything is injected at construction;
// the client never reads the environment.
type Options struct {
	APIKey     string
	BaseURL    string
	Language   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client implements domain.CatalogClient against the TMDB v3 API
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client.
// A missing API key is not an error here; each request reports it instead.
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	language := opts.Language
	if language == "" {
		language = DefaultLanguage
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(opts.APIKey),
		language:   language,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchByCategory returns one page of a category list, truncated to domain.PageSize
func (c *Client) FetchByCategory(ctx context.Context, category domain.Category, page int) (domain.PageResponse, error) {
	if !category.Valid() {
		return domain.PageResponse{}, fmt.Errorf("unknown category %q", category)
	}
	if page < 1 {
		return domain.PageResponse{}, fmt.Errorf("invalid page %d", page)
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, "/movie/"+string(category), query)
	if err != nil {
		return domain.PageResponse{}, err
	}
	return c.parsePage(body)
}

// SearchByQuery returns one page of title matches, truncated to domain.PageSize.
// A blank query is a no-op: empty page, no request.
func (c *Client) SearchByQuery(ctx context.Context, query string, page int) (domain.PageResponse, error) {
	if strings.TrimSpace(query) == "" {
		return domain.PageResponse{}, nil
	}
	if page < 1 {
		return domain.PageResponse{}, fmt.Errorf("invalid page %d", page)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, "/search/movie", params)
	if err != nil {
		return domain.PageResponse{}, err
	}
	return c.parsePage(body)
}

// doRequest performs a GET with the api_key and language parameters applied
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("language", c.language)

	// Logged before the key is attached
	c.logger.Debug("tmdb request", "path", path, "query", query.Encode())

	query.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "path", path, "error", redact(err.Error(), c.apiKey))
		return nil, &domain.NetworkError{Err: stripURL(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode, "bodyLen", len(body))
		return nil, &domain.HTTPError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	return body, nil
}

// parsePage decodes a paginated movie list and maps it to the domain
func (c *Client) parsePage(body []byte) (domain.PageResponse, error) {
	var page PageDTO
	if err := json.Unmarshal(body, &page); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.PageResponse{}, &domain.ParseError{Err: err}
	}
	if page.Results == nil {
		c.logger.Error("JSON parse error", "error", "missing results", "bodyLen", len(body))
		return domain.PageResponse{}, &domain.ParseError{Err: fmt.Errorf("response has no results field")}
	}
	return MapPage(page, domain.PageSize), nil
}

// stripURL drops the request URL (which carries the API key) from a transport error
func stripURL(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}

func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	return strings.ReplaceAll(s, secret, "REDACTED")
}
