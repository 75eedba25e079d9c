// Package research provides the web research adapter for devacia-os.
//
// It is a thin pass-through over a search endpoint: one request per lookup,
// no retries, failures surface directly to the caller.
package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
)

// Config holds research adapter settings, loaded from DEVACIA_RESEARCH_*
// environment variables.
type Config struct {
	Endpoint   string        `envconfig:"ENDPOINT" default:"https://html.duckduckgo.com/html/"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"15s"`
	MaxResults int           `envconfig:"MAX_RESULTS" default:"5"`
	UserAgent  string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (compatible; devacia-os/1.0)"`
}

// Client performs web lookups against an HTML search endpoint.
type Client struct {
	endpoint   string
	maxResults int
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a research client from cfg.
func NewClient(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0 // single-shot: a failed lookup surfaces immediately
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.Timeout

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		maxResults: maxResults,
		userAgent:  cfg.UserAgent,
		httpClient: rc.StandardClient(),
	}
}

// Lookup searches for query and returns a plain-text digest of the top
// results, one "title: snippet" line per result.
func (c *Client) Lookup(ctx context.Context, query string) (string, error) {
	reqURL := c.endpoint + "/?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build research request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("research request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("research endpoint returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse research response: %w", err)
	}

	var lines []string
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Find(".result__title").Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").Text())
		if title == "" && snippet == "" {
			return true
		}
		lines = append(lines, "- "+title+": "+snippet)
		return len(lines) < c.maxResults
	})

	if len(lines) == 0 {
		// A zero-result search is not an adapter failure.
		return "No public information found for " + query + ".", nil
	}
	return strings.Join(lines, "\n"), nil
}
