package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"copydesk/internal/config"
	"copydesk/internal/services"
	"copydesk/internal/store"
	"copydesk/internal/workflow"
)

const defaultRequestTimeout = 30 * time.Second

// Client publishes content items to WordPress-style sites over the REST API.
// It implements workflow.Publisher.
type Client struct {
	cfg        config.CMS
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a CMS client for the configured sites.
func NewClient(cfg config.CMS, opts ...Option) *Client {
	timeout := defaultRequestTimeout
	if cfg.RequestTimeout > 0 {
		timeout = time.Duration(cfg.RequestTimeout) * time.Second
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Category is a site taxonomy term.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type postPayload struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Excerpt    string  `json:"excerpt,omitempty"`
	Status     string  `json:"status"`
	Categories []int64 `json:"categories,omitempty"`
	Date       string  `json:"date,omitempty"`
}

type postResponse struct {
	ID   int64  `json:"id"`
	Link string `json:"link"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Authenticate verifies the stored credentials for a site by fetching the
// authenticated user.
func (c *Client) Authenticate(ctx context.Context, siteID string) error {
	site, err := c.site(siteID)
	if err != nil {
		return err
	}
	var me struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, site, http.MethodGet, "/wp-json/wp/v2/users/me?context=edit", nil, &me); err != nil {
		return services.Wrap(services.ErrPublish, "cms", "authenticate", site.ID, err)
	}
	return nil
}

// Categories lists the categories available on a site, for publish targeting.
func (c *Client) Categories(ctx context.Context, siteID string) ([]Category, error) {
	site, err := c.site(siteID)
	if err != nil {
		return nil, err
	}
	var categories []Category
	if err := c.do(ctx, site, http.MethodGet, "/wp-json/wp/v2/categories?per_page=100", nil, &categories); err != nil {
		return nil, services.Wrap(services.ErrPublish, "cms", "list categories", site.ID, err)
	}
	return categories, nil
}

// Publish creates the item as a published post on the site, or updates the
// existing post when opts.Update is set and the item already carries an
// external post id. Failures are tagged with services.ErrPublish.
func (c *Client) Publish(ctx context.Context, siteID string, item *store.Item, opts workflow.PublishOptions) (workflow.PublishResult, error) {
	var empty workflow.PublishResult
	site, err := c.site(siteID)
	if err != nil {
		return empty, err
	}

	payload := postPayload{
		Title:      item.Title,
		Content:    postContent(item),
		Excerpt:    postExcerpt(item),
		Status:     "publish",
		Categories: opts.CategoryIDs,
	}
	if item.ScheduledFor != nil {
		payload.Status = "future"
		payload.Date = item.ScheduledFor.UTC().Format(time.RFC3339)
	}

	path := "/wp-json/wp/v2/posts"
	method := http.MethodPost
	if opts.Update && item.ExternalPostID != "" {
		path = path + "/" + item.ExternalPostID
	}

	var created postResponse
	if err := c.do(ctx, site, method, path, payload, &created); err != nil {
		return empty, services.Wrap(services.ErrPublish, "cms", "publish", item.Title, err)
	}
	if created.ID == 0 {
		return empty, services.Wrap(services.ErrPublish, "cms", "publish", "site returned no post id", nil)
	}
	return workflow.PublishResult{
		PostID: strconv.FormatInt(created.ID, 10),
		URL:    created.Link,
	}, nil
}

func (c *Client) site(siteID string) (config.Site, error) {
	site, ok := c.cfg.SiteByID(siteID)
	if !ok {
		return config.Site{}, services.Wrap(services.ErrPublish, "cms", "resolve site",
			fmt.Sprintf("no site configured for %q", siteID), nil)
	}
	return site, nil
}

func (c *Client) do(ctx context.Context, site config.Site, method, path string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := strings.TrimRight(site.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.SetBasicAuth(site.Username, site.AppPassword)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("http %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func postContent(item *store.Item) string {
	if item.Kind == store.KindProduct {
		return item.LongDescription
	}
	return item.Body
}

func postExcerpt(item *store.Item) string {
	if item.Kind == store.KindProduct && item.ShortDescription != "" {
		return item.ShortDescription
	}
	return item.MetaDescription
}
