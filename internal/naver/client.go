// Package naver is a minimal client for the Naver shopping search open API.
// It is the source of interest-product records and of the periodic lowest-price
// refresh.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const defaultBaseURL = "https://openapi.naver.com"

// Item is a single shopping search result. lprice arrives as a quoted number.
type Item struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Image  string `json:"image"`
	Lprice int    `json:"lprice,string"`
}

type searchResponse struct {
	Items []Item `json:"items"`
}

// Client calls the shopping search endpoint with application credentials.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// NewClient creates a new Client. The returned client is disabled when either
// credential is empty.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// NewClientWithBaseURL creates a Client against a custom endpoint. Used in tests.
func NewClientWithBaseURL(clientID, clientSecret, baseURL string) *Client {
	c := NewClient(clientID, clientSecret)
	c.baseURL = baseURL
	return c
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// tagPattern strips the <b> highlighting markup Naver wraps around matched
// title terms.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Search queries the shopping index and returns up to display items.
func (c *Client) Search(ctx context.Context, query string, display int) ([]Item, error) {
	endpoint := c.baseURL + "/v1/search/shop.json?query=" + url.QueryEscape(query) +
		"&display=" + fmt.Sprintf("%d", display)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver search: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("naver search: decoding response: %w", err)
	}

	for i := range body.Items {
		body.Items[i].Title = tagPattern.ReplaceAllString(body.Items[i].Title, "")
	}

	return body.Items, nil
}
