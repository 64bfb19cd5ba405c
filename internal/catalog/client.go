package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound means the upstream has no record for the SKU. It is a normal
// outcome, not a failure: handlers surface it as "no data found".
var ErrNotFound = errors.New("no sneaker found for SKU")

// Product carries the catalog fields available for a SKU. Fields absent from
// the upstream response stay zero-valued and are omitted from JSON; nothing
// is ever fabricated.
type Product struct {
	SKU                  string   `json:"sku,omitempty"`
	Brand                string   `json:"brand,omitempty"`
	Model                string   `json:"model,omitempty"`
	Colorway             string   `json:"colorway,omitempty"`
	Category             string   `json:"category,omitempty"`
	RetailPrice          *float64 `json:"retail_price,omitempty"`
	ReleaseDate          string   `json:"release_date,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	Description          string   `json:"description,omitempty"`
	EstimatedMarketValue *float64 `json:"estimated_market_value,omitempty"`
}

// Client queries The Sneaker Database for product data by style code.
// It only reads from the upstream; it never writes to the store.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// sneakerRecord mirrors the upstream JSON product schema.
type sneakerRecord struct {
	SKU                  string      `json:"sku"`
	Brand                string      `json:"brand"`
	Name                 string      `json:"name"`
	Colorway             string      `json:"colorway"`
	Gender               string      `json:"gender"`
	RetailPrice          json.Number `json:"retailPrice"`
	EstimatedMarketValue json.Number `json:"estimatedMarketValue"`
	ReleaseDate          string      `json:"releaseDate"`
	Story                string      `json:"story"`
	Image                struct {
		Original  string `json:"original"`
		Small     string `json:"small"`
		Thumbnail string `json:"thumbnail"`
	} `json:"image"`
}

type searchResponse struct {
	Results []sneakerRecord `json:"results"`
}

// LookupBySKU finds the best catalog match for a style code. It tries an
// exact SKU search first, then a name-query fallback, matching normalized
// SKUs among the results. Returns ErrNotFound when nothing matches.
func (c *Client) LookupBySKU(sku string) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, errors.New("sku is required")
	}
	if c.apiKey == "" {
		return nil, errors.New("no catalog API key configured")
	}

	results, err := c.search(url.Values{"sku": {sku}, "limit": {"10"}})
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		return mapProduct(results[0]), nil
	}

	// No exact hit; search by name and look for the SKU among results.
	results, err = c.search(url.Values{"name": {sku}, "limit": {"10"}})
	if err != nil {
		return nil, err
	}
	for _, record := range results {
		if skuMatches(sku, record.SKU) {
			return mapProduct(record), nil
		}
	}
	if len(results) > 0 {
		return mapProduct(results[0]), nil
	}

	return nil, ErrNotFound
}

func (c *Client) search(params url.Values) ([]sneakerRecord, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/sneakers?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return body.Results, nil
}

func skuMatches(search, candidate string) bool {
	normalize := func(s string) string {
		s = strings.ToUpper(s)
		s = strings.ReplaceAll(s, "-", "")
		return strings.ReplaceAll(s, " ", "")
	}
	a, b := normalize(search), normalize(candidate)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func mapProduct(record sneakerRecord) *Product {
	product := &Product{
		SKU:      record.SKU,
		Brand:    record.Brand,
		Model:    record.Name,
		Colorway: record.Colorway,
		Category: parseCategory(record.Gender),
		ImageURL: bestImage(record),
	}
	if record.Story != "" {
		// Upstream descriptions embed HTML entities; store plain text.
		product.Description = html.UnescapeString(record.Story)
	}
	if price, ok := parsePrice(record.RetailPrice); ok {
		product.RetailPrice = &price
	}
	if value, ok := parsePrice(record.EstimatedMarketValue); ok {
		product.EstimatedMarketValue = &value
	}
	product.ReleaseDate = parseDate(record.ReleaseDate)
	return product
}

func bestImage(record sneakerRecord) string {
	for _, candidate := range []string{record.Image.Original, record.Image.Small, record.Image.Thumbnail} {
		if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
			return candidate
		}
	}
	return ""
}

func parsePrice(raw json.Number) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := raw.Float64()
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// parseDate reduces upstream timestamps to a bare YYYY-MM-DD.
func parseDate(raw string) string {
	if raw == "" {
		return ""
	}
	if idx := strings.IndexAny(raw, "T "); idx > 0 {
		raw = raw[:idx]
	}
	return raw
}

func parseCategory(gender string) string {
	switch g := strings.ToLower(gender); {
	case strings.Contains(g, "women") || strings.Contains(g, "female"):
		return "Women's"
	case strings.Contains(g, "child") || strings.Contains(g, "kid") || strings.Contains(g, "youth"):
		return "Children's"
	default:
		return "Men's"
	}
}
