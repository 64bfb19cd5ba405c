package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Quote sources. Callers switch on Source so a demo quote can never be
// mistaken for live market data.
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

// Descriptor identifies the sneaker to price. Brand and model are required;
// the rest narrow the match.
type Descriptor struct {
	SKU      string `json:"sku,omitempty"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Colorway string `json:"colorway,omitempty"`
	Size     string `json:"size,omitempty"`
}

// Quote is a market price snapshot. Confidence is a [0,1] reliability score;
// demo quotes carry a fixed confidence strictly below any live result.
type Quote struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Colorway string `json:"colorway,omitempty"`
	SKU      string `json:"sku,omitempty"`
	Size     string `json:"size,omitempty"`

	RetailPrice float64 `json:"retail_price,omitempty"`
	LowestAsk   float64 `json:"lowest_ask,omitempty"`
	HighestBid  float64 `json:"highest_bid,omitempty"`
	LastSale    float64 `json:"last_sale,omitempty"`
	AnnualHigh  float64 `json:"annual_high,omitempty"`
	AnnualLow   float64 `json:"annual_low,omitempty"`

	Confidence  float64            `json:"confidence"`
	Source      string             `json:"source"`
	PriceBySize map[string]float64 `json:"price_by_size,omitempty"`
}

// Client fetches market pricing from the StockX market-data API, degrading
// to deterministic demo quotes when no credential is configured or the
// upstream is unreachable. It holds no cache: every call re-queries or
// re-derives.
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
			Timeout: 15 * time.Second,
		},
	}
}

// GetMarketPrice returns a quote for the descriptor. It never fails: any
// missing credential, transport error, rate limit or unparseable response
// falls through to the demo derivation.
func (c *Client) GetMarketPrice(d Descriptor) Quote {
	if c.apiKey == "" {
		return demoQuote(d)
	}

	quote, err := c.fetchLive(d)
	if err != nil {
		log.Printf("pricing: live lookup failed, serving demo quote: %v", err)
		return demoQuote(d)
	}
	return *quote
}

// productResponse mirrors the upstream product schema.
type productResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	StyleID     string      `json:"styleId"`
	Colorway    string      `json:"colorway"`
	RetailPrice json.Number `json:"retailPrice"`
	Market      marketData  `json:"market"`
}

type marketData struct {
	LowestAsk        json.Number `json:"lowestAsk"`
	HighestBid       json.Number `json:"highestBid"`
	LastSale         json.Number `json:"lastSale"`
	AnnualHigh       json.Number `json:"annualHigh"`
	AnnualLow        json.Number `json:"annualLow"`
	NumberOfAsks     int         `json:"numberOfAsks"`
	NumberOfBids     int         `json:"numberOfBids"`
	SalesLast72Hours int         `json:"salesLast72Hours"`
	LowestAskBySize  []struct {
		Size      string      `json:"size"`
		LowestAsk json.Number `json:"lowestAsk"`
	} `json:"lowestAskBySize"`
}

func (c *Client) fetchLive(d Descriptor) (*Quote, error) {
	var product *productResponse
	var err error

	if d.SKU != "" {
		product, err = c.productBySKU(d.SKU, d.Size)
	} else {
		product, err = c.productBySearch(d)
	}
	if err != nil {
		return nil, err
	}

	return buildLiveQuote(d, product), nil
}

func (c *Client) productBySKU(sku, size string) (*productResponse, error) {
	params := url.Values{"sku": {sku}}
	if size != "" {
		params.Set("size", size)
	}

	var product productResponse
	if err := c.get("/product/sku?"+params.Encode(), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) productBySearch(d Descriptor) (*productResponse, error) {
	query := d.Brand + " " + d.Model
	if d.Colorway != "" {
		query += " " + d.Colorway
	}
	params := url.Values{"query": {query}, "limit": {"10"}}

	var body struct {
		Results []productResponse `json:"results"`
	}
	if err := c.get("/search?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, errors.New("no search results")
	}

	first := body.Results[0]
	if first.ID == "" {
		return &first, nil
	}

	// Search hits omit market depth; fetch the full product record.
	var product productResponse
	if err := c.get("/product/"+url.PathEscape(first.ID), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pricing API returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pricing response: %w", err)
	}
	return nil
}

func buildLiveQuote(d Descriptor, product *productResponse) *Quote {
	quote := &Quote{
		Brand:    firstNonEmpty(product.Brand, d.Brand),
		Model:    firstNonEmpty(product.Title, product.Name, d.Model),
		Colorway: firstNonEmpty(product.Colorway, d.Colorway),
		SKU:      firstNonEmpty(product.StyleID, d.SKU),
		Size:     d.Size,
		Source:   SourceLive,
	}

	quote.RetailPrice = numberValue(product.RetailPrice)
	quote.LowestAsk = numberValue(product.Market.LowestAsk)
	quote.HighestBid = numberValue(product.Market.HighestBid)
	quote.LastSale = numberValue(product.Market.LastSale)
	quote.AnnualHigh = numberValue(product.Market.AnnualHigh)
	quote.AnnualLow = numberValue(product.Market.AnnualLow)

	for _, entry := range product.Market.LowestAskBySize {
		price := numberValue(entry.LowestAsk)
		if entry.Size == "" || price <= 0 {
			continue
		}
		if quote.PriceBySize == nil {
			quote.PriceBySize = make(map[string]float64)
		}
		quote.PriceBySize[entry.Size] = price
	}

	// A size-specific ask overrides the product-wide one.
	if d.Size != "" {
		if price, ok := quote.PriceBySize[d.Size]; ok {
			quote.LowestAsk = price
		}
	}
	if quote.LowestAsk == 0 && quote.LastSale > 0 {
		quote.LowestAsk = quote.LastSale
	}

	points := product.Market.NumberOfAsks + product.Market.NumberOfBids + product.Market.SalesLast72Hours
	quote.Confidence = liveConfidence(points, quote.LowestAsk, quote.HighestBid, quote.LastSale)
	return quote
}

func numberValue(raw json.Number) float64 {
	if raw == "" {
		return 0
	}
	value, err := raw.Float64()
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
