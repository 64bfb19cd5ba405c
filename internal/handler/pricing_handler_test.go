package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"soletrack/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricingApp(apiKey string) *fiber.App {
	h := NewPricingHandler(pricing.NewClient("http://unused.invalid", apiKey))
	app := fiber.New()
	app.Get("/pricing/lookup", h.LookupBySKU)
	app.Get("/pricing/search", h.Search)
	return app
}

func TestPricingLookupRequiresSKU(t *testing.T) {
	app := pricingApp("")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/lookup", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPricingLookupReturnsDemoQuote(t *testing.T) {
	app := pricingApp("")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/lookup?sku=DD1391-100&size=10", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var quote pricing.Quote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
	assert.Equal(t, pricing.SourceDemo, quote.Source)
	assert.Equal(t, "DD1391-100", quote.SKU)
	assert.Equal(t, "10", quote.Size)
	assert.Greater(t, quote.LowestAsk, 0.0)
}

func TestPricingSearchRequiresBrandAndModel(t *testing.T) {
	app := pricingApp("")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/search?brand=Nike", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/pricing/search?model=Dunk+Low", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPricingSearch(t *testing.T) {
	app := pricingApp("")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pricing/search?brand=Nike&model=Dunk+Low&colorway=Panda", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var quote pricing.Quote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
	assert.Equal(t, "Nike", quote.Brand)
	assert.Equal(t, "Dunk Low", quote.Model)
	assert.Equal(t, pricing.DemoConfidence, quote.Confidence)
}
