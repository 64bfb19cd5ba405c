package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key")
}

func TestLookupBySKU(t *testing.T) {
	client := catalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sneakers", r.URL.Path)
		assert.Equal(t, "DD1391-100", r.URL.Query().Get("sku"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{
				"sku":                  "DD1391-100",
				"brand":                "Nike",
				"name":                 "Dunk Low Retro White Black",
				"colorway":             "White/Black",
				"gender":               "men",
				"retailPrice":          110,
				"estimatedMarketValue": 130,
				"releaseDate":          "2021-01-14T00:00:00.000Z",
				"story":                "The sneaker that doesn&#39;t quit.",
				"image": map[string]interface{}{
					"original":  "https://img.example.com/dd1391-100.png",
					"thumbnail": "https://img.example.com/dd1391-100-t.png",
				},
			}},
		})
	})

	product, err := client.LookupBySKU("DD1391-100")
	require.NoError(t, err)

	assert.Equal(t, "DD1391-100", product.SKU)
	assert.Equal(t, "Nike", product.Brand)
	assert.Equal(t, "Dunk Low Retro White Black", product.Model)
	assert.Equal(t, "White/Black", product.Colorway)
	assert.Equal(t, "Men's", product.Category)
	require.NotNil(t, product.RetailPrice)
	assert.Equal(t, 110.0, *product.RetailPrice)
	require.NotNil(t, product.EstimatedMarketValue)
	assert.Equal(t, 130.0, *product.EstimatedMarketValue)
	assert.Equal(t, "2021-01-14", product.ReleaseDate)
	assert.Equal(t, "The sneaker that doesn't quit.", product.Description)
	assert.Equal(t, "https://img.example.com/dd1391-100.png", product.ImageURL)
}

func TestLookupBySKUNameFallback(t *testing.T) {
	client := catalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sku") != "" {
			json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
			return
		}
		assert.Equal(t, "CT8012 170", r.URL.Query().Get("name"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{
				{"sku": "AA0000-001", "brand": "Nike", "name": "Wrong Shoe"},
				{"sku": "CT8012-170", "brand": "Jordan", "name": "Air Jordan 1 Low"},
			},
		})
	})

	// Dashes and spaces are ignored when matching SKUs.
	product, err := client.LookupBySKU("CT8012 170")
	require.NoError(t, err)
	assert.Equal(t, "CT8012-170", product.SKU)
	assert.Equal(t, "Jordan", product.Brand)
}

func TestLookupBySKUNotFound(t *testing.T) {
	client := catalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	})

	_, err := client.LookupBySKU("ZZ9999-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupBySKUUpstream404IsNotFound(t *testing.T) {
	client := catalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.LookupBySKU("DD1391-100")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupBySKUServerError(t *testing.T) {
	client := catalogServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.LookupBySKU("DD1391-100")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestLookupBySKURequiresKey(t *testing.T) {
	client := NewClient("http://unused.invalid", "")
	_, err := client.LookupBySKU("DD1391-100")
	assert.Error(t, err)
}

func TestLookupBySKURejectsBlank(t *testing.T) {
	client := NewClient("http://unused.invalid", "test-key")
	_, err := client.LookupBySKU("   ")
	assert.Error(t, err)
}

func TestCategoryMapping(t *testing.T) {
	assert.Equal(t, "Men's", parseCategory("men"))
	assert.Equal(t, "Men's", parseCategory(""))
	assert.Equal(t, "Men's", parseCategory("unisex"))
	assert.Equal(t, "Women's", parseCategory("women"))
	assert.Equal(t, "Children's", parseCategory("youth"))
	assert.Equal(t, "Children's", parseCategory("kids"))
}

func TestBestImageSkipsNonHTTP(t *testing.T) {
	record := sneakerRecord{}
	record.Image.Original = "not-a-url"
	record.Image.Small = "https://img.example.com/small.png"

	assert.Equal(t, "https://img.example.com/small.png", bestImage(record))
}
