package handler

import (
	"soletrack/internal/pricing"

	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct {
	client *pricing.Client
}

func NewPricingHandler(client *pricing.Client) *PricingHandler {
	return &PricingHandler{client: client}
}

// LookupBySKU prices a product by its style code.
// GET /api/v1/pricing/lookup?sku=&size=
func (h *PricingHandler) LookupBySKU(c *fiber.Ctx) error {
	sku := c.Query("sku")
	if sku == "" {
		return c.Status(400).JSON(fiber.Map{"error": "sku query parameter is required"})
	}

	quote := h.client.GetMarketPrice(pricing.Descriptor{
		SKU:  sku,
		Size: c.Query("size"),
	})
	return c.JSON(quote)
}

// Search prices a product described by brand and model.
// GET /api/v1/pricing/search?brand=&model=&colorway=&size=
func (h *PricingHandler) Search(c *fiber.Ctx) error {
	brand := c.Query("brand")
	model := c.Query("model")
	if brand == "" || model == "" {
		return c.Status(400).JSON(fiber.Map{"error": "brand and model query parameters are required"})
	}

	quote := h.client.GetMarketPrice(pricing.Descriptor{
		Brand:    brand,
		Model:    model,
		Colorway: c.Query("colorway"),
		Size:     c.Query("size"),
	})
	return c.JSON(quote)
}
