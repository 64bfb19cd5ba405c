package handler

import (
	"errors"

	"soletrack/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	client *catalog.Client
}

func NewCatalogHandler(client *catalog.Client) *CatalogHandler {
	return &CatalogHandler{client: client}
}

type catalogLookupRequest struct {
	SKU string `json:"sku"`
}

// Lookup resolves a style code against the sneaker catalog so the client
// can prefill the add-sneaker form.
// POST /api/v1/catalog/lookup
func (h *CatalogHandler) Lookup(c *fiber.Ctx) error {
	var req catalogLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.SKU == "" {
		return c.Status(400).JSON(fiber.Map{"error": "sku is required"})
	}

	product, err := h.client.LookupBySKU(req.SKU)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "No catalog entry for this SKU"})
		}
		return c.Status(502).JSON(fiber.Map{"error": "Catalog lookup failed"})
	}

	return c.JSON(product)
}
