package handler

import (
	"errors"

	"soletrack/internal/model"
	"soletrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SalesService
}

func NewSaleHandler(s service.SalesService) *SaleHandler {
	return &SaleHandler{service: s}
}

// GetSales lists sales with profit, ROI and days-to-sale per record.
// GET /api/v1/sales?platform=
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetSales(c.Query("platform"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sales)
}

// GetSale returns a single sale with its derived metrics.
// GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSale(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Sale not found"})
	}
	return c.JSON(sale)
}

// RecordSale marks a sneaker as sold.
// POST /api/v1/sales
func (h *SaleHandler) RecordSale(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordSale(&sale, getUserID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrSneakerNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadySold):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

// UpdateSale corrects an existing sale record.
// PUT /api/v1/sales/:id
func (h *SaleHandler) UpdateSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateSale(id, &sale, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Sale updated", "data": updated})
}

// DeleteSale undoes a sale, returning the pair to available inventory.
// DELETE /api/v1/sales/:id
func (h *SaleHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	if err := h.service.DeleteSale(id); err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete sale"})
	}

	return c.JSON(fiber.Map{"message": "Sale deleted"})
}

// GetPlatforms lists distinct sale platforms for filter dropdowns.
// GET /api/v1/sales/platforms
func (h *SaleHandler) GetPlatforms(c *fiber.Ctx) error {
	platforms, err := h.service.Platforms()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(platforms)
}
