package handler

import (
	"errors"

	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SneakerHandler struct {
	service service.InventoryService
}

func NewSneakerHandler(s service.InventoryService) *SneakerHandler {
	return &SneakerHandler{service: s}
}

// Helpers to pull user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // shouldn't happen in protected routes
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// GetSneakers lists inventory, optionally filtered.
// GET /api/v1/sneakers?search=&brand=&condition=
func (h *SneakerHandler) GetSneakers(c *fiber.Ctx) error {
	filter := repository.SneakerFilter{
		Search:    c.Query("search"),
		Brand:     c.Query("brand"),
		Condition: c.Query("condition"),
	}

	sneakers, err := h.service.GetSneakers(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sneakers)
}

// GetSneaker returns a single pair with its sales and listings.
// GET /api/v1/sneakers/:id
func (h *SneakerHandler) GetSneaker(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	sneaker, err := h.service.GetSneaker(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Sneaker not found"})
	}
	return c.JSON(sneaker)
}

// CreateSneaker adds a pair to inventory.
// POST /api/v1/sneakers
func (h *SneakerHandler) CreateSneaker(c *fiber.Ctx) error {
	var sneaker model.Sneaker
	if err := c.BodyParser(&sneaker); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateSneaker(&sneaker, getUserID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sneaker added", "data": sneaker})
}

// UpdateSneaker edits a pair.
// PUT /api/v1/sneakers/:id
func (h *SneakerHandler) UpdateSneaker(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	var sneaker model.Sneaker
	if err := c.BodyParser(&sneaker); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateSneaker(id, &sneaker, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSneakerNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Sneaker updated", "data": updated})
}

// DuplicateSneaker clones a pair into a new inventory row.
// POST /api/v1/sneakers/:id/duplicate
func (h *SneakerHandler) DuplicateSneaker(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	clone, err := h.service.DuplicateSneaker(id, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrSneakerNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sneaker duplicated", "data": clone})
}

// DeleteSneaker removes a pair and its sales and listings.
// DELETE /api/v1/sneakers/:id
func (h *SneakerHandler) DeleteSneaker(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	if err := h.service.DeleteSneaker(id); err != nil {
		if errors.Is(err, service.ErrSneakerNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete sneaker"})
	}

	return c.JSON(fiber.Map{"message": "Sneaker and associated records deleted"})
}

// GetBrands lists distinct brands for filter dropdowns.
// GET /api/v1/sneakers/brands
func (h *SneakerHandler) GetBrands(c *fiber.Ctx) error {
	brands, err := h.service.Brands()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(brands)
}
