package handler

import (
	"errors"

	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	service service.ListingService
}

func NewListingHandler(s service.ListingService) *ListingHandler {
	return &ListingHandler{service: s}
}

// GetListings lists all listings, optionally filtered.
// GET /api/v1/listings?status=&platform=
func (h *ListingHandler) GetListings(c *fiber.Ctx) error {
	filter := repository.ListingFilter{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
	}

	listings, err := h.service.GetListings(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(listings)
}

// GetSneakerListings lists every listing for one pair.
// GET /api/v1/sneakers/:id/listings
func (h *ListingHandler) GetSneakerListings(c *fiber.Ctx) error {
	sneakerID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	listings, err := h.service.GetListingsForSneaker(sneakerID)
	if err != nil {
		if errors.Is(err, service.ErrSneakerNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(listings)
}

// CreateListing posts a pair on a marketplace.
// POST /api/v1/sneakers/:id/listings
func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	sneakerID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sneaker ID"})
	}

	var listing model.Listing
	if err := c.BodyParser(&listing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateListing(sneakerID, &listing, getUserID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrSneakerNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrPlatformListed):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Listing created", "data": listing})
}

// UpdateListing edits a listing. Terminal statuses stay put.
// PUT /api/v1/listings/:id
func (h *ListingHandler) UpdateListing(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	var listing model.Listing
	if err := c.BodyParser(&listing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateListing(id, &listing, getUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrListingTerminal):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Listing updated", "data": updated})
}

// DeleteListing removes a listing without touching the sneaker.
// DELETE /api/v1/listings/:id
func (h *ListingHandler) DeleteListing(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid listing ID"})
	}

	if err := h.service.DeleteListing(id); err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete listing"})
	}

	return c.JSON(fiber.Map{"message": "Listing deleted"})
}
