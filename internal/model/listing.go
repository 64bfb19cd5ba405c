package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListingPlatform string

const (
	PlatformStockX    ListingPlatform = "StockX"
	PlatformGOAT      ListingPlatform = "GOAT"
	PlatformEbay      ListingPlatform = "eBay"
	PlatformFacebook  ListingPlatform = "Facebook"
	PlatformInstagram ListingPlatform = "Instagram"
	PlatformLocal     ListingPlatform = "Local"
	PlatformOther     ListingPlatform = "Other"
)

type ListingStatus string

const (
	ListingActive  ListingStatus = "Active"
	ListingPaused  ListingStatus = "Paused"
	ListingSold    ListingStatus = "Sold"
	ListingExpired ListingStatus = "Expired"
)

// Terminal reports whether the status permits no further transitions.
func (s ListingStatus) Terminal() bool {
	return s == ListingSold || s == ListingExpired
}

// Listing is a per-platform offer-to-sell record for a sneaker. A sneaker
// may carry one listing per platform; transitions are user-driven.
type Listing struct {
	BaseModel
	SneakerID uuid.UUID `gorm:"type:uuid;not null;index" json:"sneaker_id" validate:"uuid_required"`
	Sneaker   Sneaker   `json:"sneaker" validate:"-"`

	Platform     ListingPlatform `gorm:"type:varchar(50);not null" json:"platform" validate:"required,oneof=StockX GOAT eBay Facebook Instagram Local Other"`
	ListingPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"listing_price" validate:"gte=0"`
	Status       ListingStatus   `gorm:"type:varchar(20);default:'Active'" json:"status" validate:"omitempty,oneof=Active Paused Sold Expired"`
	ListingURL   string          `gorm:"type:varchar(500)" json:"listing_url"`

	DateListed  time.Time  `gorm:"type:date;not null" json:"date_listed" validate:"required"`
	DateUpdated *time.Time `gorm:"type:date" json:"date_updated,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes"`
}
