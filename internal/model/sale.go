package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records one completed transaction for a sneaker. Profit is derived
// (sale price - purchase price - fees - shipping), never stored.
type Sale struct {
	BaseModel
	SneakerID uuid.UUID `gorm:"type:uuid;not null;index" json:"sneaker_id" validate:"uuid_required"`
	Sneaker   Sneaker   `json:"sneaker" validate:"-"`

	SalePrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"sale_price" validate:"gte=0"`
	Fees         decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"fees" validate:"gte=0"`
	ShippingCost decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"shipping_cost" validate:"gte=0"`
	SaleDate     time.Time       `gorm:"type:date;not null" json:"sale_date" validate:"required"`

	Platform       string `gorm:"type:varchar(100)" json:"platform"`
	BuyerInfo      string `gorm:"type:varchar(200)" json:"buyer_info"`
	TrackingNumber string `gorm:"type:varchar(100)" json:"tracking_number"`
}
