package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMens      Category = "Men's"
	CategoryWomens    Category = "Women's"
	CategoryChildrens Category = "Children's"
)

// Valid reports whether the category is one of the supported values.
// Category values contain apostrophes, so checking lives here instead of
// a validator oneof tag.
func (c Category) Valid() bool {
	switch c {
	case CategoryMens, CategoryWomens, CategoryChildrens:
		return true
	}
	return false
}

// Sneaker is a single pair in inventory. Purchase price and purchase date
// are always present; listing price stays null until the pair is first listed.
type Sneaker struct {
	BaseModel
	SKU         *string             `gorm:"type:varchar(50);index" json:"sku,omitempty" validate:"omitempty,max=50"`
	Brand       string              `gorm:"type:varchar(100);not null" json:"brand" validate:"required,max=100"`
	Model       string              `gorm:"type:varchar(100);not null" json:"model" validate:"required,max=100"`
	Colorway    string              `gorm:"type:varchar(100);not null" json:"colorway" validate:"required,max=100"`
	Size        string              `gorm:"type:varchar(20);not null" json:"size" validate:"required,max=20"`
	Category    Category            `gorm:"type:varchar(20)" json:"category"`
	Condition   string              `gorm:"type:varchar(50);default:'New'" json:"condition" validate:"omitempty,oneof=New Used Deadstock"`
	Description string              `gorm:"type:text" json:"description"`
	Notes       string              `gorm:"type:text" json:"notes"`
	ImageURL    string              `gorm:"type:varchar(500)" json:"image_url"`

	RetailPrice   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"retail_price" validate:"omitempty,gte=0"`
	PurchasePrice decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"purchase_price" validate:"gte=0"`
	ListingPrice  decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"listing_price" validate:"omitempty,gte=0"`

	ReleaseDate  *time.Time `gorm:"type:date" json:"release_date,omitempty"`
	PurchaseDate time.Time  `gorm:"type:date;not null" json:"purchase_date" validate:"required"`

	Sales    []Sale    `json:"sales,omitempty"`
	Listings []Listing `json:"listings,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
