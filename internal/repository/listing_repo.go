package repository

import (
	"soletrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingFilter narrows the global listings view.
type ListingFilter struct {
	Status   string
	Platform string
}

type ListingRepository interface {
	Create(listing *model.Listing) error
	FindAll(filter ListingFilter) ([]model.Listing, error)
	FindByID(id uuid.UUID) (*model.Listing, error)
	FindBySneakerID(sneakerID uuid.UUID) ([]model.Listing, error)
	Update(listing *model.Listing) error
	Delete(id uuid.UUID) error
}

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepo(db *gorm.DB) ListingRepository {
	return &listingRepo{db}
}

func (r *listingRepo) Create(listing *model.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepo) FindAll(filter ListingFilter) ([]model.Listing, error) {
	query := r.db.Model(&model.Listing{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}

	var listings []model.Listing
	err := query.Preload("Sneaker").Order("date_listed DESC").Find(&listings).Error
	return listings, err
}

func (r *listingRepo) FindByID(id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.Preload("Sneaker").First(&listing, "id = ?", id).Error
	return &listing, err
}

func (r *listingRepo) FindBySneakerID(sneakerID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.Where("sneaker_id = ?", sneakerID).Order("date_listed DESC").Find(&listings).Error
	return listings, err
}

func (r *listingRepo) Update(listing *model.Listing) error {
	return r.db.Save(listing).Error
}

func (r *listingRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Listing{}, "id = ?", id).Error
}
