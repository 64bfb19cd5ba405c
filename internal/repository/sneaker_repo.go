package repository

import (
	"strings"

	"soletrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SneakerFilter narrows inventory listings. Zero values mean "no filter".
type SneakerFilter struct {
	Search    string // matches brand, model or colorway
	Brand     string
	Condition string
}

type SneakerRepository interface {
	Create(sneaker *model.Sneaker) error
	FindAll(filter SneakerFilter) ([]model.Sneaker, error)
	FindByID(id uuid.UUID) (*model.Sneaker, error)
	Update(sneaker *model.Sneaker) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	Brands() ([]string, error)
}

type sneakerRepo struct {
	db *gorm.DB
}

func NewSneakerRepo(db *gorm.DB) SneakerRepository {
	return &sneakerRepo{db}
}

func (r *sneakerRepo) Create(sneaker *model.Sneaker) error {
	return r.db.Create(sneaker).Error
}

func (r *sneakerRepo) FindAll(filter SneakerFilter) ([]model.Sneaker, error) {
	query := r.db.Model(&model.Sneaker{})

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(colorway) LIKE ?",
			term, term, term,
		)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(filter.Brand)+"%")
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}

	var sneakers []model.Sneaker
	err := query.Preload("Sales").Preload("Listings").Order("created_at DESC").Find(&sneakers).Error
	return sneakers, err
}

func (r *sneakerRepo) FindByID(id uuid.UUID) (*model.Sneaker, error) {
	var sneaker model.Sneaker
	err := r.db.Preload("Sales").Preload("Listings").First(&sneaker, "id = ?", id).Error
	return &sneaker, err
}

func (r *sneakerRepo) Update(sneaker *model.Sneaker) error {
	return r.db.Save(sneaker).Error
}

// Delete removes a sneaker inside the given transaction so callers can
// cascade sales and listings atomically.
func (r *sneakerRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Sneaker{}, "id = ?", id).Error
}

func (r *sneakerRepo) Brands() ([]string, error) {
	var brands []string
	err := r.db.Model(&model.Sneaker{}).Distinct("brand").Order("brand ASC").Pluck("brand", &brands).Error
	return brands, err
}
