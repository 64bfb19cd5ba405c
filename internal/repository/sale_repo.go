package repository

import (
	"soletrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll(platform string) ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindBySneakerID(sneakerID uuid.UUID) ([]model.Sale, error)
	Update(sale *model.Sale) error
	Delete(id uuid.UUID) error
	Platforms() ([]string, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create accepts a tx handle so recording a sale can share a transaction
// with the sold-check on the sneaker.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll(platform string) ([]model.Sale, error) {
	query := r.db.Model(&model.Sale{})
	if platform != "" {
		query = query.Where("platform = ?", platform)
	}

	var sales []model.Sale
	err := query.Preload("Sneaker").Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Sneaker").First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) FindBySneakerID(sneakerID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("sneaker_id = ?", sneakerID).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Sale{}, "id = ?", id).Error
}

func (r *saleRepo) Platforms() ([]string, error) {
	var platforms []string
	err := r.db.Model(&model.Sale{}).
		Where("platform <> ''").
		Distinct("platform").
		Order("platform ASC").
		Pluck("platform", &platforms).Error
	return platforms, err
}
