package service

import (
	"errors"

	"soletrack/internal/analytics"
	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound = errors.New("sale not found")
	ErrAlreadySold  = errors.New("sneaker already has a recorded sale")
)

// SaleWithMetrics decorates a sale with its derived numbers. ROI is nil
// when the purchase price is zero (undefined, reported as N/A).
type SaleWithMetrics struct {
	model.Sale
	Profit     decimal.Decimal  `json:"profit"`
	ROI        *decimal.Decimal `json:"roi"`
	DaysToSale int              `json:"days_to_sale"`
}

type SalesService interface {
	RecordSale(req *model.Sale, userID string) error
	GetSales(platform string) ([]SaleWithMetrics, error)
	GetSale(id uuid.UUID) (*SaleWithMetrics, error)
	UpdateSale(id uuid.UUID, req *model.Sale, userID string) (*model.Sale, error)
	DeleteSale(id uuid.UUID) error
	Platforms() ([]string, error)
}

type salesService struct {
	saleRepo    repository.SaleRepository
	sneakerRepo repository.SneakerRepository
	db          *gorm.DB
}

func NewSalesService(saleRepo repository.SaleRepository, sneakerRepo repository.SneakerRepository, db *gorm.DB) SalesService {
	return &salesService{
		saleRepo:    saleRepo,
		sneakerRepo: sneakerRepo,
		db:          db,
	}
}

// RecordSale persists a new sale. A sneaker can only be sold once; the
// existence check and insert share one transaction.
func (s *salesService) RecordSale(req *model.Sale, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var sneaker model.Sneaker
		if err := tx.First(&sneaker, "id = ?", req.SneakerID).Error; err != nil {
			return ErrSneakerNotFound
		}

		var sold int64
		if err := tx.Model(&model.Sale{}).Where("sneaker_id = ?", req.SneakerID).Count(&sold).Error; err != nil {
			return err
		}
		if sold > 0 {
			return ErrAlreadySold
		}

		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.saleRepo.Create(tx, req)
	})
}

func (s *salesService) GetSales(platform string) ([]SaleWithMetrics, error) {
	sales, err := s.saleRepo.FindAll(platform)
	if err != nil {
		return nil, err
	}

	decorated := make([]SaleWithMetrics, 0, len(sales))
	for _, sale := range sales {
		decorated = append(decorated, decorate(sale))
	}
	return decorated, nil
}

func (s *salesService) GetSale(id uuid.UUID) (*SaleWithMetrics, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	withMetrics := decorate(*sale)
	return &withMetrics, nil
}

func decorate(sale model.Sale) SaleWithMetrics {
	withMetrics := SaleWithMetrics{
		Sale:       sale,
		Profit:     analytics.Profit(sale, sale.Sneaker),
		DaysToSale: analytics.DaysToSale(sale, sale.Sneaker),
	}
	if roi, ok := analytics.ROI(sale, sale.Sneaker); ok {
		withMetrics.ROI = &roi
	}
	return withMetrics
}

// UpdateSale applies a correction edit to an existing sale record.
func (s *salesService) UpdateSale(id uuid.UUID, req *model.Sale, userID string) (*model.Sale, error) {
	existing, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, ErrSaleNotFound
	}

	existing.SalePrice = req.SalePrice
	existing.Fees = req.Fees
	existing.ShippingCost = req.ShippingCost
	existing.SaleDate = req.SaleDate
	existing.Platform = req.Platform
	existing.BuyerInfo = req.BuyerInfo
	existing.TrackingNumber = req.TrackingNumber
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if err := s.saleRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteSale removes a sale record, returning the sneaker to available
// inventory.
func (s *salesService) DeleteSale(id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(id); err != nil {
		return ErrSaleNotFound
	}
	return s.saleRepo.Delete(id)
}

func (s *salesService) Platforms() ([]string, error) {
	return s.saleRepo.Platforms()
}
