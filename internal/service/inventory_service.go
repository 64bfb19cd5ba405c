package service

import (
	"errors"
	"fmt"
	"time"

	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSneakerNotFound = errors.New("sneaker not found")
	ErrInvalidCategory = errors.New("invalid category")
)

type InventoryService interface {
	CreateSneaker(req *model.Sneaker, userID string) error
	UpdateSneaker(id uuid.UUID, req *model.Sneaker, userID string) (*model.Sneaker, error)
	DuplicateSneaker(id uuid.UUID, userID string) (*model.Sneaker, error)
	DeleteSneaker(id uuid.UUID) error
	GetSneakers(filter repository.SneakerFilter) ([]model.Sneaker, error)
	GetSneaker(id uuid.UUID) (*model.Sneaker, error)
	Brands() ([]string, error)
}

type inventoryService struct {
	sneakerRepo repository.SneakerRepository
	db          *gorm.DB
}

func NewInventoryService(sneakerRepo repository.SneakerRepository, db *gorm.DB) InventoryService {
	return &inventoryService{
		sneakerRepo: sneakerRepo,
		db:          db,
	}
}

// validationError flattens the first validator failure into a user-facing error.
func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func (s *inventoryService) CreateSneaker(req *model.Sneaker, userID string) error {
	if req.Category == "" {
		req.Category = model.CategoryMens
	}
	if !req.Category.Valid() {
		return ErrInvalidCategory
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	return s.sneakerRepo.Create(req)
}

func (s *inventoryService) UpdateSneaker(id uuid.UUID, req *model.Sneaker, userID string) (*model.Sneaker, error) {
	if req.Category == "" {
		req.Category = model.CategoryMens
	}
	if !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.sneakerRepo.FindByID(id)
	if err != nil {
		return nil, ErrSneakerNotFound
	}

	existing.SKU = req.SKU
	existing.Brand = req.Brand
	existing.Model = req.Model
	existing.Colorway = req.Colorway
	existing.Size = req.Size
	existing.Category = req.Category
	existing.Condition = req.Condition
	existing.Description = req.Description
	existing.Notes = req.Notes
	existing.RetailPrice = req.RetailPrice
	existing.PurchasePrice = req.PurchasePrice
	existing.ListingPrice = req.ListingPrice
	existing.ReleaseDate = req.ReleaseDate
	existing.PurchaseDate = req.PurchaseDate
	existing.UpdatedBy = userID
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}

	if err := s.sneakerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DuplicateSneaker copies an existing pair into a fresh inventory row with
// today's purchase date. A "-COPY" suffix marks the cloned SKU.
func (s *inventoryService) DuplicateSneaker(id uuid.UUID, userID string) (*model.Sneaker, error) {
	original, err := s.sneakerRepo.FindByID(id)
	if err != nil {
		return nil, ErrSneakerNotFound
	}

	clone := &model.Sneaker{
		Brand:         original.Brand,
		Model:         original.Model,
		Colorway:      original.Colorway,
		Size:          original.Size,
		Category:      original.Category,
		Condition:     original.Condition,
		Notes:         original.Notes,
		RetailPrice:   original.RetailPrice,
		PurchasePrice: original.PurchasePrice,
		ListingPrice:  original.ListingPrice,
		ReleaseDate:   original.ReleaseDate,
		PurchaseDate:  time.Now(),
	}
	if original.SKU != nil {
		copied := *original.SKU + "-COPY"
		clone.SKU = &copied
	}
	clone.CreatedBy = userID
	clone.UpdatedBy = userID

	if err := s.sneakerRepo.Create(clone); err != nil {
		return nil, err
	}
	return clone, nil
}

// DeleteSneaker removes a pair and its sales and listings atomically.
func (s *inventoryService) DeleteSneaker(id uuid.UUID) error {
	if _, err := s.sneakerRepo.FindByID(id); err != nil {
		return ErrSneakerNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Sale{}, "sneaker_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Listing{}, "sneaker_id = ?", id).Error; err != nil {
			return err
		}
		return s.sneakerRepo.Delete(tx, id)
	})
}

func (s *inventoryService) GetSneakers(filter repository.SneakerFilter) ([]model.Sneaker, error) {
	return s.sneakerRepo.FindAll(filter)
}

func (s *inventoryService) GetSneaker(id uuid.UUID) (*model.Sneaker, error) {
	sneaker, err := s.sneakerRepo.FindByID(id)
	if err != nil {
		return nil, ErrSneakerNotFound
	}
	return sneaker, nil
}

func (s *inventoryService) Brands() ([]string, error) {
	return s.sneakerRepo.Brands()
}
