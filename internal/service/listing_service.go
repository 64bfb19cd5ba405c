package service

import (
	"errors"
	"time"

	"soletrack/internal/model"
	"soletrack/internal/repository"
	"soletrack/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingTerminal    = errors.New("listing status is terminal and cannot change")
	ErrPlatformListed     = errors.New("sneaker already has an open listing on this platform")
)

type ListingService interface {
	CreateListing(sneakerID uuid.UUID, req *model.Listing, userID string) error
	GetListings(filter repository.ListingFilter) ([]model.Listing, error)
	GetListingsForSneaker(sneakerID uuid.UUID) ([]model.Listing, error)
	UpdateListing(id uuid.UUID, req *model.Listing, userID string) (*model.Listing, error)
	DeleteListing(id uuid.UUID) error
}

type listingService struct {
	listingRepo repository.ListingRepository
	sneakerRepo repository.SneakerRepository
}

func NewListingService(listingRepo repository.ListingRepository, sneakerRepo repository.SneakerRepository) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		sneakerRepo: sneakerRepo,
	}
}

func (s *listingService) CreateListing(sneakerID uuid.UUID, req *model.Listing, userID string) error {
	if _, err := s.sneakerRepo.FindByID(sneakerID); err != nil {
		return ErrSneakerNotFound
	}

	req.SneakerID = sneakerID
	if req.Status == "" {
		req.Status = model.ListingActive
	}
	if req.DateListed.IsZero() {
		req.DateListed = time.Now()
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	// One open listing per platform per sneaker.
	existing, err := s.listingRepo.FindBySneakerID(sneakerID)
	if err != nil {
		return err
	}
	for _, listing := range existing {
		if listing.Platform == req.Platform && !listing.Status.Terminal() {
			return ErrPlatformListed
		}
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.listingRepo.Create(req)
}

func (s *listingService) GetListings(filter repository.ListingFilter) ([]model.Listing, error) {
	return s.listingRepo.FindAll(filter)
}

func (s *listingService) GetListingsForSneaker(sneakerID uuid.UUID) ([]model.Listing, error) {
	if _, err := s.sneakerRepo.FindByID(sneakerID); err != nil {
		return nil, ErrSneakerNotFound
	}
	return s.listingRepo.FindBySneakerID(sneakerID)
}

// UpdateListing edits a listing. Sold and Expired are terminal: once there,
// the status field can no longer change.
func (s *listingService) UpdateListing(id uuid.UUID, req *model.Listing, userID string) (*model.Listing, error) {
	existing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return nil, ErrListingNotFound
	}

	if req.Status != "" && req.Status != existing.Status && existing.Status.Terminal() {
		return nil, ErrListingTerminal
	}

	existing.Platform = req.Platform
	existing.ListingPrice = req.ListingPrice
	existing.ListingURL = req.ListingURL
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}
	if !req.DateListed.IsZero() {
		existing.DateListed = req.DateListed
	}
	now := time.Now()
	existing.DateUpdated = &now
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if err := s.listingRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *listingService) DeleteListing(id uuid.UUID) error {
	if _, err := s.listingRepo.FindByID(id); err != nil {
		return ErrListingNotFound
	}
	return s.listingRepo.Delete(id)
}
