package service

import (
	"soletrack/internal/analytics"
	"soletrack/internal/repository"
)

// AnalyticsService loads the rows and hands them to the pure analytics
// engine. All arithmetic lives in internal/analytics.
type AnalyticsService interface {
	GetSummary() (*analytics.Summary, error)
}

type analyticsService struct {
	sneakerRepo repository.SneakerRepository
	saleRepo    repository.SaleRepository
}

func NewAnalyticsService(sneakerRepo repository.SneakerRepository, saleRepo repository.SaleRepository) AnalyticsService {
	return &analyticsService{
		sneakerRepo: sneakerRepo,
		saleRepo:    saleRepo,
	}
}

func (s *analyticsService) GetSummary() (*analytics.Summary, error) {
	sneakers, err := s.sneakerRepo.FindAll(repository.SneakerFilter{})
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindAll("")
	if err != nil {
		return nil, err
	}

	summary := analytics.Summarize(sneakers, sales)
	return &summary, nil
}
