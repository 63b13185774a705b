package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fablink/fablink-api/models"
)

// QuoteService provides read-only access to manufacturer quote history for
// cost-efficiency scoring. It satisfies matching.QuoteSource.
type QuoteService interface {
	RecentQuotes(manufacturerID uint, since time.Time) ([]float64, error)
}

// GormQuoteService reads quote history from the database.
type GormQuoteService struct {
	db *gorm.DB
}

var quoteServiceInstance QuoteService

// InitQuoteService initializes the quote service against the given database
func InitQuoteService(db *gorm.DB) QuoteService {
	quoteServiceInstance = &GormQuoteService{db: db}
	return quoteServiceInstance
}

// GetQuoteService returns the initialized quote service instance
func GetQuoteService() QuoteService {
	return quoteServiceInstance
}

// SetQuoteService sets the quote service instance (primarily for testing)
func SetQuoteService(s QuoteService) {
	quoteServiceInstance = s
}

// RecentQuotes returns the manufacturer's quote amounts since the given
// time, most recent first.
func (s *GormQuoteService) RecentQuotes(manufacturerID uint, since time.Time) ([]float64, error) {
	var quotes []models.Quote
	err := s.db.
		Where("manufacturer_id = ? AND created_at >= ?", manufacturerID, since).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load quote history: %w", err)
	}

	prices := make([]float64, len(quotes))
	for i, q := range quotes {
		prices[i] = q.Amount
	}
	return prices, nil
}
