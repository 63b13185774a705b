package services

import (
	"sync"
	"time"
)

// MockQuoteService is an in-memory QuoteService for testing
type MockQuoteService struct {
	quotes map[uint][]float64
	err    error
	mu     sync.RWMutex
}

// NewMockQuoteService creates a new mock quote service
func NewMockQuoteService() *MockQuoteService {
	return &MockQuoteService{
		quotes: make(map[uint][]float64),
	}
}

// SetAsMockForTesting sets this mock as the global quote service instance
func (m *MockQuoteService) SetAsMockForTesting() {
	SetQuoteService(m)
}

// SetQuotes stores quote prices for a manufacturer
func (m *MockQuoteService) SetQuotes(manufacturerID uint, prices []float64) {
	m.mu.Lock()
	m.quotes[manufacturerID] = prices
	m.mu.Unlock()
}

// FailWith makes every lookup return err (for error-path testing)
func (m *MockQuoteService) FailWith(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// RecentQuotes returns the stored quote prices; the since parameter is
// ignored because the mock stores already-windowed data.
func (m *MockQuoteService) RecentQuotes(manufacturerID uint, since time.Time) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}

	prices := m.quotes[manufacturerID]
	out := make([]float64, len(prices))
	copy(out, prices)
	return out, nil
}
