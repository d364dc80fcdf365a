package storage

import (
	"context"
	"sort"
	"sync"

	"creatorrate.app/cloud/models"
)

// Storage is the persistence boundary for the service. Lookups that find
// nothing return (nil, nil); saves are upserts keyed by email or id.
type Storage interface {
	FindSubscriptionByEmail(ctx context.Context, email string) (*models.Subscription, error)
	SaveSubscription(ctx context.Context, sub *models.Subscription) error

	GetDeal(ctx context.Context, id string) (*models.Deal, error)
	FindDealsByEmail(ctx context.Context, email string) ([]*models.Deal, error)
	SaveDeal(ctx context.Context, deal *models.Deal) error
	DeleteDeal(ctx context.Context, id string) error

	FindLegalProfileByEmail(ctx context.Context, email string) (*models.LegalProfile, error)
	SaveLegalProfile(ctx context.Context, profile *models.LegalProfile) error

	Close() error
}

// MemoryStorage backs tests and local development.
type MemoryStorage struct {
	mu            sync.RWMutex
	Subscriptions map[string]models.Subscription
	Deals         map[string]models.Deal
	LegalProfiles map[string]models.LegalProfile
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		Subscriptions: make(map[string]models.Subscription),
		Deals:         make(map[string]models.Deal),
		LegalProfiles: make(map[string]models.LegalProfile),
	}
}

func (m *MemoryStorage) FindSubscriptionByEmail(ctx context.Context, email string) (*models.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.Subscriptions[email]
	if !exists {
		return nil, nil
	}
	return &sub, nil
}

func (m *MemoryStorage) SaveSubscription(ctx context.Context, sub *models.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Subscriptions[sub.Email] = *sub
	return nil
}

func (m *MemoryStorage) GetDeal(ctx context.Context, id string) (*models.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	deal, exists := m.Deals[id]
	if !exists {
		return nil, nil
	}
	return &deal, nil
}

func (m *MemoryStorage) FindDealsByEmail(ctx context.Context, email string) ([]*models.Deal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var deals []*models.Deal
	for _, deal := range m.Deals {
		if deal.Email == email {
			dealCopy := deal
			deals = append(deals, &dealCopy)
		}
	}

	// Map iteration order is random; keep list output stable.
	sort.Slice(deals, func(i, j int) bool {
		return deals[i].CreatedAt.Before(deals[j].CreatedAt)
	})

	return deals, nil
}

func (m *MemoryStorage) SaveDeal(ctx context.Context, deal *models.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Deals[deal.ID] = *deal
	return nil
}

func (m *MemoryStorage) DeleteDeal(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Deals, id)
	return nil
}

func (m *MemoryStorage) FindLegalProfileByEmail(ctx context.Context, email string) (*models.LegalProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, exists := m.LegalProfiles[email]
	if !exists {
		return nil, nil
	}
	return &profile, nil
}

func (m *MemoryStorage) SaveLegalProfile(ctx context.Context, profile *models.LegalProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LegalProfiles[profile.Email] = *profile
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
