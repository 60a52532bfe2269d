package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	"github.com/4ak45h/Legacy-Planner/pkg/events"
)

// --- Mock implementations ---

type mockUserRepository struct {
	saveFunc        func(ctx context.Context, user model.User) error
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (model.User, error)
	findByEmailFunc func(ctx context.Context, email string) (model.User, error)
	savedUsers      []model.User
}

func (m *mockUserRepository) Save(ctx context.Context, user model.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, user)
	}
	m.savedUsers = append(m.savedUsers, user)
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.User{}, port.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return model.User{}, port.ErrNotFound
}

type mockProfileRepository struct {
	upsertFunc       func(ctx context.Context, profile model.FinancialProfile) error
	findByUserIDFunc func(ctx context.Context, userID uuid.UUID) (model.FinancialProfile, error)
	savedProfiles    []model.FinancialProfile
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile model.FinancialProfile) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, profile)
	}
	m.savedProfiles = append(m.savedProfiles, profile)
	return nil
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (model.FinancialProfile, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return model.FinancialProfile{}, port.ErrNotFound
}

type mockLedgerRepository struct {
	items      map[uuid.UUID]model.LedgerItem
	saveErr    error
	deleteFunc func(ctx context.Context, userID, id uuid.UUID) error
}

func newMockLedgerRepository() *mockLedgerRepository {
	return &mockLedgerRepository{items: make(map[uuid.UUID]model.LedgerItem)}
}

func (m *mockLedgerRepository) Save(_ context.Context, item model.LedgerItem) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockLedgerRepository) Update(_ context.Context, item model.LedgerItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockLedgerRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return port.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockLedgerRepository) FindByID(_ context.Context, userID, id uuid.UUID) (model.LedgerItem, error) {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return model.LedgerItem{}, port.ErrNotFound
	}
	return item, nil
}

func (m *mockLedgerRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.LedgerItem, error) {
	var out []model.LedgerItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

type mockWillRepository struct {
	will    *model.Will
	findErr error
}

func (m *mockWillRepository) Upsert(_ context.Context, will model.Will) error {
	m.will = &will
	return nil
}

func (m *mockWillRepository) FindByUserID(_ context.Context, _ uuid.UUID) (model.Will, error) {
	if m.findErr != nil {
		return model.Will{}, m.findErr
	}
	if m.will == nil {
		return model.Will{}, port.ErrNotFound
	}
	return *m.will, nil
}

type mockContactRepository struct {
	contacts       []model.LegacyContact
	statusUpdates  map[uuid.UUID]model.ContactStatus
	findByTokenErr error
}

func newMockContactRepository() *mockContactRepository {
	return &mockContactRepository{statusUpdates: make(map[uuid.UUID]model.ContactStatus)}
}

func (m *mockContactRepository) Save(_ context.Context, contact model.LegacyContact) error {
	m.contacts = append(m.contacts, contact)
	return nil
}

func (m *mockContactRepository) UpdateStatus(_ context.Context, id uuid.UUID, status model.ContactStatus) error {
	m.statusUpdates[id] = status
	for i := range m.contacts {
		if m.contacts[i].ID == id {
			m.contacts[i].Status = status
		}
	}
	return nil
}

func (m *mockContactRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.LegacyContact, error) {
	var out []model.LegacyContact
	for _, c := range m.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockContactRepository) FindByToken(_ context.Context, token string) (model.LegacyContact, error) {
	if m.findByTokenErr != nil {
		return model.LegacyContact{}, m.findByTokenErr
	}
	for _, c := range m.contacts {
		if c.VerificationToken == token {
			return c, nil
		}
	}
	return model.LegacyContact{}, port.ErrNotFound
}

type mockVaultAssetRepository struct {
	assets map[uuid.UUID]model.VaultAsset
}

func newMockVaultAssetRepository() *mockVaultAssetRepository {
	return &mockVaultAssetRepository{assets: make(map[uuid.UUID]model.VaultAsset)}
}

func (m *mockVaultAssetRepository) Save(_ context.Context, asset model.VaultAsset) error {
	m.assets[asset.ID] = asset
	return nil
}

func (m *mockVaultAssetRepository) Update(_ context.Context, asset model.VaultAsset) error {
	m.assets[asset.ID] = asset
	return nil
}

func (m *mockVaultAssetRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	asset, ok := m.assets[id]
	if !ok || asset.UserID != userID {
		return port.ErrNotFound
	}
	delete(m.assets, id)
	return nil
}

func (m *mockVaultAssetRepository) FindByID(_ context.Context, userID, id uuid.UUID) (model.VaultAsset, error) {
	asset, ok := m.assets[id]
	if !ok || asset.UserID != userID {
		return model.VaultAsset{}, port.ErrNotFound
	}
	return asset, nil
}

func (m *mockVaultAssetRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.VaultAsset, error) {
	var out []model.VaultAsset
	for _, asset := range m.assets {
		if asset.UserID == userID {
			out = append(out, asset)
		}
	}
	return out, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
	publishedEvents []events.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) GenerateToken(_ uuid.UUID, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.token == "" {
		return "signed.jwt.token", nil
	}
	return m.token, nil
}

type mockAdvisorClient struct {
	askFunc func(ctx context.Context, grounding, question string) (string, error)

	lastGrounding string
	lastQuestion  string
}

func (m *mockAdvisorClient) Ask(ctx context.Context, grounding, question string) (string, error) {
	m.lastGrounding = grounding
	m.lastQuestion = question
	if m.askFunc != nil {
		return m.askFunc(ctx, grounding, question)
	}
	return "advisor reply", nil
}

type mockSnapshotCache struct {
	entries map[string][]byte
	getErr  error
	sets    int
}

func newMockSnapshotCache() *mockSnapshotCache {
	return &mockSnapshotCache{entries: make(map[string][]byte)}
}

func (m *mockSnapshotCache) Get(_ context.Context, token string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	payload, ok := m.entries[token]
	return payload, ok, nil
}

func (m *mockSnapshotCache) Set(_ context.Context, token string, payload []byte, _ time.Duration) error {
	m.sets++
	m.entries[token] = payload
	return nil
}

func (m *mockSnapshotCache) Invalidate(_ context.Context, token string) error {
	delete(m.entries, token)
	return nil
}
