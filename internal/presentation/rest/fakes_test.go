package rest

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
	"github.com/4ak45h/Legacy-Planner/pkg/events"
)

// In-memory repositories backing the handler tests. They satisfy the port
// interfaces and keep everything in maps guarded by one mutex each, which is
// plenty for single-goroutine httptest traffic.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return model.User{}, port.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return model.User{}, port.ErrNotFound
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]model.FinancialProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]model.FinancialProfile)}
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile model.FinancialProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (model.FinancialProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return model.FinancialProfile{}, port.ErrNotFound
	}
	return profile, nil
}

type fakeLedgerRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]model.LedgerItem
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{items: make(map[uuid.UUID]model.LedgerItem)}
}

func (r *fakeLedgerRepo) Save(_ context.Context, item model.LedgerItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeLedgerRepo) Update(_ context.Context, item model.LedgerItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok || existing.UserID != item.UserID {
		return port.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeLedgerRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok || existing.UserID != userID {
		return port.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLedgerRepo) FindByID(_ context.Context, userID, id uuid.UUID) (model.LedgerItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != userID {
		return model.LedgerItem{}, port.ErrNotFound
	}
	return item, nil
}

func (r *fakeLedgerRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.LedgerItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LedgerItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeWillRepo struct {
	mu    sync.Mutex
	wills map[uuid.UUID]model.Will
}

func newFakeWillRepo() *fakeWillRepo {
	return &fakeWillRepo{wills: make(map[uuid.UUID]model.Will)}
}

func (r *fakeWillRepo) Upsert(_ context.Context, will model.Will) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wills[will.UserID] = will
	return nil
}

func (r *fakeWillRepo) FindByUserID(_ context.Context, userID uuid.UUID) (model.Will, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	will, ok := r.wills[userID]
	if !ok {
		return model.Will{}, port.ErrNotFound
	}
	return will, nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[uuid.UUID]model.LegacyContact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]model.LegacyContact)}
}

func (r *fakeContactRepo) Save(_ context.Context, contact model.LegacyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.ContactStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contact, ok := r.contacts[id]
	if !ok {
		return port.ErrNotFound
	}
	contact.Status = status
	r.contacts[id] = contact
	return nil
}

func (r *fakeContactRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.LegacyContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.LegacyContact
	for _, contact := range r.contacts {
		if contact.UserID == userID {
			out = append(out, contact)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) FindByToken(_ context.Context, token string) (model.LegacyContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, contact := range r.contacts {
		if contact.VerificationToken == token {
			return contact, nil
		}
	}
	return model.LegacyContact{}, port.ErrNotFound
}

type fakeVaultRepo struct {
	mu     sync.Mutex
	assets map[uuid.UUID]model.VaultAsset
}

func newFakeVaultRepo() *fakeVaultRepo {
	return &fakeVaultRepo{assets: make(map[uuid.UUID]model.VaultAsset)}
}

func (r *fakeVaultRepo) Save(_ context.Context, asset model.VaultAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeVaultRepo) Update(_ context.Context, asset model.VaultAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.assets[asset.ID]
	if !ok || existing.UserID != asset.UserID {
		return port.ErrNotFound
	}
	r.assets[asset.ID] = asset
	return nil
}

func (r *fakeVaultRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.assets[id]
	if !ok || existing.UserID != userID {
		return port.ErrNotFound
	}
	delete(r.assets, id)
	return nil
}

func (r *fakeVaultRepo) FindByID(_ context.Context, userID, id uuid.UUID) (model.VaultAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[id]
	if !ok || asset.UserID != userID {
		return model.VaultAsset{}, port.ErrNotFound
	}
	return asset, nil
}

func (r *fakeVaultRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.VaultAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.VaultAsset
	for _, asset := range r.assets {
		if asset.UserID == userID {
			out = append(out, asset)
		}
	}
	return out, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...events.DomainEvent) error { return nil }

type staticTokens struct{}

func (staticTokens) GenerateToken(uuid.UUID, string) (string, error) {
	return "test-token", nil
}
