package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ak45h/Legacy-Planner/internal/application/dto"
	"github.com/4ak45h/Legacy-Planner/internal/application/usecase"
	"github.com/4ak45h/Legacy-Planner/internal/domain/event"
	"github.com/4ak45h/Legacy-Planner/internal/domain/model"
	"github.com/4ak45h/Legacy-Planner/internal/domain/port"
)

func snapshotFixtures(t *testing.T) (model.LegacyContact, model.FinancialProfile) {
	t.Helper()
	userID := uuid.New()
	contact, err := model.NewLegacyContact(userID, "Ravi Rao", "ravi@example.com", time.Now())
	require.NoError(t, err)

	profile := model.FinancialProfile{
		ID:       uuid.New(),
		UserID:   userID,
		FullName: "Asha Rao",
		Property: model.Property{Name: "Green Acres Villa", TargetPrice: 5_000_000},
		Analysis: model.AnalysisResult{
			AffordabilityScore: 42,
			AIAnalysisMarkdown: "### Savings Strategy\n\nSave more.",
		},
	}
	return contact, profile
}

func newSnapshotUseCase(
	contacts *mockContactRepository,
	profiles *mockProfileRepository,
	cache *mockSnapshotCache,
	publisher *mockEventPublisher,
) *usecase.RetrieveSnapshotUseCase {
	// A plainly nil port.SnapshotCache disables caching; a typed nil mock
	// would not.
	var c port.SnapshotCache
	if cache != nil {
		c = cache
	}
	return usecase.NewRetrieveSnapshotUseCase(contacts, profiles, c, publisher, nil, time.Minute)
}

func TestRetrieveSnapshot_FlipsStatusToActive(t *testing.T) {
	contact, profile := snapshotFixtures(t)

	contacts := newMockContactRepository()
	contacts.contacts = append(contacts.contacts, contact)
	profiles := &mockProfileRepository{
		findByUserIDFunc: func(_ context.Context, _ uuid.UUID) (model.FinancialProfile, error) {
			return profile, nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := newSnapshotUseCase(contacts, profiles, nil, publisher)

	snapshot, err := uc.Execute(context.Background(), contact.VerificationToken)

	require.NoError(t, err)
	assert.Equal(t, model.ContactActive, snapshot.Status)
	assert.Equal(t, "Asha Rao", snapshot.UserProfile)
	assert.Equal(t, "Green Acres Villa", snapshot.RetrievedData.Name)
	assert.Equal(t, 42, snapshot.FullAnalysis.AffordabilityScore)
	assert.Contains(t, snapshot.FullAnalysis.AIAnalysisMarkdown, "Savings Strategy")

	assert.Equal(t, model.ContactActive, contacts.statusUpdates[contact.ID])

	require.Len(t, publisher.publishedEvents, 1)
	retrieved, ok := publisher.publishedEvents[0].(event.SnapshotRetrieved)
	require.True(t, ok)
	assert.Equal(t, contact.UserID, retrieved.OwnerID)
}

func TestRetrieveSnapshot_AlreadyActiveSkipsStatusWrite(t *testing.T) {
	contact, profile := snapshotFixtures(t)
	contact.Status = model.ContactActive

	contacts := newMockContactRepository()
	contacts.contacts = append(contacts.contacts, contact)
	profiles := &mockProfileRepository{
		findByUserIDFunc: func(_ context.Context, _ uuid.UUID) (model.FinancialProfile, error) {
			return profile, nil
		},
	}
	uc := newSnapshotUseCase(contacts, profiles, nil, &mockEventPublisher{})

	snapshot, err := uc.Execute(context.Background(), contact.VerificationToken)

	require.NoError(t, err)
	assert.Equal(t, model.ContactActive, snapshot.Status)
	assert.Empty(t, contacts.statusUpdates)
}

func TestRetrieveSnapshot_InvalidToken(t *testing.T) {
	uc := newSnapshotUseCase(newMockContactRepository(), &mockProfileRepository{}, nil, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}

func TestRetrieveSnapshot_MissingProfileLooksLikeInvalidToken(t *testing.T) {
	contact, _ := snapshotFixtures(t)

	contacts := newMockContactRepository()
	contacts.contacts = append(contacts.contacts, contact)
	uc := newSnapshotUseCase(contacts, &mockProfileRepository{}, nil, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), contact.VerificationToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidToken)
}

func TestRetrieveSnapshot_SecondReadServedFromCache(t *testing.T) {
	contact, profile := snapshotFixtures(t)

	contacts := newMockContactRepository()
	contacts.contacts = append(contacts.contacts, contact)
	profileReads := 0
	profiles := &mockProfileRepository{
		findByUserIDFunc: func(_ context.Context, _ uuid.UUID) (model.FinancialProfile, error) {
			profileReads++
			return profile, nil
		},
	}
	cache := newMockSnapshotCache()
	uc := newSnapshotUseCase(contacts, profiles, cache, &mockEventPublisher{})

	first, err := uc.Execute(context.Background(), contact.VerificationToken)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), contact.VerificationToken)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, profileReads)
	assert.Equal(t, 1, cache.sets)
}

func TestRetrieveSnapshot_CacheFailureFallsThrough(t *testing.T) {
	contact, profile := snapshotFixtures(t)

	contacts := newMockContactRepository()
	contacts.contacts = append(contacts.contacts, contact)
	profiles := &mockProfileRepository{
		findByUserIDFunc: func(_ context.Context, _ uuid.UUID) (model.FinancialProfile, error) {
			return profile, nil
		},
	}
	cache := newMockSnapshotCache()
	cache.getErr = assert.AnError
	uc := newSnapshotUseCase(contacts, profiles, cache, &mockEventPublisher{})

	snapshot, err := uc.Execute(context.Background(), contact.VerificationToken)

	require.NoError(t, err)
	assert.Equal(t, dto.SnapshotResponse{
		Status:        model.ContactActive,
		UserProfile:   profile.FullName,
		RetrievedData: profile.Property,
		FullAnalysis:  profile.Analysis,
	}, snapshot)
}
