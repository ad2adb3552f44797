package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *fakeUserRepo
	profileRepo *fakeProfileRepo
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	factory := &fakeRepoFactory{userRepo: userRepo, profileRepo: profileRepo}

	svc := NewProfileService(ProfileServiceParams{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		TxManager:   &fakeTxManager{factory: factory},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return profileServiceFixtures{service: svc, userRepo: userRepo, profileRepo: profileRepo}
}

func seedUser(t *testing.T, userRepo *fakeUserRepo, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Asha", Email: "asha@example.com", Role: role}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return user
}

func TestProfileService_Resolve_NoProfileRow(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleCreator)

	view, err := fixtures.service.Resolve(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, "Asha", view.Name)
	assert.Equal(t, entity.RoleCreator, view.Role)
	assert.False(t, view.Onboarded)
	assert.NotNil(t, view.Profile)
	assert.Empty(t, view.Profile)
}

func TestProfileService_Resolve_WithProfileRow(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleOrganizer)
	require.NoError(t, fixtures.profileRepo.Upsert(context.Background(), &entity.Profile{
		UserID:     user.ID,
		Onboarded:  true,
		Attributes: map[string]any{"organization": "Craft Collective"},
	}))

	view, err := fixtures.service.Resolve(context.Background(), user.ID)

	require.NoError(t, err)
	assert.True(t, view.Onboarded)
	assert.Equal(t, "Craft Collective", view.Profile["organization"])
	// Identity fields always come from the user record.
	assert.Equal(t, "asha@example.com", view.Email)
}

func TestProfileService_Resolve_UnknownUser(t *testing.T) {
	fixtures := createTestProfileService(t)

	_, err := fixtures.service.Resolve(context.Background(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_Resolve_ProfileLookupFailure(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleCreator)
	fixtures.profileRepo.findErr = assert.AnError

	// A store failure is not "not onboarded"; no view may be produced.
	_, err := fixtures.service.Resolve(context.Background(), user.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileResolveFailed)
}

func TestProfileService_CompleteOnboarding_ReturnsUpdatedView(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleInvestor)

	view, err := fixtures.service.CompleteOnboarding(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{"interests": []string{"textiles"}},
	})

	require.NoError(t, err)
	assert.True(t, view.Onboarded)
	assert.Equal(t, []string{"textiles"}, view.Profile["interests"])

	// The write is observable on a fresh resolve, not just in the returned view.
	resolved, err := fixtures.service.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, resolved.Onboarded)
}

func TestProfileService_CompleteOnboarding_UnknownUser(t *testing.T) {
	fixtures := createTestProfileService(t)

	_, err := fixtures.service.CompleteOnboarding(context.Background(), &usecase.CompleteOnboardingInput{
		UserID: uuid.New(),
	})

	require.Error(t, err)
}

func TestProfileService_CompleteOnboarding_FailureLeavesStateUnchanged(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleCreator)
	fixtures.profileRepo.upsertErr = assert.AnError

	_, err := fixtures.service.CompleteOnboarding(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{"phone": "555-0100"},
	})
	require.Error(t, err)

	fixtures.profileRepo.upsertErr = nil
	view, err := fixtures.service.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, view.Onboarded)
}

func TestProfileService_SaveProfile_OnboardedFlagIsMonotonic(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleCreator)

	_, err := fixtures.service.CompleteOnboarding(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{"phone": "555-0100"},
	})
	require.NoError(t, err)

	// A later save with an empty payload must not revert onboarding.
	view, err := fixtures.service.SaveProfile(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{},
	})

	require.NoError(t, err)
	assert.True(t, view.Onboarded)
}

func TestProfileService_SaveProfile_ReplacesAttributeBag(t *testing.T) {
	fixtures := createTestProfileService(t)
	user := seedUser(t, fixtures.userRepo, entity.RoleCreator)

	_, err := fixtures.service.SaveProfile(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{"phone": "555-0100", "craft": "weaving"},
	})
	require.NoError(t, err)

	view, err := fixtures.service.SaveProfile(context.Background(), &usecase.CompleteOnboardingInput{
		UserID:     user.ID,
		Attributes: map[string]any{"craft": "pottery"},
	})

	require.NoError(t, err)
	assert.Equal(t, "pottery", view.Profile["craft"])
	assert.NotContains(t, view.Profile, "phone")
}
