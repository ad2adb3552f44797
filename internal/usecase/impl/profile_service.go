package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface. It is the single
// place where a user row and a profile row merge into a UserView, so the
// "never partially resolved" invariant holds everywhere downstream.
type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve fetches the user row and the profile row in two independent lookups
// and merges them. A missing profile row is not a failure: it resolves to
// onboarded=false with an empty attribute bag. Any other error yields no view.
func (srv *profileService) Resolve(ctx context.Context, userID uuid.UUID) (*entity.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve user record", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "identity lookup failed")
		}

		return nil, errors.Wrap(domainerrors.ErrProfileResolveFailed, "identity lookup failed")
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		// Distinguishable from "not onboarded yet" at the observability layer,
		// even though both render the same gate.
		srv.log(ctx).Error("Failed to resolve profile record", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrProfileResolveFailed, "profile lookup failed")
	}

	return entity.NewUserView(user, profile), nil
}

// CompleteOnboarding upserts the profile row with onboarded=true and returns
// the updated view. Failure leaves the stored profile untouched.
func (srv *profileService) CompleteOnboarding(ctx context.Context, input *usecase.CompleteOnboardingInput) (*entity.UserView, error) {
	srv.log(ctx).Info("Completing onboarding", slog.Any("userID", input.UserID))

	return srv.saveProfile(ctx, input, true)
}

// SaveProfile replaces the attribute bag. Saving a non-empty payload marks the
// profile onboarded; an already-onboarded profile never reverts.
func (srv *profileService) SaveProfile(ctx context.Context, input *usecase.CompleteOnboardingInput) (*entity.UserView, error) {
	srv.log(ctx).Debug("Saving profile", slog.Any("userID", input.UserID))

	return srv.saveProfile(ctx, input, len(input.Attributes) > 0)
}

func (srv *profileService) saveProfile(ctx context.Context, input *usecase.CompleteOnboardingInput, markOnboarded bool) (*entity.UserView, error) {
	var view *entity.UserView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for profile save")
		}

		onboarded := markOnboarded
		if existing, err := profileRepo.FindByUserID(ctx, input.UserID); err == nil {
			// The onboarded flag is monotonic.
			onboarded = onboarded || existing.Onboarded
		} else if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to load existing profile")
		}

		attributes := input.Attributes
		if attributes == nil {
			attributes = map[string]any{}
		}

		profile := &entity.Profile{
			UserID:     input.UserID,
			Onboarded:  onboarded,
			Attributes: attributes,
			UpdatedAt:  time.Now(),
		}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to upsert profile")
		}

		// Build the view from the rows just written, so the caller observes
		// the transition without a re-fetch.
		view = entity.NewUserView(user, profile)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return view, nil
}
