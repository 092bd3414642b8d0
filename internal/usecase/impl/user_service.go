// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	deliverycontext "github.com/sankalpsthakur/astronova-sub007/internal/delivery/context"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	appleVerifier     service.IdentityVerifier
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	AppleVerifier    service.IdentityVerifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		appleVerifier:     params.AppleVerifier,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the email/password login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt check runs outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.issueSession(ctx, authRecord.UserID)
}

// AppleSignIn verifies an Apple identity token and logs the user in,
// creating the account on first sign-in.
func (srv *userService) AppleSignIn(ctx context.Context, input *usecase.AppleSignInInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting Apple sign-in")

	identity, err := srv.appleVerifier.VerifyIdentityToken(ctx, input.IdentityToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAppleTokenInvalid, err.Error())
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeApple, identity.Subject)
		if findErr == nil {
			userID = authRecord.UserID

			return nil
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		// First Apple sign-in. Link to an existing account with the same
		// email, or create a fresh one.
		linkedUser, userErr := srv.resolveAppleUser(ctx, userRepo, identity, input.FullName)
		if userErr != nil {
			return userErr
		}

		newAuth := &entity.Authentication{
			UserID:         linkedUser.ID,
			Provider:       entity.ProviderTypeApple,
			ProviderUserID: identity.Subject,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to link Apple credential")
		}

		userID = linkedUser.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Apple sign-in transaction", slog.Any("error", err))

		return nil, err
	}

	return srv.issueSession(ctx, userID)
}

func (srv *userService) resolveAppleUser(ctx context.Context, userRepo repository.UserRepository, identity *service.ExternalIdentity, fullName string) (*entity.User, error) {
	if identity.Email != "" {
		existing, err := userRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}
	}

	newUser := &entity.User{
		Name:  fullName,
		Email: identity.Email,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during Apple sign-in")
	}

	return newUser, nil
}

// Refresh rotates a valid refresh token into a new token pair. The old
// session row is replaced so a stolen token cannot be replayed.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session not found")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.Expired(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if err := refreshRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to retire old session")
		}

		return refreshRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to rotate session")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	// Even an invalid token is deleted from the database when present.
	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed delete refresh token during logout")
	}

	return nil
}

// issueSession generates a token pair and stores the refresh token,
// evicting the oldest sessions when the per-user limit is exceeded.
func (srv *userService) issueSession(ctx context.Context, userID uuid.UUID) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for session")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		if srv.maxActiveSessions > 0 {
			existing, listErr := refreshRepo.FindRefreshTokensByUserID(ctx, user.ID)
			if listErr != nil {
				return errors.Wrap(listErr, "failed to list sessions")
			}

			// Tokens arrive oldest first; drop enough to stay under the cap.
			for len(existing) >= srv.maxActiveSessions {
				if err := refreshRepo.DeleteRefreshToken(ctx, existing[0].ID); err != nil {
					return errors.Wrap(err, "failed to evict oldest session")
				}
				existing = existing[1:]
			}
		}

		return refreshRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}
