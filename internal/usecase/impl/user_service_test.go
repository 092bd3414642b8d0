package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/repository"
	domainservice "github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	mockSvc "github.com/sankalpsthakur/astronova-sub007/internal/mocks/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	appleVerifier    *mockSvc.MockIdentityVerifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	appleVerifier := mockSvc.NewMockIdentityVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		AppleVerifier:    appleVerifier,
		Config:           &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 5}},
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		appleVerifier:    appleVerifier,
	}
}

// expectSessionIssued wires the FindByID, token generation and session
// persistence calls shared by every login path.
func expectSessionIssued(t *testing.T, fx userServiceFixtures, ctx context.Context, user *entity.User, existing []*entity.RefreshToken) {
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokensByUserID(ctx, user.ID).
				Return(existing, nil)

			for _, stale := range existing {
				mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, stale.ID).Return(nil)
			}

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "refresh-token-hash", token.TokenHash)
					assert.Equal(t, user.ID, token.UserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Sankalp Thakur",
		Email:    "sankalp@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
					assert.Equal(t, input.Email, auth.ProviderUserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
}

func TestUserService_RegisterUser_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Sankalp Thakur",
		Email:    "sankalp@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Sankalp Thakur",
		Email:    "sankalp@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(assert.AnError)

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "sankalp@example.com"}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{
			UserID:       userID,
			Provider:     entity.ProviderTypeEmail,
			PasswordHash: "hashed_password",
		}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)

	expectSessionIssued(t, fx, ctx, user, nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_EvictsOldestSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "sankalp@example.com"}
	input := &usecase.LoginInput{Email: user.Email, Password: "Password123!"}

	// Five active sessions already: the configured cap. The oldest must go.
	existing := make([]*entity.RefreshToken, 5)
	for i := range existing {
		existing[i] = &entity.RefreshToken{ID: uuid.New(), UserID: userID}
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{
			UserID:       userID,
			Provider:     entity.ProviderTypeEmail,
			PasswordHash: "hashed_password",
		}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().
				FindRefreshTokensByUserID(ctx, userID).
				Return(existing, nil)

			// Only the single oldest session is evicted to make room.
			mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, existing[0].ID).Return(nil)

			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "sankalp@example.com", Password: "wrong"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{
			UserID:       uuid.New(),
			Provider:     entity.ProviderTypeEmail,
			PasswordHash: "hashed_password",
		}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Password123!"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_AppleSignIn_FirstSignInCreatesUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AppleSignInInput{IdentityToken: "apple-identity-token", FullName: "Sankalp Thakur"}

	fx.appleVerifier.EXPECT().
		VerifyIdentityToken(ctx, input.IdentityToken).
		Return(&domainservice.ExternalIdentity{
			Subject:  "apple-subject-001",
			Email:    "relay@privaterelay.appleid.com",
			Provider: entity.ProviderTypeApple,
		}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeApple, "apple-subject-001").
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "relay@privaterelay.appleid.com").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "Sankalp Thakur", user.Name)
					user.ID = userID
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeApple, auth.Provider)
					assert.Equal(t, "apple-subject-001", auth.ProviderUserID)
					assert.Equal(t, userID, auth.UserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	user := &entity.User{ID: userID, Email: "relay@privaterelay.appleid.com"}
	expectSessionIssued(t, fx, ctx, user, nil)

	output, err := fx.service.AppleSignIn(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_AppleSignIn_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.AppleSignInInput{IdentityToken: "garbage"}

	fx.appleVerifier.EXPECT().
		VerifyIdentityToken(ctx, input.IdentityToken).
		Return(nil, assert.AnError)

	output, err := fx.service.AppleSignIn(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAppleTokenInvalid)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "sankalp@example.com"}
	storedID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "old-refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&domainservice.Claims{UserID: userID, Type: "refresh", RegisteredClaims: jwt.RegisteredClaims{}}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh-token").Return("old-hash")

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{
			ID:        storedID,
			UserID:    userID,
			TokenHash: "old-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(30 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, storedID).Return(nil)
			mockRefreshRepo.EXPECT().
				CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new-hash", token.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_Refresh_UnknownSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "revoked-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("revoked-token").Return("revoked-hash")

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "revoked-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshInput{RefreshToken: "stale-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken(input.RefreshToken).
		Return(&domainservice.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("stale-token").Return("stale-hash")

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "stale-hash").
		Return(&entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)

	output, err := fx.service.Refresh(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&domainservice.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-token-hash").Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")

	require.NoError(t, err)
}

func TestUserService_Logout_ToleratesUnknownSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("gone-token").
		Return(&domainservice.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("gone-token").Return("gone-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "gone-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "gone-token")

	require.NoError(t, err)
}
