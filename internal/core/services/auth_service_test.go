package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/artfeed/backend/internal/apperrors"
	"github.com/artfeed/backend/internal/core/domain"
	portssvc "github.com/artfeed/backend/internal/core/ports/services"
	"github.com/artfeed/backend/internal/core/services"
	"github.com/artfeed/backend/internal/dto"
	"github.com/artfeed/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	tokenSvc     portssvc.TokenSvcFacade
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.tokenSvc = services.NewTokenService(tokenTestConfig())
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.tokenSvc)
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:          "Ada",
		LastName:           "Lovelace",
		Phone:              "9876543210",
		Email:              "ada@example.com",
		DOB:                "1990-12-10",
		Password:           "Secret1!",
		ArticlePreferences: []string{"technology", "science"},
	}
}

// --- Register ---

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := registerRequest()

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == req.Email &&
			user.UserID != "" &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Email, user.Email)
	suite.Equal(req.ArticlePreferences, user.Preferences)
	suite.NotEmpty(user.UserID)
	// Stored hash must verify against the plaintext but never equal it.
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.Empty(user.BlockedArticles)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := registerRequest()
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Login ---

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "Secret1!"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ada@example.com",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, user.Email).Return(user, nil).Once()

	result, err := suite.service.Login(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal(user.UserID, result.User.UserID)
	suite.NotEmpty(result.AccessToken)
	suite.NotEmpty(result.RefreshToken)
	suite.NotEqual(result.AccessToken, result.RefreshToken)

	// Both tokens verify with the right verifier and carry the user's identity.
	claims, err := suite.tokenSvc.VerifyAccessToken(result.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)
	suite.Equal(user.Email, claims.UserEmail)

	claims, err = suite.tokenSvc.VerifyRefreshToken(result.RefreshToken)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.UserID)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_ByPhone() {
	ctx := context.Background()
	password := "Secret1!"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ada@example.com",
		PhoneNumber:  "9876543210",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, user.PhoneNumber).Return(user, nil).Once()

	result, err := suite.service.Login(ctx, user.PhoneNumber, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, result.User.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownIdentifier() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, "nobody@example.com").Return(nil, nil).Once()

	result, err := suite.service.Login(ctx, "nobody@example.com", "Secret1!")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(result)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// An unknown identifier and a wrong password must be indistinguishable to
// the caller.
func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("Secret1!")
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ada@example.com",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByIdentifier", ctx, user.Email).Return(user, nil).Once()

	result, err := suite.service.Login(ctx, user.Email, "WrongPw1!")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(result)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh ---

func (suite *AuthServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	refreshToken, err := suite.tokenSvc.SignRefreshToken(userID, "ada@example.com")
	suite.Require().NoError(err)

	accessToken, err := suite.service.Refresh(ctx, refreshToken)

	suite.Require().NoError(err)
	suite.NotEmpty(accessToken)

	claims, err := suite.tokenSvc.VerifyAccessToken(accessToken)
	suite.Require().NoError(err)
	suite.Equal(userID, claims.UserID)
	suite.Equal("ada@example.com", claims.UserEmail)
}

func (suite *AuthServiceTestSuite) TestRefresh_InvalidToken() {
	ctx := context.Background()

	accessToken, err := suite.service.Refresh(ctx, "garbage")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(accessToken)
}

// An access token presented as a refresh token must be rejected.
func (suite *AuthServiceTestSuite) TestRefresh_AccessTokenRejected() {
	ctx := context.Background()

	accessToken, err := suite.tokenSvc.SignAccessToken(uuid.NewString(), "ada@example.com")
	suite.Require().NoError(err)

	_, err = suite.service.Refresh(ctx, accessToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRefresh_ExpiredToken() {
	ctx := context.Background()

	cfg := tokenTestConfig()
	cfg.RefreshTokenExpiryDuration = -time.Minute
	expiredSvc := services.NewTokenService(cfg)
	refreshToken, err := expiredSvc.SignRefreshToken(uuid.NewString(), "ada@example.com")
	suite.Require().NoError(err)

	_, err = suite.service.Refresh(ctx, refreshToken)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
