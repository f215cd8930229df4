// Package services contains the application services of the server: account
// management and owner-scoped task/project operations. Services are the only
// layer that translates repository and crypto failures into the shared error
// taxonomy; handlers never see raw storage errors.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/auth"
	"github.com/mkalvins/taskboard/internal/server/config"
	"github.com/mkalvins/taskboard/internal/server/models"
	"github.com/mkalvins/taskboard/internal/server/repositories/refreshtokens"
	"github.com/mkalvins/taskboard/internal/server/repositories/users"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	repo                         users.Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	dummyHash                    []byte
}

func NewUserService(repo users.Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *UserService {
	// Hashed once so that login against an unknown username still pays one
	// bcrypt comparison, keeping the timing indistinguishable from a wrong
	// password.
	dummyHash, _ := auth.HashPassword([]byte("taskboard-dummy-password"))

	return &UserService{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		dummyHash:                    dummyHash,
	}
}

// Register creates a new account and returns the user together with a fresh
// token pair. Empty fields fail with common.ErrorValidation; an existing
// username with common.ErrorAlreadyExists. The uniqueness check here is
// advisory only: the store's unique index is what guarantees that two
// concurrent registrations cannot both insert.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, *TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, common.ErrorValidation
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %w", common.ErrorInternal)
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, pair, nil
}

// Login verifies the credentials and returns the user with a fresh token
// pair. An unknown username and a wrong password both fail with the same
// common.ErrorUnauthorized so the response carries no enumeration signal.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, *TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, common.ErrorValidation
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a comparison anyway, see dummyHash
			auth.CheckPassword(s.dummyHash, []byte(password))
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password)) {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, pair, nil
}

// Refresh rotates the token pair: the presented refresh token is revoked and
// a new pair is issued for its user. An unknown token fails with
// common.ErrInvalidToken, an expired one with common.ErrRefreshTokenExpired.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.refreshTokenRepo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.getUserByID(ctx, token.UserID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, common.ErrorInternal
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return pair, nil
}

// Logout revokes the refresh token. Revoking an unknown token is a no-op.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}

func (s *UserService) getUserByID(ctx context.Context, userID string) (*models.User, error) {
	// Refresh tokens store only the user id; the username needed for the
	// claims is looked up so the account record stays the single source.
	return s.repo.GetByID(ctx, userID)
}

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokenRepo.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
