// Package services contains the server-side business logic. This file
// implements UserService: registration, login, and resolving bearer
// credentials back to accounts.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planitapp/planit/internal/common"
	"github.com/planitapp/planit/internal/server/auth"
	"github.com/planitapp/planit/internal/server/config"
	"github.com/planitapp/planit/internal/server/models"
	"github.com/planitapp/planit/internal/server/repositories/repomanager"
)

// bearerPrefix is the authorization header scheme every authenticated request
// must carry.
const bearerPrefix = "Bearer "

// UserService provides authentication-related operations:
// - Register: create accounts and mint a first session token
// - Login: verify credentials and mint tokens
// - Authenticate: resolve a bearer header to the account it belongs to
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	secretKey             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		secretKey:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account for the given credentials and returns it with a
// fresh session token. The email is lowercased before the uniqueness check,
// so addresses differing only in case collide.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", common.ErrorEmailPasswordRequired
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, "", common.ErrorEmailExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	salt, digest := auth.HashPassword(password)

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         optionalName(name),
		PasswordSalt: salt,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.Create(ctx, user); err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the unique index is the authority.
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, "", common.ErrorEmailExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the credentials and, on success, returns the account and a
// new session token. Unknown emails and wrong passwords produce the same
// error value.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", common.ErrorEmailPasswordRequired
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Authenticate resolves an Authorization header value to an account.
//
// Failure modes stay distinct for the HTTP layer to map:
// common.ErrorMissingAuthHeader when the scheme prefix is absent,
// common.ErrInvalidToken for any codec failure, and
// common.ErrorAccountNotFound when the token's account no longer exists.
// The token is never refreshed or extended here.
func (s *UserService) Authenticate(ctx context.Context, headerValue string) (*models.User, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return nil, common.ErrorMissingAuthHeader
	}

	claims, err := auth.ParseToken(strings.TrimPrefix(headerValue, bearerPrefix), s.secretKey)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorAccountNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *UserService) issueToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.ID, user.Email, s.secretKey, s.tokenValidityDuration)
}

func optionalName(name string) *string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &name
}
