package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/internal/users"
	pkgauth "github.com/stylelane/stylelane-backend/pkg/auth"
	"github.com/stylelane/stylelane-backend/pkg/config"
	"github.com/stylelane/stylelane-backend/pkg/dynamo"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/security"
)

type userRepository interface {
	FindByUsername(ctx context.Context, username string) (*users.User, error)
}

// Service authenticates credentials and issues access tokens.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

type service struct {
	users   userRepository
	session config.SessionConfig
	now     func() time.Time
}

// NewService builds an auth service over the user repository.
func NewService(userRepo userRepository, session config.SessionConfig) (Service, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	if session.Secret == "" {
		return nil, fmt.Errorf("session secret required")
	}
	return &service{users: userRepo, session: session, now: time.Now}, nil
}

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult bundles the signed token with its expiry and the account.
type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *users.UserDTO `json:"user"`
}

// Login verifies the credentials and mints a JWT. Unknown usernames and
// wrong passwords produce the same error so the response does not leak
// which accounts exist.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if dynamo.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up user")
	}

	match, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !match {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse user id")
	}
	payload := pkgauth.AccessTokenPayload{
		UserID: userID,
		Role:   enums.Role(user.Role),
	}
	if user.StoreID != "" {
		storeID, parseErr := uuid.Parse(user.StoreID)
		if parseErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, parseErr, "parse store id")
		}
		payload.StoreID = &storeID
	}

	now := s.now().UTC()
	token, err := pkgauth.MintAccessToken(s.session, now, payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.session.TTL()),
		User:      users.FromModel(user),
	}, nil
}
