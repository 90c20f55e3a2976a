package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/resume-system/backend/internal/db"
	"github.com/resume-system/backend/internal/model"
)

// Every store call gets its own deadline so a stalled database surfaces as
// ErrStoreUnavailable instead of hanging the request.
const storeTimeout = 5 * time.Second

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string, name *string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
}

// AuthService orchestrates registration, login, and profile lookup. It holds no
// state of its own; uniqueness under concurrent registration is enforced by the
// store's unique constraint on email, not by locks here.
type AuthService struct {
	store  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewAuthService(store UserStore, hasher *PasswordHasher, tokens *TokenService) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*model.UserResponse, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	_, err := s.store.GetUserByEmail(lookupCtx, email)
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !db.IsNoRows(err) {
		return nil, "", storeError(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	createCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	user, err := s.store.CreateUser(createCtx, email, hash, name)
	if err != nil {
		// The unique constraint backstops the pre-check under concurrent registration.
		if isUniqueViolation(err) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", storeError(err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user.Response(), token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*model.UserResponse, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	user, err := s.store.GetUserByEmail(lookupCtx, email)
	if err != nil {
		// Same error for unknown email as for a wrong password below.
		if db.IsNoRows(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", storeError(err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user.Response(), token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*model.UserResponse, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	user, err := s.store.GetUserByID(lookupCtx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return user.Response(), nil
}

func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
