package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const minPasswordLen = 6

// Session is an issued access token plus the operator it identifies.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IAuthUseCase is the identity module: register and sign in with
// credentials, and resolve the current operator from a bearer token.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Refresh(ctx context.Context, uid string) (Session, error)
	ParseToken(token string) (entities.User, error)
}

type AuthUseCase struct {
	accounts interfaces.IAccountRepository
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(accounts interfaces.IAccountRepository, secret []byte, tokenTTL time.Duration) *AuthUseCase {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthUseCase{accounts: accounts, secret: secret, tokenTTL: tokenTTL}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return Session{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return Session{}, ErrInvalidPassword
	}

	existing, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if existing.UID != "" {
		return Session{}, ErrEmailAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, err
	}
	account := entities.Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := u.accounts.Create(ctx, account); err != nil {
		return Session{}, err
	}
	return u.issue(entities.User{UID: account.UID, Email: account.Email})
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return Session{}, ErrInvalidCredentials
	}
	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if account.UID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	return u.issue(entities.User{UID: account.UID, Email: account.Email})
}

// Refresh re-issues a session for an operator holding a still-valid token.
// The account must still exist in the store; a deleted account cannot renew.
func (u *AuthUseCase) Refresh(ctx context.Context, uid string) (Session, error) {
	account, err := u.accounts.GetByUID(ctx, uid)
	if err != nil {
		return Session{}, err
	}
	if account.UID == "" {
		return Session{}, ErrInvalidToken
	}
	return u.issue(entities.User{UID: account.UID, Email: account.Email})
}

// ParseToken validates the bearer token and returns the operator it was
// issued to. Everything wrong with the token maps to ErrInvalidToken.
func (u *AuthUseCase) ParseToken(token string) (entities.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.User{}, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return entities.User{}, ErrInvalidToken
	}
	return entities.User{UID: claims.Subject, Email: claims.Email}, nil
}

func (u *AuthUseCase) issue(user entities.User) (Session, error) {
	expiresAt := time.Now().Add(u.tokenTTL)
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
