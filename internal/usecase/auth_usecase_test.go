package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	mock_interfaces "github.com/giancarlo349/G-OS3/internal/usecase/interfaces/mocks"
)

func newAuthFixture(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIAccountRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	return NewAuthUseCase(accounts, []byte("test-secret"), time.Hour), accounts
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newAuthFixture(t)
		_, err := uc.Register(context.Background(), "not-an-email", "secret1")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("short password", func(t *testing.T) {
		uc, _ := newAuthFixture(t)
		_, err := uc.Register(context.Background(), "vendas@loja.com", "12345")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("email already taken", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{UID: "existing"}, nil)

		_, err := uc.Register(context.Background(), "vendas@loja.com", "secret1")
		assert.ErrorIs(t, err, ErrEmailAlreadyTaken)
	})

	t.Run("success issues a verifiable token", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{}, nil)
		accounts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Account{})).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				require.NotEmpty(t, a.UID)
				require.Equal(t, "vendas@loja.com", a.Email)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret1")))
				require.False(t, a.CreatedAt.IsZero())
				return a, nil
			},
		)

		session, err := uc.Register(context.Background(), "  Vendas@Loja.com  ", "secret1")
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		assert.True(t, session.ExpiresAt.After(time.Now()))

		user, err := uc.ParseToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.User.UID, user.UID)
		assert.Equal(t, "vendas@loja.com", user.Email)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := entities.Account{UID: "user-1", Email: "vendas@loja.com", PasswordHash: string(hash)}

	t.Run("unknown email", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{}, nil)

		_, err := uc.Login(context.Background(), "vendas@loja.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(stored, nil)

		_, err := uc.Login(context.Background(), "vendas@loja.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repo error", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{}, errors.New("db"))

		_, err := uc.Login(context.Background(), "vendas@loja.com", "secret1")
		assert.EqualError(t, err, "db")
	})

	t.Run("success", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(stored, nil)

		session, err := uc.Login(context.Background(), " Vendas@Loja.com ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", session.User.UID)

		user, err := uc.ParseToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UID)
	})
}

func TestAuthUseCase_ParseToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		uc, _ := newAuthFixture(t)
		_, err := uc.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{}, nil)
		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		)
		session, err := uc.Register(context.Background(), "vendas@loja.com", "secret1")
		require.NoError(t, err)

		other := NewAuthUseCase(nil, []byte("another-secret"), time.Hour)
		_, err = other.ParseToken(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
		uc := NewAuthUseCase(accounts, []byte("test-secret"), time.Millisecond)

		accounts.EXPECT().GetByEmail(gomock.Any(), "vendas@loja.com").Return(entities.Account{}, nil)
		accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		)
		session, err := uc.Register(context.Background(), "vendas@loja.com", "secret1")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = uc.ParseToken(session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthUseCase_Refresh(t *testing.T) {
	t.Run("account gone", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByUID(gomock.Any(), "user-1").Return(entities.Account{}, nil)

		_, err := uc.Refresh(context.Background(), "user-1")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("repo error", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByUID(gomock.Any(), "user-1").Return(entities.Account{}, errors.New("db"))

		_, err := uc.Refresh(context.Background(), "user-1")
		assert.EqualError(t, err, "db")
	})

	t.Run("success issues a fresh verifiable token", func(t *testing.T) {
		uc, accounts := newAuthFixture(t)
		accounts.EXPECT().GetByUID(gomock.Any(), "user-1").Return(entities.Account{UID: "user-1", Email: "vendas@loja.com"}, nil)

		session, err := uc.Refresh(context.Background(), "user-1")
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		assert.True(t, session.ExpiresAt.After(time.Now()))

		user, err := uc.ParseToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UID)
		assert.Equal(t, "vendas@loja.com", user.Email)
	})
}
