//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/jwt"
	"folio-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase() usecase.AuthUseCase {
	cfg := config.NewTestConfig()
	return usecase.NewAuthUseCase(cfg.Admin, jwt.NewService(cfg.JWT.Secret, time.Hour))
}

func TestLogin(t *testing.T) {
	uc := newAuthUseCase()

	t.Run("valid credentials issue an admin token", func(t *testing.T) {
		token, err := uc.Login("admin", "password")
		require.NoError(t, err)

		username, role, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
		assert.Equal(t, usecase.RoleAdmin, role)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := uc.Login("admin", "nope")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		_, err := uc.Login("root", "password")
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("garbage token fails validation", func(t *testing.T) {
		_, _, err := uc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
