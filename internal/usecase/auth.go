package usecase

import (
	"folio-api/internal/pkg/config"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/jwt"
	"folio-api/internal/pkg/password"
)

const RoleAdmin = "admin"

// AuthUseCase authenticates the single admin principal. There are no
// guest accounts; everyone else uses the site anonymously.
type AuthUseCase interface {
	Login(username, plainPassword string) (token string, err error)
	ValidateToken(token string) (username, role string, err error)
}

type authUseCaseImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(admin config.AdminConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(username, plainPassword string) (string, error) {
	if username != a.admin.Username {
		return "", errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.admin.PasswordHash, plainPassword); err != nil {
		return "", errs.ErrInvalidCredentials
	}
	token, err := a.jwtService.GenerateToken(username, RoleAdmin)
	if err != nil {
		return "", errs.Wrap(err, "failed to generate token")
	}
	return token, nil
}

func (a *authUseCaseImpl) ValidateToken(token string) (string, string, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.Username, claims.Role, nil
}
