package usecase

import (
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
)

var ErrInvalidToken = errs.New("invalid token")

// TokenValidator turns a bearer token into the caller's principal. Token
// issuance belongs to the external identity provider; only validation
// against the shared verification key lives here.
type TokenValidator interface {
	ValidateToken(token string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (user.Principal, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return user.Principal{}, errs.Mark(err, ErrInvalidToken)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, errs.Mark(err, ErrInvalidToken)
	}

	return user.Principal{ID: claims.UserID, Role: role}, nil
}
