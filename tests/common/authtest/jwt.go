//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const TestSecret = "test-secret-key"

func NewTestJWTService() *jwt.Service {
	return jwt.NewService(TestSecret, time.Hour)
}

func TokenFor(t *testing.T, svc *jwt.Service, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func CustomerToken(t *testing.T, svc *jwt.Service, userID uuid.UUID) string {
	return TokenFor(t, svc, userID, user.RoleCustomer)
}

func AdminToken(t *testing.T, svc *jwt.Service, userID uuid.UUID) string {
	return TokenFor(t, svc, userID, user.RoleAdmin)
}
