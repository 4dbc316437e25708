//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"brrow-engine/internal/pkg/config"
	"brrow-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the Brrow backend does, signed with the
// shared secret from config.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, -time.Minute)
	require.NoError(t, err)
	return token
}
