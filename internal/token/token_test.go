package token

import (
	"testing"

	"github.com/quizdeck/quizdeck/config"
	"github.com/quizdeck/quizdeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "secret", ExpiryHours: 1}}
	user := &model.User{ID: 42, Role: model.RoleProfessor}

	signed, err := Generate(cfg, user)
	require.NoError(t, err)

	claims, err := Parse(cfg, signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleProfessor, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "secret", ExpiryHours: 1}}
	signed, err := Generate(cfg, &model.User{ID: 1, Role: model.RoleStudent})
	require.NoError(t, err)

	other := &config.Config{JWT: config.JWT{Secret: "different", ExpiryHours: 1}}
	_, err = Parse(other, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "secret", ExpiryHours: -1}}
	signed, err := Generate(cfg, &model.User{ID: 1, Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = Parse(cfg, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	cfg := &config.Config{JWT: config.JWT{Secret: "secret", ExpiryHours: 1}}
	_, err := Parse(cfg, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
