package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, exp, err := Generate("secret", "admin", []string{"admin", "user"}, "despensa-api", 60)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := Parse("secret", "despensa-api", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, []string{"admin", "user"}, claims.Roles)
}

func TestParse_Rechazos(t *testing.T) {
	token, _, err := Generate("secret", "user", []string{"user"}, "despensa-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro", "despensa-api", token)
	assert.Error(t, err, "firma incorrecta")

	_, err = Parse("secret", "otro-emisor", token)
	assert.Error(t, err, "emisor distinto")

	expired, _, err := Generate("secret", "user", []string{"user"}, "despensa-api", -1)
	require.NoError(t, err)
	_, err = Parse("secret", "despensa-api", expired)
	assert.Error(t, err, "token expirado")
}

func TestSecretVacio(t *testing.T) {
	_, _, err := Generate("", "admin", nil, "x", 1)
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = Parse("", "x", "abc")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
