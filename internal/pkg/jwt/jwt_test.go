package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt")

	token, err := svc.GenerateToken(1187398378, time.Hour)
	require.NoError(t, err)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)

	id, ok := UserIDFromClaims(claims)
	assert.True(t, ok)
	assert.Equal(t, int64(1187398378), id)
}

func TestGenerateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateToken(1, time.Hour)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewJWTService("two").JWTAuth(), token)
	assert.Error(t, err)
}

func TestUserIDFromClaims(t *testing.T) {
	cases := []struct {
		claims map[string]interface{}
		want   int64
		ok     bool
	}{
		{map[string]interface{}{"user_id": "42"}, 42, true},
		{map[string]interface{}{"user_id": float64(42)}, 42, true},
		{map[string]interface{}{"user_id": float64(1.5)}, 0, false},
		{map[string]interface{}{"user_id": float64(-7)}, 0, false},
		{map[string]interface{}{"user_id": float64(1e19)}, 0, false},
		{map[string]interface{}{"user_id": "abc"}, 0, false},
		{map[string]interface{}{"user_id": "-3"}, -3, false},
		{map[string]interface{}{}, 0, false},
	}
	for _, c := range cases {
		got, ok := UserIDFromClaims(c.claims)
		assert.Equal(t, c.ok, ok)
		if c.ok {
			assert.Equal(t, c.want, got)
		}
	}
}
