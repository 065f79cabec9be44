package jwt

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// UserIDClaim carries the chat user id the gateway acts for.
const UserIDClaim = "user_id"

type Service interface {
	// GenerateToken signs a gateway token for userID, valid for ttl
	GenerateToken(userID int64, ttl time.Duration) (string, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(userID int64, ttl time.Duration) (string, error) {
	claims := map[string]interface{}{
		UserIDClaim: strconv.FormatInt(userID, 10),
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, ttl)

	_, token, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return token, nil
}

// UserIDFromClaims reads the user id claim, accepting string or numeric values.
func UserIDFromClaims(claims map[string]interface{}) (int64, bool) {
	switch v := claims[UserIDClaim].(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil && id > 0
	case float64:
		if v != math.Trunc(v) || v <= 0 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, v > 0
	}
	return 0, false
}
