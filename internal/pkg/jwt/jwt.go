package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(workerID string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(workerID string) (token string, expiresAt int64, err error)
	// ValidateRefreshToken verifies a refresh token and returns the worker ID
	ValidateRefreshToken(ctx context.Context, tokenString string) (workerID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(workerID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"worker_id": workerID,
		"role":      string(role),
		"type":      "access",
		"exp":       expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(workerID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"worker_id": workerID,
		"type":      "refresh",
		"exp":       expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return "", err
	}

	tokenType, _ := claims["type"].(string)
	workerID, _ := claims["worker_id"].(string)
	if tokenType != "refresh" || workerID == "" {
		return "", jwtauth.ErrUnauthorized
	}

	return workerID, nil
}
