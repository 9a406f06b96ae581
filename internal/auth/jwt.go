package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yourname/wellnessgrid/internal"
)

// Claims carried in the bearer tokens issued by the identity service.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// JWTAuthProvider validates HS256-signed bearer tokens offline. Used outside
// development, where tokens come from the hosted identity service.
type JWTAuthProvider struct {
	secret []byte
	logger internal.Logger
}

func NewJWTAuthProvider(secret string, logger internal.Logger) *JWTAuthProvider {
	return &JWTAuthProvider{secret: []byte(secret), logger: logger}
}

func (a *JWTAuthProvider) ValidateTokenLocal(token string) (*internal.User, error) {
	return nil, errors.New("not implemented in JWTAuthProvider")
}

func (a *JWTAuthProvider) ValidateTokenRemote(ctx context.Context, tokenString string) (*internal.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		a.logger.Warnf("token validation failed: %v", err)
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}
	return &internal.User{ID: claims.Subject, Token: tokenString, Name: claims.Name}, nil
}
