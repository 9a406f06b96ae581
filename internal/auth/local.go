package auth

import (
	"context"
	"errors"

	"github.com/yourname/wellnessgrid/internal"
)

// LocalAuthProvider validates tokens against the user store directly.
// Development only; production validates signed tokens instead.
type LocalAuthProvider struct {
	users  UserLookup
	logger internal.Logger
}

type UserLookup interface {
	GetUserByToken(ctx context.Context, token string) (*internal.User, error)
}

func NewLocalAuthProvider(users UserLookup, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{users: users, logger: logger}
}

func (a *LocalAuthProvider) ValidateTokenLocal(token string) (*internal.User, error) {
	u, err := a.users.GetUserByToken(context.Background(), token)
	if err != nil {
		a.logger.Warnf("invalid token: %s", token)
		return nil, errors.New("invalid token")
	}
	return u, nil
}

func (a *LocalAuthProvider) ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("ValidateTokenRemote not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}
