package usecase

import (
	"context"
	"errors"
	"strings"

	"gyeonjeok/internal/usecase/interfaces"
)

var ErrMissingSignupField = errors.New("missing signup field")

// ISignupUseCase creates accounts through the external identity provider.
// Email confirmation is handled by the provider call itself (auto-confirm);
// there is no verification flow on this side.

type ISignupUseCase interface {
	Signup(ctx context.Context, email, password, name string) (interfaces.Identity, error)
}

type SignupUseCase struct {
	idp interfaces.IIdentityProvider
}

var _ ISignupUseCase = (*SignupUseCase)(nil)

func NewSignupUseCase(idp interfaces.IIdentityProvider) *SignupUseCase {
	return &SignupUseCase{idp: idp}
}

func (u *SignupUseCase) Signup(ctx context.Context, email, password, name string) (interfaces.Identity, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return interfaces.Identity{}, ErrMissingSignupField
	}
	return u.idp.CreateUser(ctx, email, password, name)
}
