package usecase

import (
	"context"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

// tokenUseCase implements TokenUseCase for issuing and verifying bearer tokens.
type tokenUseCase struct {
	authenticator Authenticator
	tokenService  iamService.TokenService
}

// Login authenticates the credentials and issues a fresh signed token.
//
// Every successful login produces a new token; tokens issued earlier stay
// valid until their own expiry. Any failed credential check collapses into
// ErrInvalidCredentials so the response cannot be used to probe for known
// usernames. A directory outage is the one distinguishable failure.
func (t *tokenUseCase) Login(
	ctx context.Context,
	input *iamDomain.LoginInput,
) (*iamDomain.LoginOutput, error) {
	entries, err := t.authenticator.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if !entries.IsAuth {
		return nil, iamDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := t.tokenService.Issue(input.Username, entries.Accesses)
	if err != nil {
		return nil, err
	}

	return &iamDomain.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify checks the token signature and expiry and returns its claims.
func (t *tokenUseCase) Verify(ctx context.Context, token string) (*iamService.Claims, error) {
	return t.tokenService.Verify(token)
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(
	authenticator Authenticator,
	tokenService iamService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		authenticator: authenticator,
		tokenService:  tokenService,
	}
}
