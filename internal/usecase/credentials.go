package usecase

import (
	"context"

	"webshopper/internal/domain/credential"
	"webshopper/internal/infra"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/clock"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotConnected            = errs.New("retailer account not connected")
	ErrRefreshRejected         = errs.New("token refresh rejected by retailer")
	ErrReauthorizationRequired = errs.New("retailer re-authorization required")
)

// CredentialRepo persists per-user token pairs. Save replaces the whole pair.
type CredentialRepo interface {
	Find(ctx context.Context, userID uuid.UUID) (credential.Pair, error)
	Save(ctx context.Context, userID uuid.UUID, pair credential.Pair) error
}

// TokenRefresher mints a replacement token pair from a refresh token.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (kroger.Tokens, error)
}

// CredentialService guards every retailer call: callers obtain a fresh access
// token through EnsureFresh and never read stored pairs directly.
type CredentialService interface {
	// EnsureFresh returns a pair whose access token is inside its freshness
	// window, refreshing and persisting first when needed. It fails with
	// ErrNotConnected when no pair was ever stored, ErrReauthorizationRequired
	// when the refresh token has also gone stale (no network call is made in
	// that case), and ErrRefreshRejected when the provider refuses the
	// refresh; the last is retryable without user action.
	EnsureFresh(ctx context.Context, userID uuid.UUID) (credential.Pair, error)

	// Store stamps freshly minted tokens with the current time and persists
	// them, replacing any previous pair.
	Store(ctx context.Context, userID uuid.UUID, tokens kroger.Tokens) (credential.Pair, error)
}

type credentialServiceImpl struct {
	repo      CredentialRepo
	refresher TokenRefresher
	clock     clock.Clock
	group     singleflight.Group
}

func NewCredentialService(repo CredentialRepo, refresher TokenRefresher, clk clock.Clock) CredentialService {
	return &credentialServiceImpl{
		repo:      repo,
		refresher: refresher,
		clock:     clk,
	}
}

func (s *credentialServiceImpl) EnsureFresh(ctx context.Context, userID uuid.UUID) (credential.Pair, error) {
	pair, err := s.repo.Find(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return credential.Pair{}, ErrNotConnected
		}
		return credential.Pair{}, err
	}

	switch pair.StateAt(s.clock.Now()) {
	case credential.StateMissing:
		return credential.Pair{}, ErrNotConnected
	case credential.StateValid:
		return pair, nil
	case credential.StateExpired:
		// Refresh token is also stale; refreshing would be refused, so no
		// network call is attempted.
		return credential.Pair{}, ErrReauthorizationRequired
	}

	// Access stale, refresh usable. Concurrent callers for the same user
	// share a single refresh; the store is last-writer-wins so either
	// outcome is a valid pair.
	v, err, _ := s.group.Do(userID.String(), func() (any, error) {
		return s.refresh(ctx, userID, pair)
	})
	if err != nil {
		return credential.Pair{}, err
	}
	return v.(credential.Pair), nil
}

func (s *credentialServiceImpl) refresh(ctx context.Context, userID uuid.UUID, stale credential.Pair) (credential.Pair, error) {
	tokens, err := s.refresher.Refresh(ctx, stale.RefreshToken)
	if err != nil {
		return credential.Pair{}, errs.Mark(err, ErrRefreshRejected)
	}

	// Persist before returning so a crash after this point can never leave a
	// caller holding tokens the store does not know about.
	fresh, err := s.Store(ctx, userID, tokens)
	if err != nil {
		return credential.Pair{}, err
	}
	return fresh, nil
}

func (s *credentialServiceImpl) Store(ctx context.Context, userID uuid.UUID, tokens kroger.Tokens) (credential.Pair, error) {
	now := s.clock.Now()
	pair := credential.Pair{
		AccessToken:     tokens.AccessToken,
		AccessIssuedAt:  now,
		RefreshToken:    tokens.RefreshToken,
		RefreshIssuedAt: now,
	}
	if err := s.repo.Save(ctx, userID, pair); err != nil {
		return credential.Pair{}, err
	}
	return pair, nil
}
