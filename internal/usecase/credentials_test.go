//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"webshopper/internal/domain/credential"
	"webshopper/internal/infra"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/clock"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase"
	usecasemock "webshopper/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CredentialServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *usecasemock.MockCredentialRepo
	refresher *usecasemock.MockTokenRefresher
	clk       *clock.MockClock
	service   usecase.CredentialService
	userID    uuid.UUID
}

func (s *CredentialServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockCredentialRepo(s.ctrl)
	s.refresher = usecasemock.NewMockTokenRefresher(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = usecase.NewCredentialService(s.repo, s.refresher, s.clk)
	s.userID = uuid.New()
}

func (s *CredentialServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCredentialServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialServiceTestSuite))
}

// pairIssuedAgo builds a stored pair whose tokens were stamped the given
// durations before the mock clock's current time.
func (s *CredentialServiceTestSuite) pairIssuedAgo(accessAge, refreshAge time.Duration) credential.Pair {
	now := s.clk.Now()
	return credential.Pair{
		AccessToken:     "access-old",
		AccessIssuedAt:  now.Add(-accessAge),
		RefreshToken:    "refresh-old",
		RefreshIssuedAt: now.Add(-refreshAge),
	}
}

func (s *CredentialServiceTestSuite) TestEnsureFreshReturnsStoredPairWithoutNetwork() {
	// One second inside the freshness window; the refresher must not be hit.
	pair := s.pairIssuedAgo(credential.AccessTTL-time.Second, time.Hour)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)

	got, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal(pair, got)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshRefreshesExactlyAtBoundary() {
	// A token exactly AccessTTL old is already stale.
	pair := s.pairIssuedAgo(credential.AccessTTL, time.Hour)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)
	s.refresher.EXPECT().Refresh(gomock.Any(), "refresh-old").
		Return(kroger.Tokens{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil).
		Times(1)
	s.repo.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, saved credential.Pair) error {
			s.Equal("access-new", saved.AccessToken)
			s.Equal("refresh-new", saved.RefreshToken)
			s.Equal(s.clk.Now(), saved.AccessIssuedAt)
			s.Equal(s.clk.Now(), saved.RefreshIssuedAt)
			return nil
		})

	got, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal("access-new", got.AccessToken)
	s.Equal("refresh-new", got.RefreshToken)
	s.Equal(s.clk.Now(), got.AccessIssuedAt)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshRefreshesStaleAccess() {
	pair := s.pairIssuedAgo(credential.AccessTTL+time.Second, 24*time.Hour)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)
	s.refresher.EXPECT().Refresh(gomock.Any(), "refresh-old").
		Return(kroger.Tokens{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil).
		Times(1)
	s.repo.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil)

	got, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Equal("access-new", got.AccessToken)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshExpiredPairSkipsNetwork() {
	// Both windows blown: the refresher must never be called.
	pair := s.pairIssuedAgo(credential.RefreshTTL+time.Hour, credential.RefreshTTL)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)

	_, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().ErrorIs(err, usecase.ErrReauthorizationRequired)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshNoStoredPair() {
	s.repo.EXPECT().Find(gomock.Any(), s.userID).
		Return(credential.Pair{}, infra.WrapRepoErr("credentials not found", nil, infra.KindNotFound))

	_, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().ErrorIs(err, usecase.ErrNotConnected)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshZeroPairTreatedAsMissing() {
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(credential.Pair{}, nil)

	_, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().ErrorIs(err, usecase.ErrNotConnected)
}

func (s *CredentialServiceTestSuite) TestEnsureFreshProviderRejectsRefresh() {
	pair := s.pairIssuedAgo(credential.AccessTTL+time.Minute, time.Hour)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)
	s.refresher.EXPECT().Refresh(gomock.Any(), "refresh-old").
		Return(kroger.Tokens{}, errs.New("invalid_grant"))

	_, err := s.service.EnsureFresh(context.Background(), s.userID)

	// The refresher's cause is preserved under the mark, so both the sentinel
	// and the raw provider error must be visible.
	s.Require().True(errs.Is(err, usecase.ErrRefreshRejected))
}

func (s *CredentialServiceTestSuite) TestEnsureFreshDoesNotReturnUnpersistedTokens() {
	pair := s.pairIssuedAgo(credential.AccessTTL+time.Minute, time.Hour)
	s.repo.EXPECT().Find(gomock.Any(), s.userID).Return(pair, nil)
	s.refresher.EXPECT().Refresh(gomock.Any(), "refresh-old").
		Return(kroger.Tokens{AccessToken: "access-new", RefreshToken: "refresh-new"}, nil)
	s.repo.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).
		Return(infra.WrapRepoErr("save credentials", errs.New("connection reset")))

	got, err := s.service.EnsureFresh(context.Background(), s.userID)

	s.Require().Error(err)
	s.True(got.IsZero(), "a pair the store never accepted must not leak to the caller")
}

func (s *CredentialServiceTestSuite) TestStoreStampsBothTimestamps() {
	tokens := kroger.Tokens{AccessToken: "access-fresh", RefreshToken: "refresh-fresh"}
	s.repo.EXPECT().Save(gomock.Any(), s.userID, gomock.Any()).Return(nil)

	got, err := s.service.Store(context.Background(), s.userID, tokens)

	s.Require().NoError(err)
	s.Equal(s.clk.Now(), got.AccessIssuedAt)
	s.Equal(s.clk.Now(), got.RefreshIssuedAt)
	s.Equal("access-fresh", got.AccessToken)
	s.Equal("refresh-fresh", got.RefreshToken)
}
