//go:build unit

package commands_test

import (
	"context"
	"testing"

	"webshopper/internal/domain/credential"
	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase/commands"
	commandsmock "webshopper/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConnectCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	connector   *commandsmock.MockRetailerConnector
	credentials *commandsmock.MockCredentialPort
	states      *commandsmock.MockStateStore
	cmds        commands.ConnectCommands
	userID      uuid.UUID
}

func (s *ConnectCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.connector = commandsmock.NewMockRetailerConnector(s.ctrl)
	s.credentials = commandsmock.NewMockCredentialPort(s.ctrl)
	s.states = commandsmock.NewMockStateStore(s.ctrl)
	s.cmds = commands.NewConnectCommands(s.connector, s.credentials, s.states)
	s.userID = uuid.New()
}

func (s *ConnectCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConnectCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectCommandsTestSuite))
}

func (s *ConnectCommandsTestSuite) TestBeginConnectStoresStateBeforeBuildingURL() {
	var storedState string
	s.states.EXPECT().Put(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, state string) error {
			s.Len(state, 32, "state should be 16 random bytes hex-encoded")
			storedState = state
			return nil
		})
	s.connector.EXPECT().AuthURL(gomock.Any()).
		DoAndReturn(func(state string) string {
			s.Equal(storedState, state, "consent URL must carry the stored state")
			return "https://retailer.example/authorize?state=" + state
		})

	authURL, err := s.cmds.BeginConnect(context.Background(), s.userID)

	s.Require().NoError(err)
	s.Contains(authURL, storedState)
}

func (s *ConnectCommandsTestSuite) TestCompleteConnectStoresTokens() {
	s.states.EXPECT().Take(gomock.Any(), s.userID).Return("state-abc", true)
	s.connector.EXPECT().ExchangeAuthCode(gomock.Any(), "auth-code").
		Return(kroger.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil)
	s.credentials.EXPECT().Store(gomock.Any(), s.userID, kroger.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}).
		Return(credential.Pair{AccessToken: "access-1"}, nil)

	err := s.cmds.CompleteConnect(context.Background(), s.userID, reqdto.ConnectCallbackRequest{
		Code:  "auth-code",
		State: "state-abc",
	})

	s.Require().NoError(err)
}

func (s *ConnectCommandsTestSuite) TestCompleteConnectMismatchedState() {
	// The stored state is consumed either way; a second attempt with the
	// right value must not succeed.
	s.states.EXPECT().Take(gomock.Any(), s.userID).Return("state-abc", true)

	err := s.cmds.CompleteConnect(context.Background(), s.userID, reqdto.ConnectCallbackRequest{
		Code:  "auth-code",
		State: "state-forged",
	})

	s.Require().ErrorIs(err, commands.ErrStateMismatch)
}

func (s *ConnectCommandsTestSuite) TestCompleteConnectMissingState() {
	s.states.EXPECT().Take(gomock.Any(), s.userID).Return("", false)

	err := s.cmds.CompleteConnect(context.Background(), s.userID, reqdto.ConnectCallbackRequest{
		Code:  "auth-code",
		State: "state-abc",
	})

	s.Require().ErrorIs(err, commands.ErrStateMismatch)
}

func (s *ConnectCommandsTestSuite) TestCompleteConnectExchangeFailure() {
	s.states.EXPECT().Take(gomock.Any(), s.userID).Return("state-abc", true)
	s.connector.EXPECT().ExchangeAuthCode(gomock.Any(), "bad-code").
		Return(kroger.Tokens{}, errs.New("invalid_grant"))

	err := s.cmds.CompleteConnect(context.Background(), s.userID, reqdto.ConnectCallbackRequest{
		Code:  "bad-code",
		State: "state-abc",
	})

	s.Require().True(errs.Is(err, commands.ErrExchangeFailed))
}
