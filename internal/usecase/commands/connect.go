package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStateMismatch  = errs.New("oauth state mismatch")
	ErrExchangeFailed = errs.New("authorization code exchange failed")
)

// ConnectCommands runs the retailer account linking flow: hand the user a
// consent URL, then trade the callback code for the first credential pair.
type ConnectCommands interface {
	BeginConnect(ctx context.Context, userID uuid.UUID) (string, error)
	CompleteConnect(ctx context.Context, userID uuid.UUID, req reqdto.ConnectCallbackRequest) error
}

type connectCommandsImpl struct {
	connector   RetailerConnector
	credentials CredentialPort
	states      StateStore
}

func NewConnectCommands(connector RetailerConnector, credentials CredentialPort, states StateStore) ConnectCommands {
	return &connectCommandsImpl{
		connector:   connector,
		credentials: credentials,
		states:      states,
	}
}

func (c *connectCommandsImpl) BeginConnect(ctx context.Context, userID uuid.UUID) (string, error) {
	state, err := newState()
	if err != nil {
		return "", err
	}
	if err := c.states.Put(ctx, userID, state); err != nil {
		return "", err
	}
	return c.connector.AuthURL(state), nil
}

func (c *connectCommandsImpl) CompleteConnect(ctx context.Context, userID uuid.UUID, req reqdto.ConnectCallbackRequest) error {
	stored, ok := c.states.Take(ctx, userID)
	if !ok || stored != req.State {
		return ErrStateMismatch
	}

	tokens, err := c.connector.ExchangeAuthCode(ctx, req.Code)
	if err != nil {
		return errs.Mark(err, ErrExchangeFailed)
	}

	if _, err := c.credentials.Store(ctx, userID, tokens); err != nil {
		return err
	}
	return nil
}

func newState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate oauth state")
	}
	return hex.EncodeToString(buf), nil
}
