package cache

import (
	"context"
	"time"

	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// stateTTL bounds how long a consent redirect may stay pending.
const stateTTL = 10 * time.Minute

// StateStore keeps pending OAuth state values in Redis, one per user.
type StateStore struct {
	client *redis.Client
}

func NewStateStore(client *redis.Client) *StateStore {
	return &StateStore{client: client}
}

func stateKey(userID uuid.UUID) string {
	return "oauth:state:" + userID.String()
}

func (s *StateStore) Put(ctx context.Context, userID uuid.UUID, state string) error {
	if err := s.client.Set(ctx, stateKey(userID), state, stateTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to store oauth state")
	}
	return nil
}

// Take returns the pending state and deletes it, so each state value can be
// redeemed at most once.
func (s *StateStore) Take(ctx context.Context, userID uuid.UUID) (string, bool) {
	state, err := s.client.GetDel(ctx, stateKey(userID)).Result()
	if err != nil {
		return "", false
	}
	return state, true
}
