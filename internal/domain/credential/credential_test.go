//go:build unit

package credential_test

import (
	"testing"
	"time"

	"webshopper/internal/domain/credential"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func pairIssuedAt(access, refresh time.Time) credential.Pair {
	return credential.Pair{
		AccessToken:     "access",
		AccessIssuedAt:  access,
		RefreshToken:    "refresh",
		RefreshIssuedAt: refresh,
	}
}

func TestAccessFresh(t *testing.T) {
	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{name: "1499 seconds old is fresh", age: 1499 * time.Second, want: true},
		{name: "exactly 1500 seconds old is stale", age: 1500 * time.Second, want: false},
		{name: "1501 seconds old is stale", age: 1501 * time.Second, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pairIssuedAt(base.Add(-tt.age), base)
			assert.Equal(t, tt.want, p.AccessFresh(base))
		})
	}
}

func TestRefreshFresh(t *testing.T) {
	p := pairIssuedAt(base, base.Add(-credential.RefreshTTL+time.Second))
	assert.True(t, p.RefreshFresh(base))

	p = pairIssuedAt(base, base.Add(-credential.RefreshTTL))
	assert.False(t, p.RefreshFresh(base))
}

func TestStateAt(t *testing.T) {
	tests := []struct {
		name string
		pair credential.Pair
		want credential.State
	}{
		{
			name: "zero pair is missing",
			pair: credential.Pair{},
			want: credential.StateMissing,
		},
		{
			name: "fresh access is valid",
			pair: pairIssuedAt(base.Add(-time.Minute), base.Add(-time.Minute)),
			want: credential.StateValid,
		},
		{
			name: "stale access with fresh refresh",
			pair: pairIssuedAt(base.Add(-2*credential.AccessTTL), base.Add(-time.Hour)),
			want: credential.StateAccessStale,
		},
		{
			name: "both stale requires re-authorization",
			pair: pairIssuedAt(base.Add(-2*credential.RefreshTTL), base.Add(-2*credential.RefreshTTL)),
			want: credential.StateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pair.StateAt(base))
		})
	}
}
