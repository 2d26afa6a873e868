package credential

import "time"

// TTLs are deliberately shorter than the provider's stated expiries (1800s
// access, ~6 month refresh) so a token is renewed before clock skew or
// in-flight latency can push a request past the real deadline.
const (
	AccessTTL  = 1500 * time.Second
	RefreshTTL = 5 * 28 * 24 * time.Hour // ~5 months
)

// State of a user's credential pair relative to the freshness windows.
type State string

const (
	StateMissing     State = "missing"      // no access token ever issued
	StateValid       State = "valid"        // access token within freshness window
	StateAccessStale State = "access_stale" // access expired, refresh still fresh
	StateExpired     State = "expired"      // refresh also expired, full re-authorization needed
)

// Pair is the two time-bounded credentials issued by the retailer: the
// short-lived access token and the long-lived refresh token. A pair is always
// replaced wholesale, never field by field.
type Pair struct {
	AccessToken     string
	AccessIssuedAt  time.Time
	RefreshToken    string
	RefreshIssuedAt time.Time
}

func (p Pair) IsZero() bool {
	return p.AccessToken == "" && p.RefreshToken == ""
}

// AccessFresh reports whether the access token is still inside its freshness
// window. A token exactly AccessTTL old is stale.
func (p Pair) AccessFresh(now time.Time) bool {
	return now.Sub(p.AccessIssuedAt) < AccessTTL
}

// RefreshFresh reports whether the refresh token can still mint a new pair.
func (p Pair) RefreshFresh(now time.Time) bool {
	return now.Sub(p.RefreshIssuedAt) < RefreshTTL
}

func (p Pair) StateAt(now time.Time) State {
	switch {
	case p.IsZero():
		return StateMissing
	case p.AccessFresh(now):
		return StateValid
	case p.RefreshFresh(now):
		return StateAccessStale
	default:
		return StateExpired
	}
}
