//go:build unit

package kroger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"webshopper/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.KrogerConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://app.example.com/callback",
		BaseURL:      baseURL,
		Timeout:      5 * time.Second,
	})
}

func TestAuthURLCarriesScopeAndState(t *testing.T) {
	c := newTestClient("https://api.kroger.example")

	raw := c.AuthURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/connect/oauth2/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "profile.compact cart.basic:write product.compact", q.Get("scope"))
}

func TestExchangeAuthCodeSendsBasicAuthForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/connect/oauth2/token", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token endpoint requires basic auth")
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "https://app.example.com/callback", r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
		})
	}))
	defer srv.Close()

	tokens, err := newTestClient(srv.URL).ExchangeAuthCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}, tokens)
}

func TestRefreshSendsRefreshGrant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-old", r.PostForm.Get("refresh_token"))

		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
		})
	}))
	defer srv.Close()

	tokens, err := newTestClient(srv.URL).Refresh(context.Background(), "refresh-old")

	require.NoError(t, err)
	assert.Equal(t, "access-2", tokens.AccessToken)
	assert.Equal(t, "refresh-2", tokens.RefreshToken)
}

func TestRefreshRejectedIsAuthRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Refresh(context.Background(), "refresh-revoked")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.AuthRejected())
}

func TestSearchProductsShortTermSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no request should be made for a too-short term")
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchProducts(context.Background(), "token", "ab", "store-1")

	assert.ErrorIs(t, err, ErrSearchTermTooShort)

	// Whitespace padding does not rescue a short term.
	_, err = newTestClient(srv.URL).SearchProducts(context.Background(), "token", "  ab  ", "store-1")
	assert.ErrorIs(t, err, ErrSearchTermTooShort)

	// Two multibyte characters are two characters, not six bytes.
	_, err = newTestClient(srv.URL).SearchProducts(context.Background(), "token", "牛乳", "store-1")
	assert.ErrorIs(t, err, ErrSearchTermTooShort)
}

func TestSearchProductsBuildsFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "milk", q.Get("filter.term"))
		assert.Equal(t, "store-1", q.Get("filter.locationId"))
		assert.Equal(t, "csp", q.Get("filter.fulfillment"))
		assert.Equal(t, "50", q.Get("filter.limit"))

		_, _ = w.Write([]byte(`{
			"data": [{
				"productId": "0001111041700",
				"upc": "0001111041700",
				"description": "Kroger 2% Milk",
				"brand": "Kroger",
				"items": [{"size": "1 gal"}],
				"images": [{
					"perspective": "front",
					"sizes": [
						{"size": "small", "url": "https://img/front-sm"},
						{"size": "xlarge", "url": "https://img/front-xl"}
					]
				}]
			}]
		}`))
	}))
	defer srv.Close()

	products, err := newTestClient(srv.URL).SearchProducts(context.Background(), "access-token", "milk", "store-1")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kroger 2% Milk", products[0].Description)
	assert.Equal(t, "1 gal", products[0].Size)
	require.Len(t, products[0].Images, 1)
	assert.Len(t, products[0].Images[0].Sizes, 2)
}

func TestSearchLocationsFormatsAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		assert.Equal(t, "45202", r.URL.Query().Get("filter.zipCode.near"))

		_, _ = w.Write([]byte(`{
			"data": [{
				"locationId": "01400441",
				"chain": "Kroger",
				"name": "Downtown Kroger",
				"address": {
					"addressLine1": "100 Main St",
					"city": "Cincinnati",
					"state": "OH",
					"zipCode": "45202"
				}
			}]
		}`))
	}))
	defer srv.Close()

	locations, err := newTestClient(srv.URL).SearchLocations(context.Background(), "token", "45202")

	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "01400441", locations[0].ID)
	assert.Equal(t, "100 Main St, Cincinnati, OH 45202", locations[0].Address)
}

func TestProductDetailEmptyDataIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ProductDetail(context.Background(), "token", "0000000000000", "store-1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestAddToCartSubmitsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cart/add", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		var payload struct {
			Items []CartItem `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Items, 2)
		assert.Equal(t, CartItem{UPC: "0001111041700", Quantity: 3}, payload.Items[0])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).AddToCart(context.Background(), "access-token", []CartItem{
		{UPC: "0001111041700", Quantity: 3},
		{UPC: "0002460001003", Quantity: 1},
	})

	assert.NoError(t, err)
}

func TestAddToCartNonNoContentFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).AddToCart(context.Background(), "stale-token", []CartItem{
		{UPC: "0001111041700", Quantity: 1},
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, apiErr.AuthRejected())
}
