package kroger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"webshopper/internal/pkg/config"
	"webshopper/internal/pkg/errs"
)

// OAuth scopes required for the features the app exposes: identity, cart
// writes and product lookups.
const oauthScope = "profile.compact cart.basic:write product.compact"

const (
	searchLimit       = 50
	minSearchTermLen  = 3
	fulfillmentFilter = "csp" // curbside pickup
)

var ErrSearchTermTooShort = errs.New("search term must be at least 3 characters")

// APIError is a non-2xx answer from the retailer API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kroger api error: status %d: %s", e.Status, e.Body)
}

// AuthRejected reports whether the failure means the presented credential was
// refused, as opposed to a transient upstream fault.
func (e *APIError) AuthRejected() bool {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// Tokens is a freshly minted access/refresh pair as returned by the token
// endpoint. Issue timestamps are stamped by the caller, not here, so the same
// clock governs both stamping and freshness checks.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type Location struct {
	ID      string
	Name    string
	Address string
	Chain   string
}

// ImageSize is one rendition of a product photo.
type ImageSize struct {
	Size string
	URL  string
}

// Image is a product photo from one perspective (front, back, ...), in
// multiple renditions.
type Image struct {
	Perspective string
	Sizes       []ImageSize
}

// CatalogProduct is the retailer's view of a product, as returned by search
// and detail lookups.
type CatalogProduct struct {
	ProductID   string
	UPC         string
	Description string
	Brand       string
	Size        string
	Images      []Image
}

// CartItem is one line of a cart submission, keyed by UPC as the cart API
// requires.
type CartItem struct {
	UPC      string `json:"upc"`
	Quantity int64  `json:"quantity"`
}

// Client talks to the Kroger public API. One instance is shared across
// requests; all calls are bounded by the configured timeout.
type Client struct {
	cfg  config.KrogerConfig
	http *http.Client
}

func NewClient(cfg config.KrogerConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthURL builds the consent URL the user is redirected to when connecting
// their retailer account. The state value is round-tripped through the
// provider and must be verified on callback.
func (c *Client) AuthURL(state string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", oauthScope)
	q.Set("state", state)
	return c.cfg.BaseURL + "/connect/oauth2/authorize?" + q.Encode()
}

// ExchangeAuthCode trades the callback authorization code for the first
// token pair.
func (c *Client) ExchangeAuthCode(ctx context.Context, code string) (Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	return c.tokenRequest(ctx, form)
}

// Refresh mints a new token pair from a refresh token. The provider rotates
// the refresh token on every call, so the returned pair fully replaces the
// stored one.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.tokenRequest(ctx, form)
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (Tokens, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/connect/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Tokens{}, errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.do(req, http.StatusOK, &body); err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: body.AccessToken, RefreshToken: body.RefreshToken}, nil
}

// SearchLocations finds stores near a zipcode.
func (c *Client) SearchLocations(ctx context.Context, accessToken, zipcode string) ([]Location, error) {
	q := url.Values{}
	q.Set("filter.zipCode.near", zipcode)
	q.Set("filter.limit", fmt.Sprint(searchLimit))

	var body struct {
		Data []struct {
			LocationID string `json:"locationId"`
			Chain      string `json:"chain"`
			Name       string `json:"name"`
			Address    struct {
				AddressLine1 string `json:"addressLine1"`
				City         string `json:"city"`
				State        string `json:"state"`
				ZipCode      string `json:"zipCode"`
			} `json:"address"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, accessToken, "/locations", q, &body); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(body.Data))
	for _, d := range body.Data {
		addr := fmt.Sprintf("%s, %s, %s %s",
			d.Address.AddressLine1, d.Address.City, d.Address.State, d.Address.ZipCode)
		locations = append(locations, Location{
			ID:      d.LocationID,
			Name:    d.Name,
			Address: addr,
			Chain:   d.Chain,
		})
	}
	return locations, nil
}

// SearchProducts searches the catalog at a store. The minimum term length is
// the API's own rule, enforced here before any network traffic.
func (c *Client) SearchProducts(ctx context.Context, accessToken, term, locationID string) ([]CatalogProduct, error) {
	// Characters, not bytes: a two-letter multibyte term is still too short.
	if utf8.RuneCountInString(strings.TrimSpace(term)) < minSearchTermLen {
		return nil, ErrSearchTermTooShort
	}

	q := url.Values{}
	q.Set("filter.term", term)
	q.Set("filter.locationId", locationID)
	q.Set("filter.fulfillment", fulfillmentFilter)
	q.Set("filter.limit", fmt.Sprint(searchLimit))

	var body productListBody
	if err := c.getJSON(ctx, accessToken, "/products", q, &body); err != nil {
		return nil, err
	}
	return body.toProducts(), nil
}

// ProductDetail looks one product up by UPC.
func (c *Client) ProductDetail(ctx context.Context, accessToken, upc, locationID string) (CatalogProduct, error) {
	q := url.Values{}
	q.Set("filter.locationId", locationID)

	var body productListBody
	if err := c.getJSON(ctx, accessToken, "/products/"+url.PathEscape(upc), q, &body); err != nil {
		return CatalogProduct{}, err
	}
	products := body.toProducts()
	if len(products) == 0 {
		return CatalogProduct{}, &APIError{Status: http.StatusNotFound, Body: "product not found"}
	}
	return products[0], nil
}

// AddToCart submits the order lines to the user's cart. The API answers 204
// with no body on success.
func (c *Client) AddToCart(ctx context.Context, accessToken string, items []CartItem) error {
	payload, err := json.Marshal(map[string][]CartItem{"items": items})
	if err != nil {
		return errs.Wrap(err, "failed to encode cart payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.cfg.BaseURL+"/cart/add", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build cart request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, http.StatusNoContent, nil)
}

type productListBody struct {
	Data []struct {
		ProductID   string `json:"productId"`
		UPC         string `json:"upc"`
		Description string `json:"description"`
		Brand       string `json:"brand"`
		Items       []struct {
			Size string `json:"size"`
		} `json:"items"`
		Images []struct {
			Perspective string `json:"perspective"`
			Sizes       []struct {
				Size string `json:"size"`
				URL  string `json:"url"`
			} `json:"sizes"`
		} `json:"images"`
	} `json:"data"`
}

func (b productListBody) toProducts() []CatalogProduct {
	products := make([]CatalogProduct, 0, len(b.Data))
	for _, d := range b.Data {
		p := CatalogProduct{
			ProductID:   d.ProductID,
			UPC:         d.UPC,
			Description: d.Description,
			Brand:       d.Brand,
		}
		if len(d.Items) > 0 {
			p.Size = d.Items[0].Size
		}
		for _, img := range d.Images {
			image := Image{Perspective: img.Perspective}
			for _, s := range img.Sizes {
				image.Sizes = append(image.Sizes, ImageSize{Size: s.Size, URL: s.URL})
			}
			p.Images = append(p.Images, image)
		}
		products = append(products, p)
	}
	return products
}

func (c *Client) getJSON(ctx context.Context, accessToken, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return errs.Wrap(err, "failed to build api request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	return c.do(req, http.StatusOK, out)
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "kroger api request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode kroger api response")
	}
	return nil
}
