package queries

import (
	"context"
	"log/slog"

	"webshopper/internal/domain/credential"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrLocationNotSet     = errs.New("store location not set")
	ErrSearchTermTooShort = errs.New("search term too short")
)

// CredentialSource yields a fresh access token for the user before any
// retailer call.
type CredentialSource interface {
	EnsureFresh(ctx context.Context, userID uuid.UUID) (credential.Pair, error)
}

// RetailerSearcher is the read-only slice of the retailer API used by search.
type RetailerSearcher interface {
	SearchLocations(ctx context.Context, accessToken, zipcode string) ([]kroger.Location, error)
	SearchProducts(ctx context.Context, accessToken, term, locationID string) ([]kroger.CatalogProduct, error)
	ProductDetail(ctx context.Context, accessToken, upc, locationID string) (kroger.CatalogProduct, error)
}

// SearchCache holds recent raw search results. All methods are best effort.
type SearchCache interface {
	GetLocations(ctx context.Context, zipcode string) ([]kroger.Location, bool)
	SetLocations(ctx context.Context, zipcode string, locations []kroger.Location)
	GetProducts(ctx context.Context, locationID, term string) ([]kroger.CatalogProduct, bool)
	SetProducts(ctx context.Context, locationID, term string, products []kroger.CatalogProduct)
}

type SearchQueries interface {
	SearchLocations(ctx context.Context, userID uuid.UUID, zipcode string) ([]LocationView, error)
	SearchProducts(ctx context.Context, userID uuid.UUID, term string) ([]ProductSearchView, error)
	ProductDetail(ctx context.Context, userID uuid.UUID, upc string) (*ProductSearchView, error)
}

type searchQueriesImpl struct {
	users       UserReadStore
	credentials CredentialSource
	retailer    RetailerSearcher
	cache       SearchCache
}

func NewSearchQueries(users UserReadStore, credentials CredentialSource, retailer RetailerSearcher, cache SearchCache) SearchQueries {
	return &searchQueriesImpl{
		users:       users,
		credentials: credentials,
		retailer:    retailer,
		cache:       cache,
	}
}

func (q *searchQueriesImpl) SearchLocations(ctx context.Context, userID uuid.UUID, zipcode string) ([]LocationView, error) {
	// Credentials are checked even on a cache hit: a disconnected user should
	// learn about it here, not when they later try to order.
	pair, err := q.credentials.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cached, ok := q.cache.GetLocations(ctx, zipcode); ok {
		return toLocationViews(cached), nil
	}

	locations, err := q.retailer.SearchLocations(ctx, pair.AccessToken, zipcode)
	if err != nil {
		return nil, err
	}
	q.cache.SetLocations(ctx, zipcode, locations)

	return toLocationViews(locations), nil
}

func (q *searchQueriesImpl) SearchProducts(ctx context.Context, userID uuid.UUID, term string) ([]ProductSearchView, error) {
	locationID, err := q.locationOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	pair, err := q.credentials.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cached, ok := q.cache.GetProducts(ctx, locationID, term); ok {
		return toProductSearchViews(cached), nil
	}

	products, err := q.retailer.SearchProducts(ctx, pair.AccessToken, term, locationID)
	if err != nil {
		if errs.Is(err, kroger.ErrSearchTermTooShort) {
			return nil, errs.Mark(err, ErrSearchTermTooShort)
		}
		return nil, err
	}
	q.cache.SetProducts(ctx, locationID, term, products)

	return toProductSearchViews(products), nil
}

func (q *searchQueriesImpl) ProductDetail(ctx context.Context, userID uuid.UUID, upc string) (*ProductSearchView, error) {
	locationID, err := q.locationOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	pair, err := q.credentials.EnsureFresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := q.retailer.ProductDetail(ctx, pair.AccessToken, upc, locationID)
	if err != nil {
		return nil, err
	}

	view := toProductSearchView(product)
	return &view, nil
}

func (q *searchQueriesImpl) locationOf(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := q.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.LocationID == "" {
		return "", ErrLocationNotSet
	}
	return user.LocationID, nil
}

func toLocationViews(locations []kroger.Location) []LocationView {
	views := make([]LocationView, 0, len(locations))
	if err := copier.Copy(&views, &locations); err != nil {
		slog.Warn("failed to map location views", "error", err.Error())
		return nil
	}
	return views
}

func toProductSearchViews(products []kroger.CatalogProduct) []ProductSearchView {
	views := make([]ProductSearchView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductSearchView(p))
	}
	return views
}

func toProductSearchView(p kroger.CatalogProduct) ProductSearchView {
	var view ProductSearchView
	if err := copier.Copy(&view, &p); err != nil {
		slog.Warn("failed to map product search view", "error", err.Error())
	}
	view.Images = LargestImages(p.Images)
	return view
}

// sizeRank orders the renditions the retailer serves, smallest first.
var sizeRank = map[string]int{
	"thumbnail": 0,
	"small":     1,
	"medium":    2,
	"large":     3,
	"xlarge":    4,
}

// LargestImages reduces each photo perspective to its largest rendition.
func LargestImages(images []kroger.Image) []ProductImageView {
	views := make([]ProductImageView, 0, len(images))
	for _, img := range images {
		best := ""
		bestRank := -1
		for _, s := range img.Sizes {
			rank, ok := sizeRank[s.Size]
			if !ok {
				continue
			}
			if rank > bestRank {
				bestRank = rank
				best = s.URL
			}
		}
		if best == "" {
			continue
		}
		views = append(views, ProductImageView{Perspective: img.Perspective, URL: best})
	}
	return views
}
