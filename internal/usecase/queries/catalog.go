package queries

import (
	"context"

	"webshopper/internal/domain/catalog"
	"webshopper/internal/infra"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

type CatalogQueries interface {
	ListProducts(ctx context.Context, userID uuid.UUID) ([]ProductView, error)
	GetProduct(ctx context.Context, userID uuid.UUID, productID string) (*ProductView, error)
}

type ProductReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*catalog.Product, error)
	FindByID(ctx context.Context, userID uuid.UUID, productID string) (*catalog.Product, error)
}

type catalogQueriesImpl struct {
	readStore ProductReadStore
}

func NewCatalogQueries(readStore ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
	}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, userID uuid.UUID) ([]ProductView, error) {
	products, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, userID uuid.UUID, productID string) (*ProductView, error) {
	p, err := q.readStore.FindByID(ctx, userID, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	view := toProductView(p)
	return &view, nil
}

func toProductView(p *catalog.Product) ProductView {
	view := ProductView{
		ProductID:   p.ProductID(),
		UPC:         p.UPC(),
		Description: p.Description(),
		Container:   toContainerView(p.Container()),
	}
	if alt := p.Alternate(); alt != nil {
		altView := toContainerView(*alt)
		view.Alternate = &altView
	}
	return view
}

func toContainerView(c catalog.ContainerSpec) ContainerView {
	return ContainerView{
		Quantity:  c.Quantity,
		Unit:      string(c.Unit),
		Dimension: string(c.Dimension),
	}
}
