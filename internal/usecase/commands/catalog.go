package commands

import (
	"context"

	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidProduct  = errs.New("invalid product definition")
	ErrProductNotFound = errs.New("product not found")
)

type CatalogCommands interface {
	SaveProduct(ctx context.Context, userID uuid.UUID, req reqdto.SaveProductRequest) error
	DeleteProduct(ctx context.Context, userID uuid.UUID, productID string) error
}

type catalogCommandsImpl struct {
	products ProductRepo
}

func NewCatalogCommands(products ProductRepo) CatalogCommands {
	return &catalogCommandsImpl{
		products: products,
	}
}

// SaveProduct validates the serving declaration, precomputes the container
// content and upserts, so add and edit share one path.
func (c *catalogCommandsImpl) SaveProduct(ctx context.Context, userID uuid.UUID, req reqdto.SaveProductRequest) error {
	product, err := req.ToDomain(userID)
	if err != nil {
		return errs.Mark(err, ErrInvalidProduct)
	}
	return c.products.Save(ctx, product)
}

func (c *catalogCommandsImpl) DeleteProduct(ctx context.Context, userID uuid.UUID, productID string) error {
	if err := c.products.Delete(ctx, userID, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrProductNotFound)
		}
		return err
	}
	return nil
}
