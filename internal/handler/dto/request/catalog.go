package request

import (
	"webshopper/internal/domain/catalog"
	"webshopper/internal/domain/unit"

	"github.com/google/uuid"
)

type ServingRequest struct {
	Size                 float64 `json:"size" binding:"required,gt=0"`
	Unit                 string  `json:"unit" binding:"required"`
	ServingsPerContainer float64 `json:"servings_per_container" binding:"required,gt=0"`
}

func (r *ServingRequest) toSpec() (catalog.ServingSpec, error) {
	u, err := unit.Parse(r.Unit)
	if err != nil {
		return catalog.ServingSpec{}, err
	}
	return catalog.ServingSpec{
		Size:                 r.Size,
		Unit:                 u,
		ServingsPerContainer: r.ServingsPerContainer,
	}, nil
}

type SaveProductRequest struct {
	ProductID   string          `json:"product_id" binding:"required"`
	UPC         string          `json:"upc"`
	Description string          `json:"description" binding:"required"`
	Serving     ServingRequest  `json:"serving" binding:"required"`
	Alternate   *ServingRequest `json:"alternate"`
}

func (r *SaveProductRequest) ToDomain(userID uuid.UUID) (*catalog.Product, error) {
	serving, err := r.Serving.toSpec()
	if err != nil {
		return nil, err
	}

	var alternate *catalog.ServingSpec
	if r.Alternate != nil {
		spec, err := r.Alternate.toSpec()
		if err != nil {
			return nil, err
		}
		alternate = &spec
	}

	return catalog.NewProduct(r.ProductID, userID, r.UPC, r.Description, serving, alternate)
}
