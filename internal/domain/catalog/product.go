package catalog

import (
	"errors"
	"strings"

	"webshopper/internal/domain/unit"

	"github.com/google/uuid"
)

var (
	ErrInvalidServing     = errors.New("serving values must be positive")
	ErrEmptyProductID     = errors.New("product id is required")
	ErrEmptyDescription   = errors.New("product description is required")
	ErrMissingAlternate   = errors.New("alternate serving requires size, unit and count")
	ErrDuplicateDimension = errors.New("alternate serving must use a different dimension")
)

// ContainerSpec is the purchasable container content of a product in one
// dimension, normalized to that dimension's base unit.
type ContainerSpec struct {
	Quantity  float64
	Unit      unit.Unit
	Dimension unit.Dimension
}

// Product is a user-cataloged, purchasable retail product. The container
// content is precomputed at creation time from serving size x servings per
// container so order aggregation never re-derives it.
type Product struct {
	productID   string
	userID      uuid.UUID
	upc         string
	description string
	container   ContainerSpec
	alternate   *ContainerSpec
}

// ServingSpec is the raw serving declaration from the product label.
type ServingSpec struct {
	Size                 float64
	Unit                 unit.Unit
	ServingsPerContainer float64
}

func (s ServingSpec) normalize() (ContainerSpec, error) {
	if s.Size <= 0 || s.ServingsPerContainer <= 0 {
		return ContainerSpec{}, ErrInvalidServing
	}
	dim, err := s.Unit.Dimension()
	if err != nil {
		return ContainerSpec{}, err
	}
	base, err := unit.ToBase(s.Size, s.Unit)
	if err != nil {
		return ContainerSpec{}, err
	}
	return ContainerSpec{
		Quantity:  base * s.ServingsPerContainer,
		Unit:      unit.BaseOf(dim),
		Dimension: dim,
	}, nil
}

// NewProduct validates the serving declaration and precomputes the normalized
// container content. An optional alternate serving lets a product be ordered
// against either dimension (labels often carry both, e.g. grams and cups).
func NewProduct(productID string, userID uuid.UUID, upc, description string, serving ServingSpec, alternate *ServingSpec) (*Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, ErrEmptyProductID
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	container, err := serving.normalize()
	if err != nil {
		return nil, err
	}

	p := &Product{
		productID:   productID,
		userID:      userID,
		upc:         upc,
		description: description,
		container:   container,
	}

	if alternate != nil {
		alt, err := alternate.normalize()
		if err != nil {
			if errors.Is(err, ErrInvalidServing) {
				return nil, ErrMissingAlternate
			}
			return nil, err
		}
		if alt.Dimension == container.Dimension {
			return nil, ErrDuplicateDimension
		}
		p.alternate = &alt
	}

	return p, nil
}

// Reconstruct rebuilds a product from persisted, already-normalized values.
func Reconstruct(productID string, userID uuid.UUID, upc, description string, container ContainerSpec, alternate *ContainerSpec) *Product {
	return &Product{
		productID:   productID,
		userID:      userID,
		upc:         upc,
		description: description,
		container:   container,
		alternate:   alternate,
	}
}

func (p *Product) ProductID() string         { return p.productID }
func (p *Product) UserID() uuid.UUID         { return p.userID }
func (p *Product) UPC() string               { return p.upc }
func (p *Product) Description() string       { return p.description }
func (p *Product) Container() ContainerSpec  { return p.container }
func (p *Product) Alternate() *ContainerSpec { return p.alternate }

// ContainerFor returns the container content matching the given dimension, so
// a tally accumulated in milliliters can be priced against a product labeled
// in grams when an alternate serving exists.
func (p *Product) ContainerFor(d unit.Dimension) (ContainerSpec, error) {
	if p.container.Dimension == d {
		return p.container, nil
	}
	if p.alternate != nil && p.alternate.Dimension == d {
		return *p.alternate, nil
	}
	return ContainerSpec{}, unit.ErrDimensionMismatch
}
