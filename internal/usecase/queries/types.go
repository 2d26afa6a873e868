package queries

import (
	"github.com/google/uuid"
)

// UserView represents read-optimized user data
type UserView struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	LocationID string    `json:"location_id"`
}

// LocationView represents one store near the searched zipcode
type LocationView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

// ProductImageView is one product photo, reduced to the largest rendition of
// its perspective
type ProductImageView struct {
	Perspective string `json:"perspective"`
	URL         string `json:"url"`
}

// ProductSearchView represents one retailer catalog hit
type ProductSearchView struct {
	ProductID   string             `json:"product_id"`
	UPC         string             `json:"upc"`
	Description string             `json:"description"`
	Brand       string             `json:"brand"`
	Size        string             `json:"size"`
	Images      []ProductImageView `json:"images"`
}

// ContainerView is the normalized container content in one dimension
type ContainerView struct {
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Dimension string  `json:"dimension"`
}

// ProductView represents one cataloged product with its precomputed
// container content
type ProductView struct {
	ProductID   string         `json:"product_id"`
	UPC         string         `json:"upc"`
	Description string         `json:"description"`
	Container   ContainerView  `json:"container"`
	Alternate   *ContainerView `json:"alternate,omitempty"`
}

// IngredientView represents one recipe line
type IngredientView struct {
	ID        uuid.UUID `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
}

// RecipeView represents one recipe with its ordered ingredients
type RecipeView struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Text        string           `json:"text"`
	Ingredients []IngredientView `json:"ingredients"`
}
