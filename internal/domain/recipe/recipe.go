package recipe

import (
	"errors"
	"strings"

	"webshopper/internal/domain/unit"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("recipe name is required")
	ErrEmptyProductRef = errors.New("ingredient must reference a product")
	ErrInvalidQuantity = errors.New("ingredient quantity must be positive")
)

// Ingredient ties a quantity of a cataloged product into a recipe. The
// product reference is weak: lookup only, no ownership.
type Ingredient struct {
	id        uuid.UUID
	recipeID  uuid.UUID
	productID string
	name      string
	quantity  float64
	unit      unit.Unit
}

func NewIngredient(recipeID uuid.UUID, productID, name string, quantity float64, u unit.Unit) (Ingredient, error) {
	if strings.TrimSpace(productID) == "" {
		return Ingredient{}, ErrEmptyProductRef
	}
	if quantity <= 0 {
		return Ingredient{}, ErrInvalidQuantity
	}
	if _, err := u.Dimension(); err != nil {
		return Ingredient{}, err
	}
	return Ingredient{
		id:        uuid.New(),
		recipeID:  recipeID,
		productID: productID,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unit:      u,
	}, nil
}

// ReconstructIngredient rebuilds an ingredient from persisted values.
func ReconstructIngredient(id, recipeID uuid.UUID, productID, name string, quantity float64, u unit.Unit) Ingredient {
	return Ingredient{
		id:        id,
		recipeID:  recipeID,
		productID: productID,
		name:      name,
		quantity:  quantity,
		unit:      u,
	}
}

func (i Ingredient) ID() uuid.UUID       { return i.id }
func (i Ingredient) RecipeID() uuid.UUID { return i.recipeID }
func (i Ingredient) ProductID() string   { return i.productID }
func (i Ingredient) Name() string        { return i.name }
func (i Ingredient) Quantity() float64   { return i.quantity }
func (i Ingredient) Unit() unit.Unit     { return i.unit }

// Recipe is a user-owned, ordered collection of ingredients plus free text.
type Recipe struct {
	id          uuid.UUID
	userID      uuid.UUID
	name        string
	text        string
	ingredients []Ingredient
}

func NewRecipe(userID uuid.UUID, name string) (*Recipe, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return &Recipe{
		id:     uuid.New(),
		userID: userID,
		name:   trimmed,
	}, nil
}

// Reconstruct rebuilds a recipe from persisted values. Ingredients keep the
// order they are given in.
func Reconstruct(id, userID uuid.UUID, name, text string, ingredients []Ingredient) *Recipe {
	return &Recipe{
		id:          id,
		userID:      userID,
		name:        name,
		text:        text,
		ingredients: ingredients,
	}
}

func (r *Recipe) ID() uuid.UUID             { return r.id }
func (r *Recipe) UserID() uuid.UUID         { return r.userID }
func (r *Recipe) Name() string              { return r.name }
func (r *Recipe) Text() string              { return r.text }
func (r *Recipe) Ingredients() []Ingredient { return r.ingredients }

// AttachIngredient appends a hydrated ingredient; position order is the
// caller's responsibility.
func (r *Recipe) AttachIngredient(ing Ingredient) {
	r.ingredients = append(r.ingredients, ing)
}
