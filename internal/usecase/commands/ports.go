package commands

import (
	"context"

	"webshopper/internal/domain/catalog"
	"webshopper/internal/domain/credential"
	"webshopper/internal/domain/recipe"
	"webshopper/internal/infra/kroger"

	"github.com/google/uuid"
)

type UserRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, locationID string) error
}

type ProductRepo interface {
	Save(ctx context.Context, p *catalog.Product) error
	Delete(ctx context.Context, userID uuid.UUID, productID string) error
	GetMany(ctx context.Context, userID uuid.UUID, productIDs []string) (map[string]*catalog.Product, error)
}

type RecipeRepo interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
	UpdateText(ctx context.Context, userID, recipeID uuid.UUID, text string) error
	Delete(ctx context.Context, userID, recipeID uuid.UUID) error
	AddIngredient(ctx context.Context, userID uuid.UUID, ing recipe.Ingredient) error
	DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*recipe.Recipe, error)
}

// RetailerConnector is the OAuth slice of the retailer API.
type RetailerConnector interface {
	AuthURL(state string) string
	ExchangeAuthCode(ctx context.Context, code string) (kroger.Tokens, error)
}

// CartSubmitter pushes finished order lines into the user's retailer cart.
type CartSubmitter interface {
	AddToCart(ctx context.Context, accessToken string, items []kroger.CartItem) error
}

// CredentialPort is the slice of the credential service commands depend on.
type CredentialPort interface {
	EnsureFresh(ctx context.Context, userID uuid.UUID) (credential.Pair, error)
	Store(ctx context.Context, userID uuid.UUID, tokens kroger.Tokens) (credential.Pair, error)
}

// StateStore round-trips the OAuth state value between consent redirect and
// callback. Take removes the value so a state can be used at most once.
type StateStore interface {
	Put(ctx context.Context, userID uuid.UUID, state string) error
	Take(ctx context.Context, userID uuid.UUID) (string, bool)
}
