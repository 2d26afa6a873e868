package queries

import (
	"context"

	"webshopper/internal/domain/recipe"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecipeNotFound = errs.New("recipe not found")

type RecipeQueries interface {
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]RecipeView, error)
}

type RecipeReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error)
}

type recipeQueriesImpl struct {
	readStore RecipeReadStore
}

func NewRecipeQueries(readStore RecipeReadStore) RecipeQueries {
	return &recipeQueriesImpl{
		readStore: readStore,
	}
}

func (q *recipeQueriesImpl) ListRecipes(ctx context.Context, userID uuid.UUID) ([]RecipeView, error) {
	recipes, err := q.readStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]RecipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, ToRecipeView(r))
	}
	return views, nil
}

// ToRecipeView projects a recipe and its ordered ingredients into the read
// model shared by list and detail responses.
func ToRecipeView(r *recipe.Recipe) RecipeView {
	view := RecipeView{
		ID:          r.ID(),
		Name:        r.Name(),
		Text:        r.Text(),
		Ingredients: make([]IngredientView, 0, len(r.Ingredients())),
	}
	for _, ing := range r.Ingredients() {
		view.Ingredients = append(view.Ingredients, IngredientView{
			ID:        ing.ID(),
			ProductID: ing.ProductID(),
			Name:      ing.Name(),
			Quantity:  ing.Quantity(),
			Unit:      string(ing.Unit()),
		})
	}
	return view
}
