package request

import (
	"webshopper/internal/domain/recipe"
	"webshopper/internal/domain/unit"

	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

func (r *CreateRecipeRequest) ToDomain(userID uuid.UUID) (*recipe.Recipe, error) {
	return recipe.NewRecipe(userID, r.Name)
}

type UpdateRecipeTextRequest struct {
	Text string `json:"text" binding:"max=10000"`
}

type AddIngredientRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required,max=200"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Unit      string  `json:"unit" binding:"required"`
}

func (r *AddIngredientRequest) ToDomain(recipeID uuid.UUID) (recipe.Ingredient, error) {
	u, err := unit.Parse(r.Unit)
	if err != nil {
		return recipe.Ingredient{}, err
	}
	return recipe.NewIngredient(recipeID, r.ProductID, r.Name, r.Quantity, u)
}
