package request

import (
	"github.com/google/uuid"
)

type SubmitOrderRequest struct {
	RecipeIDs []uuid.UUID `json:"recipe_ids" binding:"required,min=1"`
}
