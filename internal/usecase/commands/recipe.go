package commands

import (
	"context"

	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra"
	"webshopper/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecipe      = errs.New("invalid recipe")
	ErrInvalidIngredient  = errs.New("invalid ingredient")
	ErrRecipeNotFound     = errs.New("recipe not found")
	ErrIngredientNotFound = errs.New("ingredient not found")
)

type RecipeCommands interface {
	CreateRecipe(ctx context.Context, userID uuid.UUID, req reqdto.CreateRecipeRequest) (uuid.UUID, error)
	UpdateRecipeText(ctx context.Context, userID, recipeID uuid.UUID, req reqdto.UpdateRecipeTextRequest) error
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	AddIngredient(ctx context.Context, userID, recipeID uuid.UUID, req reqdto.AddIngredientRequest) (uuid.UUID, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error
}

type recipeCommandsImpl struct {
	recipes RecipeRepo
}

func NewRecipeCommands(recipes RecipeRepo) RecipeCommands {
	return &recipeCommandsImpl{
		recipes: recipes,
	}
}

func (c *recipeCommandsImpl) CreateRecipe(ctx context.Context, userID uuid.UUID, req reqdto.CreateRecipeRequest) (uuid.UUID, error) {
	rec, err := req.ToDomain(userID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRecipe)
	}
	if err := c.recipes.Create(ctx, rec); err != nil {
		return uuid.Nil, err
	}
	return rec.ID(), nil
}

func (c *recipeCommandsImpl) UpdateRecipeText(ctx context.Context, userID, recipeID uuid.UUID, req reqdto.UpdateRecipeTextRequest) error {
	if err := c.recipes.UpdateText(ctx, userID, recipeID, req.Text); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRecipeNotFound)
		}
		return err
	}
	return nil
}

func (c *recipeCommandsImpl) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	if err := c.recipes.Delete(ctx, userID, recipeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRecipeNotFound)
		}
		return err
	}
	return nil
}

func (c *recipeCommandsImpl) AddIngredient(ctx context.Context, userID, recipeID uuid.UUID, req reqdto.AddIngredientRequest) (uuid.UUID, error) {
	ing, err := req.ToDomain(recipeID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidIngredient)
	}
	if err := c.recipes.AddIngredient(ctx, userID, ing); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrRecipeNotFound)
		}
		return uuid.Nil, err
	}
	return ing.ID(), nil
}

func (c *recipeCommandsImpl) DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error {
	if err := c.recipes.DeleteIngredient(ctx, userID, ingredientID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrIngredientNotFound)
		}
		return err
	}
	return nil
}
