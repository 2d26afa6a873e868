package repository

import (
	"context"

	"webshopper/internal/domain/recipe"
	"webshopper/internal/domain/unit"
	"webshopper/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecipeRepository struct {
	db *pgxpool.Pool
}

func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recipes (id, user_id, name, recipe_text) VALUES ($1, $2, $3, $4)`,
		rec.ID(), rec.UserID(), rec.Name(), rec.Text(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create recipe", err)
	}
	return nil
}

func (r *RecipeRepository) UpdateText(ctx context.Context, userID, recipeID uuid.UUID, text string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE recipes SET recipe_text = $3 WHERE id = $1 AND user_id = $2`,
		recipeID, userID, text,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update recipe text", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecipeRepository) Delete(ctx context.Context, userID, recipeID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2`,
		recipeID, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
	}
	return nil
}

// AddIngredient appends the ingredient at the next position within its
// recipe; ingredient order inside a recipe is stable and user-visible.
func (r *RecipeRepository) AddIngredient(ctx context.Context, userID uuid.UUID, ing recipe.Ingredient) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO ingredients (id, recipe_id, product_id, name, quantity, unit, position)
		 SELECT $1, r.id, $3, $4, $5, $6,
			COALESCE((SELECT MAX(position) + 1 FROM ingredients WHERE recipe_id = r.id), 0)
		 FROM recipes r WHERE r.id = $2 AND r.user_id = $7`,
		ing.ID(), ing.RecipeID(), ing.ProductID(), ing.Name(), ing.Quantity(), string(ing.Unit()), userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecipeRepository) DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM ingredients i USING recipes r
		 WHERE i.id = $1 AND i.recipe_id = r.id AND r.user_id = $2`,
		ingredientID, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete ingredient", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ingredient not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RecipeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, recipe_text FROM recipes
		 WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recipes", err)
	}
	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachIngredients(ctx, recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByIDs loads the requested recipes in the requested order. Every id
// must resolve; a missing recipe is reported as not found rather than
// silently shrinking the order.
func (r *RecipeRepository) FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, recipe_text FROM recipes
		 WHERE user_id = $1 AND id = ANY($2)`,
		userID, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recipes", err)
	}
	recipes, err := collectRecipes(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*recipe.Recipe, len(recipes))
	for _, rec := range recipes {
		byID[rec.ID()] = rec
	}

	ordered := make([]*recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok {
			return nil, infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound)
		}
		ordered = append(ordered, rec)
	}

	if err := r.attachIngredients(ctx, ordered); err != nil {
		return nil, err
	}
	return ordered, nil
}

func collectRecipes(rows pgx.Rows) ([]*recipe.Recipe, error) {
	defer rows.Close()

	var recipes []*recipe.Recipe
	for rows.Next() {
		var (
			id, userID uuid.UUID
			name, text string
		)
		if err := rows.Scan(&id, &userID, &name, &text); err != nil {
			return nil, infra.WrapRepoErr("failed to scan recipe", err)
		}
		recipes = append(recipes, recipe.Reconstruct(id, userID, name, text, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate recipes", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) attachIngredients(ctx context.Context, recipes []*recipe.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	byID := make(map[uuid.UUID]*recipe.Recipe, len(recipes))
	for i, rec := range recipes {
		ids[i] = rec.ID()
		byID[rec.ID()] = rec
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, recipe_id, product_id, name, quantity, unit FROM ingredients
		 WHERE recipe_id = ANY($1) ORDER BY recipe_id, position`,
		ids,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to load ingredients", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, recipeID    uuid.UUID
			productID, name string
			quantity        float64
			unitTag         string
		)
		if err := rows.Scan(&id, &recipeID, &productID, &name, &quantity, &unitTag); err != nil {
			return infra.WrapRepoErr("failed to scan ingredient", err)
		}
		ing := recipe.ReconstructIngredient(id, recipeID, productID, name, quantity, unit.Unit(unitTag))
		byID[recipeID].AttachIngredient(ing)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate ingredients", err)
	}
	return nil
}
