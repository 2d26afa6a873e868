package api

import (
	"net/http"

	reqdto "webshopper/internal/handler/dto/request"
	resdto "webshopper/internal/handler/dto/response"
	"webshopper/internal/handler/httperr"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecipeHandler struct {
	cmds commands.RecipeCommands
	q    queries.RecipeQueries
}

func NewRecipeHandler(cmds commands.RecipeCommands, q queries.RecipeQueries) *RecipeHandler {
	return &RecipeHandler{cmds: cmds, q: q}
}

// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRecipeRequest true "Create recipe request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /recipes [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateRecipe(c.Request.Context(), userID, req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidRecipe) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recipe", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List recipes
// @Tags recipes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.RecipeView
// @Failure 401 {object} map[string]string
// @Router /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recipes, err := h.q.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// @Summary Update recipe text
// @Tags recipes
// @Accept json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body reqdto.UpdateRecipeTextRequest true "Recipe text"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) UpdateText(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateRecipeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateRecipeText(c.Request.Context(), userID, recipeID, req); err != nil {
		if errs.Is(err, commands.ErrRecipeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipe not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		if errs.Is(err, commands.ErrRecipeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipe not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add ingredient
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe ID"
// @Param request body reqdto.AddIngredientRequest true "Ingredient"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recipes/{id}/ingredients [post]
func (h *RecipeHandler) AddIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.AddIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.AddIngredient(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidIngredient):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ingredient", nil)
		case errs.Is(err, commands.ErrRecipeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipe not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete ingredient
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Ingredient ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /recipes/ingredients/{id} [delete]
func (h *RecipeHandler) DeleteIngredient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteIngredient(c.Request.Context(), userID, ingredientID); err != nil {
		if errs.Is(err, commands.ErrIngredientNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ingredient not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
