package api

import (
	"net/http"

	"webshopper/internal/domain/order"
	"webshopper/internal/domain/unit"
	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/handler/httperr"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Submit order
// @Description Aggregate the selected recipes into container counts and push them into the Kroger cart
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitOrderRequest true "Recipe selection"
// @Success 200 {object} commands.OrderReceipt
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	receipt, err := h.cmds.Submit(c.Request.Context(), userID, req)
	if err != nil {
		if abortCredentialError(c, err) {
			return
		}
		switch {
		case errs.Is(err, commands.ErrRecipeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipe not found", nil)
		case errs.Is(err, order.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "A recipe references a product missing from the catalog", nil)
		case errs.Is(err, unit.ErrDimensionMismatch):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Recipes mix incompatible units for the same product", nil)
		case errs.Is(err, unit.ErrUnknownUnit):
			// Units come from a fixed server-side catalog; a miss is our
			// data fault, not the user's.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		case errs.Is(err, commands.ErrCartSubmission):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Kroger cart submission failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, receipt)
}
