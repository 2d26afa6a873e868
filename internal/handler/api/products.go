package api

import (
	"net/http"

	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/handler/httperr"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewProductHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Save product
// @Description Add or update a cataloged product; the container content is computed from the serving declaration
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SaveProductRequest true "Product definition"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /products [put]
func (h *ProductHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SaveProduct(c.Request.Context(), userID, req); err != nil {
		if errs.Is(err, commands.ErrInvalidProduct) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product definition", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List products
// @Description List the user's cataloged products
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.ProductView
// @Failure 401 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	products, err := h.q.ListProducts(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Description Get one cataloged product
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	product, err := h.q.GetProduct(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Delete product
// @Description Remove a product from the catalog
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.cmds.DeleteProduct(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errs.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
