package api

import (
	"net/http"

	reqdto "webshopper/internal/handler/dto/request"
	resdto "webshopper/internal/handler/dto/response"
	"webshopper/internal/handler/httperr"
	"webshopper/internal/handler/middleware"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase"
	"webshopper/internal/usecase/commands"
	"webshopper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KrogerHandler struct {
	connectCmds commands.ConnectCommands
	searchQuery queries.SearchQueries
}

func NewKrogerHandler(connectCmds commands.ConnectCommands, searchQuery queries.SearchQueries) *KrogerHandler {
	return &KrogerHandler{
		connectCmds: connectCmds,
		searchQuery: searchQuery,
	}
}

// abortCredentialError maps credential lifecycle failures shared by every
// retailer-backed endpoint. Returns true when the error was handled.
func abortCredentialError(c *gin.Context, err error) bool {
	switch {
	case errs.Is(err, usecase.ErrNotConnected):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Kroger account not connected", gin.H{"reconnect": true})
	case errs.Is(err, usecase.ErrReauthorizationRequired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Kroger authorization expired, please reconnect", gin.H{"reconnect": true})
	case errs.Is(err, usecase.ErrRefreshRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Kroger token refresh failed, please retry", nil)
	default:
		return false
	}
	return true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

// @Summary Start Kroger account connection
// @Description Returns the consent URL the user must visit
// @Tags kroger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ConnectResponse
// @Failure 401 {object} map[string]string
// @Router /kroger/connect [get]
func (h *KrogerHandler) Connect(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	authURL, err := h.connectCmds.BeginConnect(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ConnectResponse{AuthURL: authURL})
}

// @Summary Kroger OAuth callback
// @Description Exchanges the authorization code for the first credential pair
// @Tags kroger
// @Security BearerAuth
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /kroger/callback [get]
func (h *KrogerHandler) Callback(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.ConnectCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.connectCmds.CompleteConnect(c.Request.Context(), userID, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrStateMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "State mismatch, restart the connection", nil)
		case errs.Is(err, commands.ErrExchangeFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Kroger rejected the authorization code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Search store locations
// @Description Find Kroger stores near a five-digit zipcode
// @Tags kroger
// @Security BearerAuth
// @Produce json
// @Param zipcode query string true "US zipcode"
// @Success 200 {array} queries.LocationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /kroger/locations [get]
func (h *KrogerHandler) SearchLocations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.SearchLocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Zipcode must be five digits", nil)
		return
	}

	locations, err := h.searchQuery.SearchLocations(c.Request.Context(), userID, req.Zipcode)
	if err != nil {
		if abortCredentialError(c, err) {
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Location search failed", nil)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// @Summary Search products
// @Description Search the Kroger catalog at the user's pinned store
// @Tags kroger
// @Security BearerAuth
// @Produce json
// @Param term query string true "Search term (3+ characters)"
// @Success 200 {array} queries.ProductSearchView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /kroger/products [get]
func (h *KrogerHandler) SearchProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.SearchProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Search term must be at least 3 characters", nil)
		return
	}

	products, err := h.searchQuery.SearchProducts(c.Request.Context(), userID, req.Term)
	if err != nil {
		if abortCredentialError(c, err) {
			return
		}
		switch {
		case errs.Is(err, queries.ErrSearchTermTooShort):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Search term must be at least 3 characters", nil)
		case errs.Is(err, queries.ErrLocationNotSet):
			httperr.AbortWithError(c, http.StatusConflict, err, "Set a store location first", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Product search failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Product detail
// @Description Look one product up by UPC at the user's pinned store
// @Tags kroger
// @Security BearerAuth
// @Produce json
// @Param upc path string true "Product UPC"
// @Success 200 {object} queries.ProductSearchView
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /kroger/products/{upc} [get]
func (h *KrogerHandler) ProductDetail(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	product, err := h.searchQuery.ProductDetail(c.Request.Context(), userID, c.Param("upc"))
	if err != nil {
		if abortCredentialError(c, err) {
			return
		}
		if errs.Is(err, queries.ErrLocationNotSet) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Set a store location first", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Product lookup failed", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}
