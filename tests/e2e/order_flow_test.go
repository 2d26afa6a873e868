//go:build e2e

package e2e

import (
	"net/http"
	"testing"

	resdto "webshopper/internal/handler/dto/response"
	"webshopper/internal/pkg/cookie"
	"webshopper/internal/usecase/commands"
	commonhttp "webshopper/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type OrderFlowTestSuite struct {
	SharedSuite
}

func TestOrderFlowTestSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowTestSuite))
}

// registerAndLogin creates a fresh account and returns its session token.
func (s *OrderFlowTestSuite) registerAndLogin(email string) string {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
		gin.H{"email": email, "password": "password123"}, "")
	s.Require().Equal(http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		gin.H{"email": email, "password": "password123"}, "")
	s.Require().Equal(http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.SessionCookieName {
			return c.Value
		}
	}
	s.Require().FailNow("login response carried no session cookie")
	return ""
}

func (s *OrderFlowTestSuite) saveProduct(token, productID string, containerGrams float64) {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/products", gin.H{
		"product_id":  productID,
		"upc":         productID,
		"description": "test product " + productID,
		"serving": gin.H{
			"size":                   containerGrams,
			"unit":                   "g",
			"servings_per_container": 1,
		},
	}, token)
	s.Require().Equal(http.StatusNoContent, w.Code, "save product failed: %s", w.Body.String())
}

func (s *OrderFlowTestSuite) createRecipe(token, name string) string {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipes",
		gin.H{"name": name}, token)

	var created resdto.CreatedResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created.ID.String()
}

func (s *OrderFlowTestSuite) addIngredient(token, recipeID, productID string, quantity float64, unit string) {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/recipes/"+recipeID+"/ingredients", gin.H{
		"product_id": productID,
		"name":       "ingredient of " + productID,
		"quantity":   quantity,
		"unit":       unit,
	}, token)
	s.Require().Equal(http.StatusCreated, w.Code, "add ingredient failed: %s", w.Body.String())
}

func (s *OrderFlowTestSuite) TestAuthRequired() {
	s.Run("rejects anonymous access", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/recipes", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects duplicate registration", func() {
		s.registerAndLogin("dup@example.com")
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register",
			gin.H{"email": "dup@example.com", "password": "password123"}, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("rejects wrong password", func() {
		s.registerAndLogin("login@example.com")
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			gin.H{"email": "login@example.com", "password": "wrong-password"}, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *OrderFlowTestSuite) TestOrderSubmission() {
	s.Run("zero-line order succeeds without a retailer connection", func() {
		token := s.registerAndLogin("zero@example.com")

		// 20g against a 500g container rounds down to zero, so the cart and
		// the credential check are both skipped.
		s.saveProduct(token, "salt", 500)
		recipeID := s.createRecipe(token, "barely salted")
		s.addIngredient(token, recipeID, "salt", 20, "g")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders",
			gin.H{"recipe_ids": []string{recipeID}}, token)

		var receipt commands.OrderReceipt
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &receipt)
		s.Empty(receipt.Lines)
		s.Empty(receipt.RoundedUp)
	})

	s.Run("order needing a cart push fails without a retailer connection", func() {
		token := s.registerAndLogin("noconn@example.com")

		s.saveProduct(token, "flour", 500)
		recipeID := s.createRecipe(token, "bread")
		s.addIngredient(token, recipeID, "flour", 1.1, "kg")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders",
			gin.H{"recipe_ids": []string{recipeID}}, token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "not connected")
	})

	s.Run("order against an unknown recipe is not found", func() {
		token := s.registerAndLogin("missing@example.com")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders",
			gin.H{"recipe_ids": []string{"5bd2aaba-d6a4-4fcd-b259-6a5bbf2b1a0f"}}, token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Recipe not found")
	})

	s.Run("recipe referencing a deleted product is unprocessable", func() {
		token := s.registerAndLogin("gone@example.com")

		s.saveProduct(token, "butter", 250)
		recipeID := s.createRecipe(token, "croissants")
		s.addIngredient(token, recipeID, "butter", 500, "g")

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/products/butter", nil, token)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/orders",
			gin.H{"recipe_ids": []string{recipeID}}, token)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "missing from the catalog")
	})
}
