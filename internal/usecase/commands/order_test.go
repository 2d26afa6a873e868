//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"webshopper/internal/domain/catalog"
	"webshopper/internal/domain/credential"
	"webshopper/internal/domain/order"
	"webshopper/internal/domain/recipe"
	"webshopper/internal/domain/unit"
	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/infra"
	"webshopper/internal/infra/kroger"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase/commands"
	commandsmock "webshopper/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	recipes     *commandsmock.MockRecipeRepo
	products    *commandsmock.MockProductRepo
	credentials *commandsmock.MockCredentialPort
	cart        *commandsmock.MockCartSubmitter
	cmds        commands.OrderCommands
	userID      uuid.UUID
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.recipes = commandsmock.NewMockRecipeRepo(s.ctrl)
	s.products = commandsmock.NewMockProductRepo(s.ctrl)
	s.credentials = commandsmock.NewMockCredentialPort(s.ctrl)
	s.cart = commandsmock.NewMockCartSubmitter(s.ctrl)
	s.cmds = commands.NewOrderCommands(s.recipes, s.products, s.credentials, s.cart)
	s.userID = uuid.New()
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) recipeWith(ingredients ...recipe.Ingredient) *recipe.Recipe {
	return recipe.Reconstruct(uuid.New(), s.userID, "weeknight dinner", "", ingredients)
}

func (s *OrderCommandsTestSuite) ingredient(productID string, quantity float64, u unit.Unit) recipe.Ingredient {
	return recipe.ReconstructIngredient(uuid.New(), uuid.New(), productID, productID, quantity, u)
}

func (s *OrderCommandsTestSuite) product(id, upc string, containerGrams float64) *catalog.Product {
	return catalog.Reconstruct(id, s.userID, upc, "product "+id, catalog.ContainerSpec{
		Quantity:  containerGrams,
		Unit:      unit.Gram,
		Dimension: unit.DimensionMass,
	}, nil)
}

func (s *OrderCommandsTestSuite) freshPair() credential.Pair {
	now := time.Now()
	return credential.Pair{
		AccessToken:     "access-token",
		AccessIssuedAt:  now,
		RefreshToken:    "refresh-token",
		RefreshIssuedAt: now,
	}
}

func (s *OrderCommandsTestSuite) TestSubmitAggregatesAcrossRecipes() {
	recipeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	// 600g + 500g of flour: 2.2 containers of 500g, rounded up to 3.
	r1 := s.recipeWith(s.ingredient("flour", 600, unit.Gram))
	r2 := s.recipeWith(s.ingredient("flour", 0.5, unit.Kilogram))
	flour := s.product("flour", "0001111041700", 500)

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r1, r2}, nil)
	s.products.EXPECT().GetMany(gomock.Any(), s.userID, []string{"flour"}).
		Return(map[string]*catalog.Product{"flour": flour}, nil)
	s.credentials.EXPECT().EnsureFresh(gomock.Any(), s.userID).Return(s.freshPair(), nil)
	s.cart.EXPECT().AddToCart(gomock.Any(), "access-token", []kroger.CartItem{
		{UPC: "0001111041700", Quantity: 3},
	}).Return(nil)

	receipt, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().NoError(err)
	s.Require().Len(receipt.Lines, 1)
	s.Equal("flour", receipt.Lines[0].ProductID)
	s.Equal(int64(3), receipt.Lines[0].Quantity)
	s.Require().Len(receipt.RoundedUp, 1)
	s.InDelta(2.2, receipt.RoundedUp[0].RawContainers, 1e-9)
	s.Equal(int64(3), receipt.RoundedUp[0].Containers)
}

func (s *OrderCommandsTestSuite) TestSubmitFallsBackToProductIDWithoutUPC() {
	recipeIDs := []uuid.UUID{uuid.New()}
	r := s.recipeWith(s.ingredient("rice", 900, unit.Gram))
	rice := s.product("rice", "", 500)

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r}, nil)
	s.products.EXPECT().GetMany(gomock.Any(), s.userID, []string{"rice"}).
		Return(map[string]*catalog.Product{"rice": rice}, nil)
	s.credentials.EXPECT().EnsureFresh(gomock.Any(), s.userID).Return(s.freshPair(), nil)
	s.cart.EXPECT().AddToCart(gomock.Any(), "access-token", []kroger.CartItem{
		{UPC: "rice", Quantity: 2},
	}).Return(nil)

	_, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().NoError(err)
}

func (s *OrderCommandsTestSuite) TestSubmitUnknownRecipe() {
	recipeIDs := []uuid.UUID{uuid.New()}
	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).
		Return(nil, infra.WrapRepoErr("recipe not found", nil, infra.KindNotFound))

	_, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().True(errs.Is(err, commands.ErrRecipeNotFound))
}

func (s *OrderCommandsTestSuite) TestSubmitMissingProductAbortsOrder() {
	recipeIDs := []uuid.UUID{uuid.New()}
	r := s.recipeWith(
		s.ingredient("flour", 600, unit.Gram),
		s.ingredient("gone", 100, unit.Gram),
	)
	flour := s.product("flour", "0001111041700", 500)

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r}, nil)
	s.products.EXPECT().GetMany(gomock.Any(), s.userID, []string{"flour", "gone"}).
		Return(map[string]*catalog.Product{"flour": flour}, nil)

	_, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().ErrorIs(err, order.ErrProductNotFound)
}

func (s *OrderCommandsTestSuite) TestSubmitAllCountsZeroSkipsCart() {
	recipeIDs := []uuid.UUID{uuid.New()}
	// 20g against a 500g container: 0.04 raw, below the round-up threshold.
	r := s.recipeWith(s.ingredient("salt", 20, unit.Gram))
	salt := s.product("salt", "0002460001003", 500)

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r}, nil)
	s.products.EXPECT().GetMany(gomock.Any(), s.userID, []string{"salt"}).
		Return(map[string]*catalog.Product{"salt": salt}, nil)
	// No EnsureFresh and no AddToCart: an empty cart submission is not made.

	receipt, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().NoError(err)
	s.Empty(receipt.Lines)
	s.Empty(receipt.RoundedUp)
}

func (s *OrderCommandsTestSuite) TestSubmitCartFailure() {
	recipeIDs := []uuid.UUID{uuid.New()}
	r := s.recipeWith(s.ingredient("flour", 600, unit.Gram))
	flour := s.product("flour", "0001111041700", 500)

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r}, nil)
	s.products.EXPECT().GetMany(gomock.Any(), s.userID, []string{"flour"}).
		Return(map[string]*catalog.Product{"flour": flour}, nil)
	cartErr := errs.New("unexpected status 500")
	s.credentials.EXPECT().EnsureFresh(gomock.Any(), s.userID).Return(s.freshPair(), nil)
	s.cart.EXPECT().AddToCart(gomock.Any(), "access-token", gomock.Any()).
		Return(cartErr)

	_, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	// The gateway error stays underneath the mark for logging.
	s.Require().True(errs.Is(err, commands.ErrCartSubmission))
	s.Require().True(errs.Is(err, cartErr))
}

func (s *OrderCommandsTestSuite) TestSubmitDimensionMismatchAcrossRecipes() {
	recipeIDs := []uuid.UUID{uuid.New(), uuid.New()}
	r1 := s.recipeWith(s.ingredient("milk", 500, unit.Milliliter))
	r2 := s.recipeWith(s.ingredient("milk", 200, unit.Gram))

	s.recipes.EXPECT().FindByIDs(gomock.Any(), s.userID, recipeIDs).Return([]*recipe.Recipe{r1, r2}, nil)

	_, err := s.cmds.Submit(context.Background(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs})

	s.Require().ErrorIs(err, unit.ErrDimensionMismatch)
}
