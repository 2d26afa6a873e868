//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"webshopper/internal/domain/order"
	"webshopper/internal/domain/unit"
	reqdto "webshopper/internal/handler/dto/request"
	"webshopper/internal/pkg/errs"
	"webshopper/internal/usecase"
	"webshopper/internal/usecase/commands"
	commonhttp "webshopper/tests/common/httptest"
	commandsmock "webshopper/tests/mock/commands"

	"webshopper/internal/handler/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	cmds   *commandsmock.MockOrderCommands
	router *gin.Engine
	userID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockOrderCommands(s.ctrl)
	s.userID = uuid.New()

	handler := api.NewOrderHandler(s.cmds)
	s.router = gin.New()
	s.router.POST("/api/orders", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}, handler.Submit)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) submit(recipeIDs []uuid.UUID) *reqdto.SubmitOrderRequest {
	return &reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs}
}

func (s *OrderHandlerTestSuite) TestSubmitReturnsReceipt() {
	recipeIDs := []uuid.UUID{uuid.New()}
	receipt := &commands.OrderReceipt{
		Lines: []commands.OrderLine{
			{ProductID: "flour", Description: "all purpose flour", Quantity: 3},
		},
		RoundedUp: []commands.RoundedUpLine{
			{ProductID: "flour", Description: "all purpose flour", RawContainers: 2.2, Containers: 3},
		},
	}
	s.cmds.EXPECT().Submit(gomock.Any(), s.userID, reqdto.SubmitOrderRequest{RecipeIDs: recipeIDs}).
		Return(receipt, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.submit(recipeIDs), "")

	var got commands.OrderReceipt
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	s.Require().Len(got.Lines, 1)
	s.Equal(int64(3), got.Lines[0].Quantity)
	s.Require().Len(got.RoundedUp, 1)
	s.InDelta(2.2, got.RoundedUp[0].RawContainers, 1e-9)
}

func (s *OrderHandlerTestSuite) TestSubmitRejectsEmptySelection() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders",
		gin.H{"recipe_ids": []string{}}, "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OrderHandlerTestSuite) TestSubmitErrorMapping() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			// Marked the way the usecase layer produces it: the repository
			// failure stays underneath, the sentinel rides as a mark.
			name:       "unknown recipe",
			err:        errs.Mark(errs.New("recipe not found"), commands.ErrRecipeNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Recipe not found",
		},
		{
			name:       "product missing from catalog",
			err:        order.ErrProductNotFound,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "missing from the catalog",
		},
		{
			name:       "mixed dimensions",
			err:        unit.ErrDimensionMismatch,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "incompatible units",
		},
		{
			name:       "unknown unit is a server fault",
			err:        unit.ErrUnknownUnit,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "cart submission failed",
			err:        errs.Mark(errs.New("unexpected status 500"), commands.ErrCartSubmission),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "cart submission failed",
		},
		{
			name:       "not connected",
			err:        usecase.ErrNotConnected,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "not connected",
		},
		{
			name:       "reauthorization required",
			err:        usecase.ErrReauthorizationRequired,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "please reconnect",
		},
		{
			name:       "refresh rejected",
			err:        errs.Mark(errs.New("invalid_grant"), usecase.ErrRefreshRejected),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "refresh failed",
		},
		{
			name:       "unexpected failure",
			err:        errs.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			recipeIDs := []uuid.UUID{uuid.New()}
			s.cmds.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).Return(nil, tt.err)

			w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders", s.submit(recipeIDs), "")

			commonhttp.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantMsg)
		})
	}
}
