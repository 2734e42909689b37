//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/handler/api"
	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/tests/common/builder"
	"pistachiohut/tests/common/httptest"
	"pistachiohut/tests/common/testutil"
	commandsmock "pistachiohut/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	handler      *api.CartHandler
	userID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/cart", authMiddleware, s.handler.AddToCart)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestAddToCart() {
	url := "/cart"

	product := builder.NewProductBuilder()
	reqBody := product.BuildAddToCartRequestDTO(2)
	expectedResult := &commands.AddToCartResult{
		Status:  commands.AddToCartStatusAdded,
		Message: "Added 2 x Roasted Pistachios to your cart",
	}

	s.Run("success: returns 200 OK with the reservation message", func() {
		s.mockCommands.EXPECT().AddToCart(gomock.Any(), s.userID, product.ID, int32(2), product.StockCount).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AddToCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(commands.AddToCartStatusAdded, response.Status)
		s.Equal(expectedResult.Message, response.Message)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id (required)", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil)},
			{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0)},
			{name: "negative last_known_stock", mutate: testutil.Field("last_known_stock", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unauthenticated",
				commandsError:  commands.ErrUnauthenticated,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Authentication required",
			},
			{
				name:           "invalid quantity",
				commandsError:  commands.ErrInvalidQuantity,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Quantity must be at least 1",
			},
			{
				name:           "product not found",
				commandsError:  commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "insufficient stock",
				commandsError:  commands.ErrInsufficientStock,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient stock",
			},
			{
				name:           "store unreachable",
				commandsError:  commands.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddToCart(gomock.Any(), s.userID, product.ID, int32(2), product.StockCount).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
