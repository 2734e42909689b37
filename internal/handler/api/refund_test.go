//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pistachiohut/internal/domain/refund"
	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/handler/api"
	"pistachiohut/internal/infra"
	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/internal/usecase/queries"
	"pistachiohut/tests/common/builder"
	"pistachiohut/tests/common/httptest"
	commandsmock "pistachiohut/tests/mock/commands"
	queriesmock "pistachiohut/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RefundHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRefundCommands
	mockQueries  *queriesmock.MockRefundQueries
	handler      *api.RefundHandler
}

func (s *RefundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRefundCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRefundQueries(s.mockCtrl)
	s.handler = api.NewRefundHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.GET("/admin/refunds", authMiddleware, s.handler.ListRefunds)
	s.router.POST("/admin/refunds/:orderId/accept", authMiddleware, s.handler.Accept)
	s.router.POST("/admin/refunds/:orderId/reject", authMiddleware, s.handler.Reject)
}

func (s *RefundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRefundHandlerSuite(t *testing.T) {
	suite.Run(t, new(RefundHandlerTestSuite))
}

func (s *RefundHandlerTestSuite) TestListRefunds() {
	items := []*queries.RefundView{
		builder.NewRefundBuilder().BuildView(),
		builder.NewRefundBuilder().WithStatus(refund.StatusAccepted).BuildView(),
	}

	s.Run("success: returns 200 OK with refund list", func() {
		s.mockQueries.EXPECT().ListRefunds(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/refunds", nil, "bearer-token")

		var response []*resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].OrderID, response[0].OrderID)
		s.Equal(string(refund.StatusAccepted), response[1].Status)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/refunds", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListRefunds(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/refunds", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 503 Service Unavailable when the store is unreachable", func() {
		s.mockQueries.EXPECT().ListRefunds(gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list refunds", errors.New("connection refused"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/refunds", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})
}

func (s *RefundHandlerTestSuite) TestAccept() {
	orderID := uuid.New()
	url := "/admin/refunds/" + orderID.String() + "/accept"

	refreshed := []*queries.RefundView{builder.NewRefundBuilder().WithStatus(refund.StatusAccepted).BuildView()}

	s.Run("success: returns 200 OK with the refreshed list", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), orderID).
			Return(commands.RefundResolved, refreshed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response []*resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(string(refund.StatusAccepted), response[0].Status)
	})

	s.Run("partial: returns 207 Multi-Status when issuance hand-off fails", func() {
		s.mockCommands.EXPECT().Accept(gomock.Any(), orderID).
			Return(commands.RefundAcceptedIssueFailed, refreshed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response []*resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusMultiStatus, &response)
		s.Len(response, 1)
		s.Equal(string(refund.StatusAccepted), response[0].Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/refunds/invalid-uuid/accept", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "refund not found",
				commandsError:  commands.ErrRefundNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Refund request not found",
			},
			{
				name:           "already resolved",
				commandsError:  commands.ErrRefundConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Refund request already resolved",
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
				s.mockCommands.EXPECT().Accept(gomock.Any(), orderID).
					Return(commands.RefundOutcome(""), nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RefundHandlerTestSuite) TestReject() {
	orderID := uuid.New()
	url := "/admin/refunds/" + orderID.String() + "/reject"

	refreshed := []*queries.RefundView{builder.NewRefundBuilder().WithStatus(refund.StatusRejected).BuildView()}

	s.Run("success: returns 200 OK with the refreshed list", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), orderID).
			Return(refreshed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response []*resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(string(refund.StatusRejected), response[0].Status)
	})

	s.Run("error: conflict on an already resolved request", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), orderID).
			Return(nil, commands.ErrRefundConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Refund request already resolved")
	})
}
