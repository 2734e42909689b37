//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pistachiohut/internal/handler/api"
	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/queries"
	"pistachiohut/tests/common/builder"
	"pistachiohut/tests/common/httptest"
	queriesmock "pistachiohut/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/products", s.handler.ListProducts)
	s.router.GET("/products/:id", s.handler.GetProduct)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// TestListProducts
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListProducts() {
	items := []*queries.ProductView{
		builder.NewProductBuilder().WithName("Roasted Pistachios").BuildView(),
		builder.NewProductBuilder().WithName("Almond Butter").WithDiscountedPriceCents(899).BuildView(),
	}

	s.Run("success: returns 200 OK with product list", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", queries.SortRecommended, queries.OrderAsc).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []*resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
		s.Equal(int64(899), response[1].EffectivePriceCents)
		s.True(response[1].Discounted)
	})

	s.Run("success: query parameters are forwarded", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "pistachio", queries.SortPrice, queries.OrderDesc).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?q=pistachio&sort=price&order=desc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown sort key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?sort=name", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort key")
	})

	s.Run("error: 400 Bad Request for unknown sort order", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?order=descending", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort order")
	})

	s.Run("error: 503 Service Unavailable when the catalog cannot be loaded", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", queries.SortRecommended, queries.OrderAsc).
			Return(nil, queries.ErrCatalogUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Catalog temporarily unavailable")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "", queries.SortRecommended, queries.OrderAsc).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetProduct
// ================================================================================

func (s *CatalogHandlerTestSuite) TestGetProduct() {
	view := builder.NewProductBuilder().WithAverageRating(4.2).BuildView()
	url := "/products/" + view.ID.String()

	s.Run("success: returns 200 OK with ProductResponse", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Name, response.Name)
		s.InDelta(4.2, response.AverageRating, 1e-9)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID format")
	})

	s.Run("error: 404 Not Found for missing product", func() {
		missing := uuid.New()
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), missing).
			Return(nil, queries.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+missing.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 503 Service Unavailable when the catalog cannot be loaded", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), view.ID).
			Return(nil, queries.ErrCatalogUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Catalog temporarily unavailable")
	})
}
