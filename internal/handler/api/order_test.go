//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"restaurant-pos/internal/handler/api"
	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/pkg/clock"
	"restaurant-pos/internal/pkg/config"
	"restaurant-pos/internal/usecase/commands"
	"restaurant-pos/internal/usecase/queries"
	"restaurant-pos/tests/common/builder"
	"restaurant-pos/tests/common/httptest"
	"restaurant-pos/tests/common/testutil"
	commandsmock "restaurant-pos/tests/mock/commands"
	queriesmock "restaurant-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	cashierID    uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.cashierID = uuid.New()

	mockClock := clock.NewMockClock(time.Date(2025, 6, 14, 13, 0, 0, 0, time.UTC))
	handler, err := api.NewOrderHandler(s.mockCommands, s.mockQueries, mockClock, config.NewTestConfig().POS)
	s.Require().NoError(err)
	s.handler = handler

	// Mock middleware behavior: an authenticated cashier
	authed := func(c *gin.Context) {
		c.Set("user_id", s.cashierID)
		c.Next()
	}

	s.router.POST("/orders", authed, s.handler.CreateOrder)
	s.router.GET("/orders", s.handler.ListOrders)
	s.router.GET("/orders/:id", s.handler.GetOrder)
	s.router.POST("/orders/:id/deliver", authed, s.handler.DeliverOrder)
	s.router.POST("/orders/:id/cancel", authed, s.handler.CancelOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"

	reqBody := builder.NewOrderBuilder().BuildDTO()
	returnView := builder.NewOrderBuilder().BuildReadModel()

	s.Run("success: returns 201 Created with the admitted order", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.cashierID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Number, response.Number)
		s.Equal(returnView.BeeperID, response.BeeperID)
		s.Len(response.Lines, len(returnView.Lines))
	})

	s.Run("error: 404 when the beeper does not exist", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.cashierID).
			Return(nil, commands.ErrBeeperNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Beeper not found")
	})

	s.Run("error: 409 when the beeper is already paging another order", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.cashierID).
			Return(nil, commands.ErrBeeperInUse).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Beeper is already in use")
	})

	s.Run("error: 404 when a catalog item is unknown or inactive", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.cashierID).
			Return(nil, commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 422 when the order fails domain validation", func() {
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.cashierID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Order validation failed")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: beeper_id (required)", mutate: testutil.Field("beeper_id", nil)},
			{name: "beeper_id below minimum", mutate: testutil.Field("beeper_id", 0)},
			{name: "missing field: items (required)", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestListOrders() {
	items := []*queries.OrderListItem{
		{ID: uuid.New(), Number: 2, Status: "ready", BeeperID: 5, TotalCents: 1700, CreatedAt: time.Now()},
		{ID: uuid.New(), Number: 1, Status: "in_kitchen", BeeperID: 3, TotalCents: 990, CreatedAt: time.Now()},
	}

	s.Run("success: returns the day's orders", func() {
		s.mockQueries.EXPECT().ListByBusinessDate(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "")

		var response []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].Number, response[0].Number)
	})

	s.Run("success: passes the status filter through", func() {
		s.mockQueries.EXPECT().ListByBusinessDate(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?status=ready", nil, "")

		var response []resdto.OrderListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 on unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?status=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	returnView := builder.NewOrderBuilder().BuildReadModel()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+returnView.ID.String(), nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})
}

func (s *OrderHandlerTestSuite) TestDeliverOrder() {
	returnView := builder.NewOrderBuilder().BuildReadModel()
	returnView.Status = "delivered"

	s.Run("success: returns 200 OK with the delivered order", func() {
		s.mockCommands.EXPECT().Deliver(gomock.Any(), returnView.ID, s.cashierID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+returnView.ID.String()+"/deliver", nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("delivered", response.Status)
	})

	s.Run("error: 404 when the order does not exist", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().Deliver(gomock.Any(), orderID, s.cashierID).
			Return(nil, commands.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+orderID.String()+"/deliver", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 409 when the order is not ready", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().Deliver(gomock.Any(), orderID, s.cashierID).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+orderID.String()+"/deliver", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Order cannot change")
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	returnView := builder.NewOrderBuilder().BuildReadModel()
	returnView.Status = "cancelled"

	s.Run("success: returns 200 OK with the cancelled order", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), returnView.ID, s.cashierID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+returnView.ID.String()+"/cancel", nil, "")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: 409 when the order is already terminal", func() {
		orderID := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID, s.cashierID).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/"+orderID.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Order cannot change")
	})
}
