//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"restaurant-pos/internal/handler/dto/request"
	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/tests/common/authtest"
	"restaurant-pos/tests/common/dbtest"
	"restaurant-pos/tests/common/httptest"
	"restaurant-pos/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL   = "/api/admin/products"
	categoriesURL = "/api/admin/categories"
	usersURL      = "/api/admin/users"
)

type adminSuite struct {
	e2e.SharedSuite

	adminToken string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
}

func (s *adminSuite) TestCategoryCRUD() {
	s.Run("カテゴリの作成・更新・削除ができること", func() {
		t := s.T()

		reqBody := request.CreateCategoryRequest{Name: "Drinks", SortOrder: 2}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, categoriesURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.CategoryResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "Drinks", created.Name)

		updateBody := request.UpdateCategoryRequest{Name: "Cold Drinks", SortOrder: 1}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, categoriesURL+"/"+created.ID.String(), updateBody, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, categoriesURL+"/"+created.ID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("商品が残っているカテゴリは削除できないこと", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Pizza")
		dbtest.CreateTestProduct(t, s.DB, categoryID, "Margherita", 600)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, categoriesURL+"/"+categoryID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *adminSuite) TestProductCRUD() {
	s.Run("商品の作成と無効化ができること", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Pizza")

		reqBody := request.CreateProductRequest{CategoryID: categoryID, Name: "Diavola", PriceCents: 750}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.ProductResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, int64(750), created.PriceCents)
		require.True(t, created.IsActive)

		// 無効化するとレジのカタログから消えること
		updateBody := request.UpdateProductRequest{CategoryID: categoryID, Name: "Diavola", PriceCents: 750, IsActive: false}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, productsURL+"/"+created.ID.String(), updateBody, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/catalog/products", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var register []resdto.ProductResponse
		httptest.DecodeResponseBody(t, w.Body, &register)
		for _, p := range register {
			require.NotEqual(t, created.ID, p.ID, "無効化した商品がレジに出ている")
		}

		// 管理一覧には無効な商品も出ること
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var all []resdto.ProductResponse
		httptest.DecodeResponseBody(t, w.Body, &all)
		require.Len(t, all, 1)
	})

	s.Run("存在しないカテゴリへの商品作成は404になること", func() {
		t := s.T()

		reqBody := request.CreateProductRequest{CategoryID: uuid.New(), Name: "Orphan", PriceCents: 100}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("注文実績のある商品は削除できないこと", func() {
		t := s.T()

		categoryID := dbtest.CreateTestCategory(t, s.DB, "Pizza")
		productID := dbtest.CreateTestProduct(t, s.DB, categoryID, "Margherita", 600)

		cashierToken := authtest.CreateAndLogin(t, s.DB, s.Router, "cashier@example.com", "cashier")
		orderBody := request.CreateOrderRequest{
			BeeperID: 1,
			Items:    []request.OrderItemRequest{{ProductID: &productID, Qty: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", orderBody, cashierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, productsURL+"/"+productID.String(), nil, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *adminSuite) TestUserCRUD() {
	s.Run("スタッフの作成と無効化ができること", func() {
		t := s.T()

		reqBody := request.CreateUserRequest{Email: "newchef@example.com", Password: "password123", Role: "chef"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 作成したスタッフでログインできること
		authtest.LoginUser(t, s.Router, "newchef@example.com", "password123")
	})

	s.Run("同じメールアドレスのスタッフは作成できないこと", func() {
		t := s.T()

		reqBody := request.CreateUserRequest{Email: "dup@example.com", Password: "password123", Role: "cashier"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
