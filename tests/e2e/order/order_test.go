//go:build e2e

package order_test

import (
	"net/http"
	"sync"
	"testing"

	"restaurant-pos/internal/handler/dto/request"
	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/infra/repository"
	"restaurant-pos/tests/common/authtest"
	"restaurant-pos/tests/common/dbtest"
	"restaurant-pos/tests/common/httptest"
	"restaurant-pos/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL  = "/api/orders"
	kitchenURL = "/api/kitchen/orders"
	beepersURL = "/api/beepers"
)

type orderSuite struct {
	e2e.SharedSuite

	cashierToken string
	chefToken    string
	productID    uuid.UUID
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用のスタッフとカタログを用意
	s.cashierToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cashier@example.com", "cashier")
	s.chefToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "chef@example.com", "chef")

	categoryID := dbtest.CreateTestCategory(s.T(), s.DB, "Pizza")
	s.productID = dbtest.CreateTestProduct(s.T(), s.DB, categoryID, "Margherita", 600)
}

func (s *orderSuite) createOrder(beeperID int32) *resdto.OrderResponse {
	reqBody := request.CreateOrderRequest{
		BeeperID: beeperID,
		Items:    []request.OrderItemRequest{{ProductID: &s.productID, Qty: 2}},
	}

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var created resdto.OrderResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &created)
	return &created
}

func (s *orderSuite) TestCreateOrder() {
	s.Run("注文を確定すると当日の連番とビーパーが割り当てられること", func() {
		t := s.T()

		created := s.createOrder(1)
		require.Equal(t, int32(1), created.Number, "当日最初の注文番号は1")
		require.Equal(t, "in_kitchen", created.Status)
		require.Equal(t, int32(1), created.BeeperID)
		require.Equal(t, int64(1200), created.TotalCents, "600セント×2")
		require.Len(t, created.Lines, 1)

		// ビーパーが使用中になっていること
		var beeperStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 1").Scan(&beeperStatus)
		require.NoError(t, err)
		require.Equal(t, "in_use", beeperStatus)
	})

	s.Run("使用中のビーパーを指定すると409になること", func() {
		t := s.T()

		s.createOrder(3)

		reqBody := request.CreateOrderRequest{
			BeeperID: 3,
			Items:    []request.OrderItemRequest{{ProductID: &s.productID, Qty: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// 失敗した注文は作られていないこと
		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "失敗した確定で注文が増えてはいけない")

		// 失敗した確定でカウンタが進んでいないこと（次の成功注文は2番）
		next := s.createOrder(4)
		require.Equal(t, int32(2), next.Number, "ロールバック後も番号は連続する")
	})

	s.Run("存在しない商品を指定すると404になり注文もビーパー予約も残らないこと", func() {
		t := s.T()

		unknown := uuid.New()
		reqBody := request.CreateOrderRequest{
			BeeperID: 2,
			Items:    []request.OrderItemRequest{{ProductID: &unknown, Qty: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM orders").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count)

		var beeperStatus string
		err = s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 2").Scan(&beeperStatus)
		require.NoError(t, err)
		require.Equal(t, "available", beeperStatus, "ロールバックでビーパーは解放されるべき")
	})

	s.Run("自由入力の商品は指定単価で計上されること", func() {
		t := s.T()

		name := "Off-menu special"
		price := int64(850)
		reqBody := request.CreateOrderRequest{
			BeeperID: 4,
			Items: []request.OrderItemRequest{
				{ProductID: &s.productID, Qty: 1},
				{CustomName: &name, Qty: 3, UnitPriceCents: &price},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.OrderResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, int64(600+850*3), created.TotalCents)
	})

	s.Run("シェフは注文を確定できないこと", func() {
		t := s.T()

		reqBody := request.CreateOrderRequest{
			BeeperID: 5,
			Items:    []request.OrderItemRequest{{ProductID: &s.productID, Qty: 1}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.chefToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *orderSuite) TestConcurrentAdmissions() {
	s.Run("同時確定でも注文番号が重複しないこと", func() {
		t := s.T()

		const workers = 10
		codes := make([]int, workers)
		numbers := make([]int32, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := request.CreateOrderRequest{
					BeeperID: int32(i + 1), // ビーパーは各ワーカーで別
					Items:    []request.OrderItemRequest{{ProductID: &s.productID, Qty: 1}},
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
				codes[i] = w.Code
				if w.Code == http.StatusCreated {
					var created resdto.OrderResponse
					httptest.DecodeResponseBody(t, w.Body, &created)
					numbers[i] = created.Number
				}
			}()
		}
		wg.Wait()

		seen := make(map[int32]bool, workers)
		for i := range workers {
			require.Equal(t, http.StatusCreated, codes[i], "全ての確定が成功するべき")
			require.False(t, seen[numbers[i]], "注文番号 %d が重複", numbers[i])
			seen[numbers[i]] = true
		}

		// 採番に抜けがないこと
		for n := int32(1); n <= workers; n++ {
			require.True(t, seen[n], "注文番号 %d が欠番", n)
		}
	})

	s.Run("同じビーパーへの同時確定はちょうど1件だけ成功すること", func() {
		t := s.T()

		const workers = 5
		codes := make([]int, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := request.CreateOrderRequest{
					BeeperID: 7,
					Items:    []request.OrderItemRequest{{ProductID: &s.productID, Qty: 1}},
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, s.cashierToken)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var created, conflicted int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "成功はちょうど1件")
		require.Equal(t, workers-1, conflicted, "残りは409")
	})
}

func (s *orderSuite) TestOrderLifecycle() {
	s.Run("注文がキッチンから提供まで流れること", func() {
		t := s.T()

		created := s.createOrder(6)

		// キッチンキューに載っていること
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, kitchenURL, nil, s.chefToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var queue []resdto.OrderResponse
		httptest.DecodeResponseBody(t, w.Body, &queue)
		require.Len(t, queue, 1)
		require.Equal(t, created.ID, queue[0].ID)

		// シェフが調理完了にする
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, kitchenURL+"/"+created.ID.String()+"/ready", nil, s.chefToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var ready resdto.OrderResponse
		httptest.DecodeResponseBody(t, w.Body, &ready)
		require.Equal(t, "ready", ready.Status)
		require.NotNil(t, ready.ChefID, "readyでシェフが記録される")

		// readyの間ビーパーは使用中のまま
		var beeperStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 6").Scan(&beeperStatus)
		require.NoError(t, err)
		require.Equal(t, "in_use", beeperStatus)

		// キャッシャーが提供済みにする
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/deliver", nil, s.cashierToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var delivered resdto.OrderResponse
		httptest.DecodeResponseBody(t, w.Body, &delivered)
		require.Equal(t, "delivered", delivered.Status)
		require.NotNil(t, delivered.DeliveredAt)

		// 提供でビーパーが解放される
		err = s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 6").Scan(&beeperStatus)
		require.NoError(t, err)
		require.Equal(t, "available", beeperStatus)
	})

	s.Run("調理中の注文は提供できないこと", func() {
		t := s.T()

		created := s.createOrder(8)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/deliver", nil, s.cashierToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("提供済みの注文は再度操作できないこと", func() {
		t := s.T()

		created := s.createOrder(9)
		httptest.PerformRequest(t, s.Router, http.MethodPost, kitchenURL+"/"+created.ID.String()+"/ready", nil, s.chefToken)
		httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/deliver", nil, s.cashierToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/deliver", nil, s.cashierToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/cancel", nil, s.cashierToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("調理中の注文を取り消すとビーパーが解放されること", func() {
		t := s.T()

		created := s.createOrder(10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/"+created.ID.String()+"/cancel", nil, s.cashierToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled resdto.OrderResponse
		httptest.DecodeResponseBody(t, w.Body, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)

		var beeperStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 10").Scan(&beeperStatus)
		require.NoError(t, err)
		require.Equal(t, "available", beeperStatus)
	})

	s.Run("キャッシャーは調理完了にできないこと", func() {
		t := s.T()

		created := s.createOrder(11)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, kitchenURL+"/"+created.ID.String()+"/ready", nil, s.cashierToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *orderSuite) TestBeeperList() {
	s.Run("ビーパー一覧が在庫と使用状況を返すこと", func() {
		t := s.T()

		s.createOrder(1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, beepersURL, nil, s.cashierToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var beepers []resdto.BeeperResponse
		httptest.DecodeResponseBody(t, w.Body, &beepers)
		require.Len(t, beepers, 18)
		require.Equal(t, "in_use", beepers[0].Status)
		require.Equal(t, "available", beepers[1].Status)
	})
}

func (s *orderSuite) TestBeeperRelease() {
	s.Run("空きビーパーへの解放は何度でも冪等であること", func() {
		t := s.T()

		repo := repository.NewBeeperRepository()

		// 使用中にしてから解放
		created := s.createOrder(5)
		require.Equal(t, int32(5), created.BeeperID)
		require.NoError(t, repo.Release(t.Context(), s.DB, 5))

		var status string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 5").Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "available", status)

		// すでに空きのビーパーを解放してもエラーにならず状態も変わらないこと
		require.NoError(t, repo.Release(t.Context(), s.DB, 5))

		err = s.DB.QueryRow(t.Context(), "SELECT status FROM beepers WHERE id = 5").Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "available", status)
	})
}
