//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"restaurant-pos/internal/handler/dto/request"
	"restaurant-pos/tests/common/authtest"
	"restaurant-pos/tests/common/dbtest"
	"restaurant-pos/tests/common/httptest"
	"restaurant-pos/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "cashier@example.com", "cashier")
	dbtest.CreateTestUser(s.T(), s.DB, "chef@example.com", "chef")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "cashier")

	// 非アクティブユーザーを作成
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "cashier@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "cashier@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "cashier@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// セッションクッキーが設定されること
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "アクセストークンのクッキーが無い")
				require.NotEmpty(t, accessCookie.Value)
				require.True(t, accessCookie.HttpOnly, "クッキーはHttpOnlyであるべき")

				// last_loginが更新されることを確認
				var lastLogin interface{}
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1 AND is_active = true", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("自分の情報が取得できること", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "chef@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		responseBody := w.Body.String()
		require.Contains(t, responseBody, "chef@example.com")
		require.Contains(t, responseBody, "chef")
		require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("認証なしでは拒否されること", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("無効なトークンは拒否されること", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが破棄されること", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie)
		require.Empty(t, accessCookie.Value)
		require.Negative(t, accessCookie.MaxAge)
	})
}

func (s *authSuite) TestRoleGating() {
	s.Run("管理エンドポイントは管理者のみアクセスできること", func() {
		t := s.T()

		cashierToken := authtest.LoginUser(t, s.Router, "cashier@example.com", "password123")
		chefToken := authtest.LoginUser(t, s.Router, "chef@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		for _, token := range []string{cashierToken, chefToken} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
			require.Equal(t, http.StatusForbidden, w.Code, "管理者以外は403")
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("キッチンエンドポイントにキャッシャーはアクセスできないこと", func() {
		t := s.T()

		cashierToken := authtest.LoginUser(t, s.Router, "cashier@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kitchen/orders", nil, cashierToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("レジ側の一覧にシェフはアクセスできないこと", func() {
		t := s.T()

		chefToken := authtest.LoginUser(t, s.Router, "chef@example.com", "password123")
		cashierToken := authtest.LoginUser(t, s.Router, "cashier@example.com", "password123")

		for _, path := range []string{"/api/orders", "/api/beepers"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, chefToken)
			require.Equal(t, http.StatusForbidden, w.Code, path)

			w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, cashierToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
	})
}
