//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"storefront/internal/domain/user"
	"storefront/internal/handler/dto/request"
	"storefront/internal/handler/dto/response"
	"storefront/internal/pkg/cookie"
	"storefront/tests/common/authtest"
	"storefront/tests/common/dbtest"
	"storefront/tests/common/httptest"
	"storefront/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "shopper@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "shopper@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "shopper@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: authtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "shopper@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, tt.email, res.User.Email)
			require.Equal(t, string(user.RoleCustomer), res.User.Role)

			require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "new customer",
			req:            request.RegisterRequest{Email: "new@example.com", Password: "password123", FullName: "New Shopper"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "email already taken",
			req:            request.RegisterRequest{Email: "shopper@example.com", Password: "password123", FullName: "Dup"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "short password",
			req:            request.RegisterRequest{Email: "short@example.com", Password: "short", FullName: "Short"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusCreated {
				return
			}
			var res response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.Equal(t, string(user.RoleCustomer), res.User.Role, "self-registration must never grant staff roles")

			me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
			require.Equal(t, http.StatusOK, me.Code)
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name: "valid refresh token",
			token: func() string {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "shopper@example.com", Password: authtest.DefaultPassword}, "")
				c := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
				require.NotNil(s.T(), c)
				return c.Value
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed refresh token",
			token:          func() string { return "invalid-refresh-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "access token used as refresh token",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "shopper@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing refresh token",
			token:          func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
				request.RefreshRequest{RefreshToken: tt.token()}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.RefreshResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name: "authenticated",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "shopper@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{name: "invalid token", token: func() string { return "invalid-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "no token", token: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.token())
			require.Equal(s.T(), tt.expectedStatus, w.Code)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setup          func() (email, role, token string)
		expectedStatus int
	}{
		{
			name: "admin",
			setup: func() (string, string, string) {
				return "admin@example.com", string(user.RoleAdmin),
					authtest.LoginUser(s.T(), s.Router, "admin@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "freshly created staff member",
			setup: func() (string, string, string) {
				email := "staff2@example.com"
				role := string(user.RoleStaff)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid token",
			setup:          func() (string, string, string) { return "", "", "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setup:          func() (string, string, string) { return "", "", "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setup()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email)
				require.Contains(t, body, role)
				require.NotContains(t, body, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		email := "expiry@example.com"
		userID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleCustomer))
		expired := s.jwt.CreateExpiredToken(t, userID, email, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleGuards() {
	tests := []struct {
		name           string
		email          string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "customer cannot reach admin catalog", email: "shopper@example.com", method: http.MethodGet, path: "/api/admin/products", expectedStatus: http.StatusForbidden},
		{name: "staff reaches admin catalog", email: "staff@example.com", method: http.MethodGet, path: "/api/admin/products", expectedStatus: http.StatusOK},
		{name: "staff cannot delete coupons", email: "staff@example.com", method: http.MethodDelete, path: "/api/admin/coupons/00000000-0000-0000-0000-000000000001", expectedStatus: http.StatusForbidden},
		{name: "admin deletes missing coupon", email: "admin@example.com", method: http.MethodDelete, path: "/api/admin/coupons/00000000-0000-0000-0000-000000000001", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := authtest.LoginUser(t, s.Router, tt.email, authtest.DefaultPassword)
			w := httptest.PerformRequest(t, s.Router, tt.method, tt.path, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous calls", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/cart"},
			{http.MethodPost, "/api/orders"},
			{http.MethodGet, "/api/admin/orders"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two sessions stay valid", func() {
		t := s.T()

		email := "concurrent@example.com"
		dbtest.CreateTestUser(t, s.DB, email, string(user.RoleCustomer))

		token1 := authtest.LoginUser(t, s.Router, email, authtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, email, authtest.DefaultPassword)
		require.NotEqual(t, token1, token2)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
