package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gyeonjeok/internal/usecase/interfaces"
	mock_interfaces "gyeonjeok/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(idp interfaces.IIdentityProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(idp), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		r := newAuthRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "unauthenticated, no token") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		r := newAuthRouter(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "token-without-scheme")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "unauthenticated, no token") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idp := mock_interfaces.NewMockIIdentityProvider(ctrl)
		idp.EXPECT().VerifyToken(gomock.Any(), "bad-token").
			Return(interfaces.Identity{}, interfaces.ErrInvalidToken)

		r := newAuthRouter(idp)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "unauthenticated, invalid token") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("verifier failure counts as invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idp := mock_interfaces.NewMockIIdentityProvider(ctrl)
		idp.EXPECT().VerifyToken(gomock.Any(), "token").
			Return(interfaces.Identity{}, errors.New("provider unreachable"))

		r := newAuthRouter(idp)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token scopes the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		idp := mock_interfaces.NewMockIIdentityProvider(ctrl)
		idp.EXPECT().VerifyToken(gomock.Any(), "good-token").
			Return(interfaces.Identity{ID: "user-1"}, nil)

		r := newAuthRouter(idp)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer good-token") // scheme is case-insensitive
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"userId":"user-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
