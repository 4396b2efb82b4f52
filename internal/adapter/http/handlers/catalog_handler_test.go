package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gyeonjeok/internal/adapter/http/handlers/mocks"
	"gyeonjeok/internal/adapter/http/middleware"
	"gyeonjeok/internal/domain/entities"
	"gyeonjeok/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func TestCatalogHandler_Suppliers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListSuppliers(gomock.Any(), "user-1").
			Return([]entities.Supplier{{CompanyName: "한빛건설"}}, nil)

		r := gin.New()
		r.GET("/v1/suppliers", asUser("user-1"), h.ListSuppliers)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "한빛건설") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("save invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/suppliers", asUser("user-1"), h.SaveSupplier)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save missing company name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SaveSupplier(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, usecase.ErrMissingCompanyName)

		r := gin.New()
		r.POST("/v1/suppliers", asUser("user-1"), h.SaveSupplier)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"companyName":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "supplier companyName is required") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("save success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SaveSupplier(gomock.Any(), "user-1", gomock.Any()).
			Return([]entities.Supplier{{CompanyName: "한빛건설"}}, nil)

		r := gin.New()
		r.POST("/v1/suppliers", asUser("user-1"), h.SaveSupplier)

		req := httptest.NewRequest(http.MethodPost, "/v1/suppliers", bytes.NewBufferString(`{"companyName":"한빛건설"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "supplier saved") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete passes path param through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().DeleteSupplier(gomock.Any(), "user-1", "한빛건설").
			Return([]entities.Supplier{}, nil)

		r := gin.New()
		r.DELETE("/v1/suppliers/:companyName", asUser("user-1"), h.DeleteSupplier)

		req := httptest.NewRequest(http.MethodDelete, "/v1/suppliers/한빛건설", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListSuppliers(gomock.Any(), "user-1").
			Return(nil, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.GET("/v1/suppliers", asUser("user-1"), h.ListSuppliers)

		req := httptest.NewRequest(http.MethodGet, "/v1/suppliers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "dynamodb") {
			t.Fatalf("internal detail leaked: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_Clients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("save missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SaveClient(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, usecase.ErrMissingClientName)

		r := gin.New()
		r.POST("/v1/clients", asUser("user-1"), h.SaveClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "client name is required") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete unknown name still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().DeleteClient(gomock.Any(), "user-1", "없는고객").
			Return([]entities.Client{}, nil)

		r := gin.New()
		r.DELETE("/v1/clients/:name", asUser("user-1"), h.DeleteClient)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clients/없는고객", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ItemTemplates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("save missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().SaveItemTemplate(gomock.Any(), "user-1", gomock.Any()).
			Return(nil, usecase.ErrMissingTemplateName)

		r := gin.New()
		r.POST("/v1/item-templates", asUser("user-1"), h.SaveItemTemplate)

		req := httptest.NewRequest(http.MethodPost, "/v1/item-templates", bytes.NewBufferString(`{"name":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "item template name is required") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListItemTemplates(gomock.Any(), "user-1").
			Return([]entities.ItemTemplate{{Name: "도배", Price: 150000}}, nil)

		r := gin.New()
		r.GET("/v1/item-templates", asUser("user-1"), h.ListItemTemplates)

		req := httptest.NewRequest(http.MethodGet, "/v1/item-templates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "도배") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
