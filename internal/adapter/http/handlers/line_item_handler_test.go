package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"scopeworks/internal/adapter/http/handlers/mocks"
	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

func TestLineItemHandler_CreateLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing base hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items", h.CreateLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items", bytes.NewBufferString(`{"description":"API work"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("frozen estimate maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items", h.CreateLineItem)

		uc.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.LineItem{}, &entities.StateError{Status: entities.EstimateStatusFinal, Operation: "create line item"})

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items", bytes.NewBufferString(`{"base_hours":10,"rate":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items", h.CreateLineItem)

		uc.EXPECT().Create(gomock.Any(), "est-1", gomock.Any()).Return(entities.LineItem{
			ID: "li-1", EstimateID: "est-1", BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
			Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
			AdjustedHours: 13.86, TotalAmount: 2079, TotalCost: 1386, Margin: 693, MarginPercent: 33.33,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items",
			bytes.NewBufferString(`{"base_hours":10,"rate":150,"cost_rate":100,"size":"medium","complexity":"large","confidence":"low"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["adjusted_hours"] != 13.86 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestLineItemHandler_SplitLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns both children", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items/:item_id/split", h.SplitLineItem)

		uc.EXPECT().Split(gomock.Any(), "est-1", "li-1", 6.0, 4.0).Return([]entities.LineItem{
			{ID: "li-2", EstimateID: "est-1", BaseHours: 6},
			{ID: "li-3", EstimateID: "est-1", BaseHours: 4},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items/li-1/split",
			bytes.NewBufferString(`{"first_hours":6,"second_hours":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items/:item_id/split", h.SplitLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items/li-1/split",
			bytes.NewBufferString(`{"first_hours":6}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_BulkAssignLineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial failure still returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items/bulk-assign", h.BulkAssignLineItems)

		uc.EXPECT().BulkAssign(gomock.Any(), "est-1", []string{"li-1", "li-2"}, gomock.Any()).Return(usecase.BulkResult{
			Items:  []entities.LineItem{{ID: "li-1", EstimateID: "est-1"}},
			Failed: []usecase.BulkFailure{{ItemID: "li-2", Reason: "line item not found"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items/bulk-assign",
			bytes.NewBufferString(`{"item_ids":["li-1","li-2"],"role_id":"role-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if failed, ok := body["failed"].([]any); !ok || len(failed) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("empty item list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/line-items/bulk-assign", h.BulkAssignLineItems)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est-1/line-items/bulk-assign",
			bytes.NewBufferString(`{"item_ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestLineItemHandler_DeleteLineItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("referenced item maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:estimate_id/line-items/:item_id", h.DeleteLineItem)

		uc.EXPECT().Delete(gomock.Any(), "est-1", "li-1").
			Return(&entities.RefIntegrityError{Entity: "line item", BlockingItems: 1})

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1/line-items/li-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILineItemUseCase(ctrl)
		h := NewLineItemHandler(uc)

		r := gin.New()
		r.DELETE("/v1/estimates/:estimate_id/line-items/:item_id", h.DeleteLineItem)

		uc.EXPECT().Delete(gomock.Any(), "est-1", "li-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/estimates/est-1/line-items/li-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
