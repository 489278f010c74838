package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/dcastaneda/mercato-backend/api/middleware"
	"github.com/dcastaneda/mercato-backend/internal/analytics"
	"github.com/dcastaneda/mercato-backend/pkg/enums"
	pkgerrors "github.com/dcastaneda/mercato-backend/pkg/errors"
)

type stubService struct {
	report    *analytics.VendorAnalytics
	dashboard *analytics.VendorDashboard
	err       error

	gotStoreID uuid.UUID
	gotRange   string
}

func (s *stubService) VendorAnalytics(ctx context.Context, vendorStoreID uuid.UUID, rangeToken string) (*analytics.VendorAnalytics, error) {
	s.gotStoreID = vendorStoreID
	s.gotRange = rangeToken
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func (s *stubService) VendorDashboard(ctx context.Context, vendorStoreID uuid.UUID) (*analytics.VendorDashboard, error) {
	s.gotStoreID = vendorStoreID
	if s.err != nil {
		return nil, s.err
	}
	return s.dashboard, nil
}

func vendorRequest(t *testing.T, target string, storeID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := middleware.WithStoreID(req.Context(), storeID.String())
	ctx = middleware.WithStoreType(ctx, enums.StoreTypeVendor)
	return req.WithContext(ctx)
}

func TestVendorAnalytics_PassesRangeAndStore(t *testing.T) {
	storeID := uuid.New()
	svc := &stubService{report: &analytics.VendorAnalytics{Range: "30d"}}
	handler := VendorAnalytics(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, vendorRequest(t, "/api/v1/vendor/analytics?range=30d", storeID))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotStoreID != storeID {
		t.Fatalf("store id = %s want %s", svc.gotStoreID, storeID)
	}
	if svc.gotRange != "30d" {
		t.Fatalf("range = %q want 30d", svc.gotRange)
	}

	var envelope struct {
		Data analytics.VendorAnalytics `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Range != "30d" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestVendorAnalytics_RejectsMissingStore(t *testing.T) {
	handler := VendorAnalytics(&stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendor/analytics", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestVendorAnalytics_RejectsBuyerStore(t *testing.T) {
	handler := VendorAnalytics(&stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendor/analytics", nil)
	ctx := middleware.WithStoreID(req.Context(), uuid.NewString())
	ctx = middleware.WithStoreType(ctx, enums.StoreTypeBuyer)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req.WithContext(ctx))

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestVendorAnalytics_MapsServiceError(t *testing.T) {
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeDependency, "order store unavailable")}
	handler := VendorAnalytics(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, vendorRequest(t, "/api/v1/vendor/analytics", uuid.New()))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestVendorDashboard_ReturnsPayload(t *testing.T) {
	storeID := uuid.New()
	svc := &stubService{dashboard: &analytics.VendorDashboard{
		Stats: analytics.DashboardStats{TotalRevenue: 125.5, TotalOrders: 3},
	}}
	handler := VendorDashboard(svc, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, vendorRequest(t, "/api/v1/vendor/dashboard", storeID))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotStoreID != storeID {
		t.Fatalf("store id = %s want %s", svc.gotStoreID, storeID)
	}

	var envelope struct {
		Data analytics.VendorDashboard `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Stats.TotalOrders != 3 {
		t.Fatalf("unexpected payload: %+v", envelope.Data.Stats)
	}
}

func TestVendorDashboard_RejectsMissingVendorContext(t *testing.T) {
	handler := VendorDashboard(&stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vendor/dashboard", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}
