package analytics

import (
	"net/http"
	"strings"

	"github.com/dcastaneda/mercato-backend/api/controllers/vendorcontext"
	"github.com/dcastaneda/mercato-backend/api/responses"
	"github.com/dcastaneda/mercato-backend/internal/analytics"
	"github.com/dcastaneda/mercato-backend/pkg/logger"
)

// VendorAnalytics serves the range-scoped report for the authenticated
// vendor store. The range token is optional; unknown tokens resolve to the
// default window rather than failing the request.
func VendorAnalytics(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		storeID, err := vendorcontext.ResolveVendorStoreID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		rangeToken := strings.TrimSpace(r.URL.Query().Get("range"))
		report, err := service.VendorAnalytics(ctx, storeID, rangeToken)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// VendorDashboard serves the combined dashboard payload for the
// authenticated vendor store.
func VendorDashboard(service analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		storeID, err := vendorcontext.ResolveVendorStoreID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload, err := service.VendorDashboard(ctx, storeID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, payload)
	}
}
