package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dcastaneda/mercato-backend/internal/orders"
	"github.com/dcastaneda/mercato-backend/internal/products"
	"github.com/dcastaneda/mercato-backend/pkg/config"
	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/dcastaneda/mercato-backend/pkg/enums"
	pkgerrors "github.com/dcastaneda/mercato-backend/pkg/errors"
	"github.com/dcastaneda/mercato-backend/pkg/logger"
	"github.com/dcastaneda/mercato-backend/pkg/metrics"
)

const (
	reportAnalytics = "vendor_analytics"
	reportDashboard = "vendor_dashboard"

	dashboardStatsRange  = "30d"
	dashboardTrendMonths = 12
)

var timeNowUTC = func() time.Time { return time.Now().UTC() }

// Service computes vendor-scoped reports over the shared order store.
type Service interface {
	// VendorAnalytics builds the range-scoped report. No status filter is
	// applied here: a cancelled order still counts when it carries items
	// attributable to the vendor.
	VendorAnalytics(ctx context.Context, vendorStoreID uuid.UUID, rangeToken string) (*VendorAnalytics, error)
	// VendorDashboard builds the dashboard payload. Cancelled orders are
	// excluded from stats, trends and fulfillment; the recent-orders table
	// still lists them so vendors see the status change.
	VendorDashboard(ctx context.Context, vendorStoreID uuid.UUID) (*VendorDashboard, error)
}

type service struct {
	orders   orders.Repository
	products products.Repository
	cache    *dashboardCache
	engine   *metrics.EngineMetrics
	logg     *logger.Logger
	cfg      config.AnalyticsConfig
}

// NewService builds the analytics service. The cache store may be nil when
// the dashboard cache is disabled.
func NewService(ordersRepo orders.Repository, productsRepo products.Repository, cache cacheStore, engine *metrics.EngineMetrics, logg *logger.Logger, cfg config.AnalyticsConfig) (Service, error) {
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if productsRepo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{
		orders:   ordersRepo,
		products: productsRepo,
		cache:    newDashboardCache(cache, cfg.DashboardCacheTTL, logg),
		engine:   engine,
		logg:     logg,
		cfg:      cfg,
	}, nil
}

func (s *service) VendorAnalytics(ctx context.Context, vendorStoreID uuid.UUID, rangeToken string) (*VendorAnalytics, error) {
	started := time.Now()
	report, err := s.computeAnalytics(ctx, vendorStoreID, rangeToken)
	s.engine.ObserveDuration(reportAnalytics, time.Since(started))
	if err != nil {
		s.engine.IncFailure(reportAnalytics)
		return nil, err
	}
	s.engine.IncSuccess(reportAnalytics)
	return report, nil
}

func (s *service) computeAnalytics(ctx context.Context, vendorStoreID uuid.UUID, rangeToken string) (*VendorAnalytics, error) {
	now := timeNowUTC()
	rangeToken = NormalizeRangeToken(rangeToken)
	periods := ResolvePeriods(rangeToken, now)

	catalog, err := s.products.FindByStore(ctx, vendorStoreID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor catalog")
	}
	owned := OwnedProductSet(catalog)

	fetched, err := s.orders.FindByProductsAndDateRange(ctx, productIDs(catalog), periods.Previous.Start, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load attributed orders")
	}

	attributed := AttributeOrders(fetched, owned)
	current, previous := splitByWindow(attributed, periods.Current)

	var (
		summary RevenueOrdersSummary
		daily   []BucketPoint
		buyers  CustomerBreakdown
		ranked  []ProductSalesEntry
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary = SummarizePeriods(current, previous)
		daily = DailyBuckets(periods.Current, current)
		return nil
	})
	g.Go(func() error {
		buyers = ClassifyCustomers(attributed, periods.Current)
		return nil
	})
	g.Go(func() error {
		ranked = RankProductSales(catalog, current, s.cfg.TopProductLimit)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"store_id":    vendorStoreID.String(),
			"range":       rangeToken,
			"order_count": len(attributed),
		}), "analytics.vendor_report")
	}

	points := trendPoints(daily)
	return &VendorAnalytics{
		Range: rangeToken,
		Revenue: RevenueBlock{
			Total:  CentsToAmount(summary.Current.RevenueCents),
			Change: summary.RevenueChange,
			Data:   points,
		},
		Orders: OrdersBlock{
			Total:  summary.Current.OrderCount,
			Change: summary.OrderChange,
			Data:   points,
		},
		Products: ProductsBlock{
			Total:      len(catalog),
			TopSelling: topProducts(ranked),
		},
		Customers: CustomersBlock{
			Total:     buyers.Total,
			New:       buyers.New,
			Returning: buyers.Returning,
		},
	}, nil
}

func (s *service) VendorDashboard(ctx context.Context, vendorStoreID uuid.UUID) (*VendorDashboard, error) {
	if cached, ok := s.cache.Get(ctx, vendorStoreID); ok {
		return cached, nil
	}

	started := time.Now()
	payload, err := s.computeDashboard(ctx, vendorStoreID)
	s.engine.ObserveDuration(reportDashboard, time.Since(started))
	if err != nil {
		s.engine.IncFailure(reportDashboard)
		return nil, err
	}
	s.engine.IncSuccess(reportDashboard)

	s.cache.Put(ctx, vendorStoreID, payload)
	return payload, nil
}

func (s *service) computeDashboard(ctx context.Context, vendorStoreID uuid.UUID) (*VendorDashboard, error) {
	now := timeNowUTC()
	statsPeriods := ResolvePeriods(dashboardStatsRange, now)
	trendStart := MonthStart(now).AddDate(0, -(dashboardTrendMonths - 1), 0)
	fetchStart := trendStart
	if statsPeriods.Previous.Start.Before(fetchStart) {
		fetchStart = statsPeriods.Previous.Start
	}

	catalog, err := s.products.FindByStore(ctx, vendorStoreID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load vendor catalog")
	}
	owned := OwnedProductSet(catalog)

	fetched, err := s.orders.FindByProductsAndDateRange(ctx, productIDs(catalog), fetchStart, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load attributed orders")
	}

	attributed := AttributeOrders(fetched, owned)
	settled := excludeCancelled(attributed)
	current, previous := splitByWindow(settled, statsPeriods.Current)

	lastMonth := Window{Start: MonthStart(now).AddDate(0, -1, 0), End: MonthStart(now)}

	var (
		summary     RevenueOrdersSummary
		monthly     []BucketPoint
		ranked      []ProductSalesEntry
		recent      []RecentOrder
		fulfillment OrderFulfillment
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary = SummarizePeriods(current, previous)
		return nil
	})
	g.Go(func() error {
		monthly = MonthlyBuckets(now, dashboardTrendMonths, settled)
		return nil
	})
	g.Go(func() error {
		ranked = RankProductSales(catalog, current, s.cfg.TopProductLimit)
		return nil
	})
	g.Go(func() error {
		recent = recentOrders(attributed, s.cfg.RecentOrderLimit)
		return nil
	})
	g.Go(func() error {
		rate, delivered, total := FulfillmentRate(filterByWindow(attributed, lastMonth))
		fulfillment = OrderFulfillment{Rate: rate, Delivered: delivered, Total: total}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	active := 0
	for _, product := range catalog {
		if product.IsActive {
			active++
		}
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"store_id":    vendorStoreID.String(),
			"order_count": len(attributed),
		}), "analytics.vendor_dashboard")
	}

	return &VendorDashboard{
		Stats: DashboardStats{
			TotalRevenue:   CentsToAmount(summary.Current.RevenueCents),
			TotalOrders:    summary.Current.OrderCount,
			RevenueChange:  summary.RevenueChange,
			OrderChange:    summary.OrderChange,
			TotalProducts:  len(catalog),
			ActiveProducts: active,
		},
		RecentOrders:     recent,
		LowStockProducts: lowStockProducts(catalog, s.cfg.LowStockThreshold),
		MonthlySales:     trendPoints(monthly),
		TopProducts:      topProducts(ranked),
		OrderFulfillment: fulfillment,
	}, nil
}

func productIDs(catalog []models.Product) []uuid.UUID {
	ids := make([]uuid.UUID, len(catalog))
	for i, product := range catalog {
		ids[i] = product.ID
	}
	return ids
}

func splitByWindow(attributed []AttributedOrder, current Window) (in, before []AttributedOrder) {
	for _, entry := range attributed {
		if current.Contains(entry.Order.CreatedAt) {
			in = append(in, entry)
		} else if entry.Order.CreatedAt.Before(current.Start) {
			before = append(before, entry)
		}
	}
	return in, before
}

func filterByWindow(attributed []AttributedOrder, window Window) []AttributedOrder {
	var matched []AttributedOrder
	for _, entry := range attributed {
		if window.Contains(entry.Order.CreatedAt) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func excludeCancelled(attributed []AttributedOrder) []AttributedOrder {
	kept := make([]AttributedOrder, 0, len(attributed))
	for _, entry := range attributed {
		if entry.Order.Status == enums.OrderStatusCancelled {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// recentOrders expects the input in ascending creation order, the way the
// repository returns it.
func recentOrders(attributed []AttributedOrder, limit int) []RecentOrder {
	if limit <= 0 {
		return []RecentOrder{}
	}
	recent := make([]RecentOrder, 0, limit)
	for i := len(attributed) - 1; i >= 0 && len(recent) < limit; i-- {
		entry := attributed[i]
		recent = append(recent, RecentOrder{
			OrderID:      entry.Order.ID,
			OrderNumber:  entry.Order.OrderNumber,
			CustomerName: customerName(entry.Order.Customer),
			Status:       entry.Order.Status.String(),
			Amount:       CentsToAmount(entry.RevenueCents),
			PlacedAt:     entry.Order.CreatedAt,
		})
	}
	return recent
}

func customerName(customer *models.Customer) string {
	if customer == nil {
		return ""
	}
	name := customer.FirstName
	if customer.LastName != "" {
		if name != "" {
			name += " "
		}
		name += customer.LastName
	}
	return name
}

func lowStockProducts(catalog []models.Product, threshold int) []LowStockProduct {
	low := make([]LowStockProduct, 0)
	for _, product := range catalog {
		if !product.IsActive || product.StockQty > threshold {
			continue
		}
		low = append(low, LowStockProduct{
			ProductID: product.ID,
			Title:     product.Title,
			SKU:       product.SKU,
			Image:     product.PrimaryImage(),
			StockQty:  product.StockQty,
		})
	}
	return low
}

func trendPoints(buckets []BucketPoint) []TrendPoint {
	points := make([]TrendPoint, len(buckets))
	for i, bucket := range buckets {
		points[i] = TrendPoint{
			Label:   bucket.Label,
			Revenue: CentsToAmount(bucket.RevenueCents),
			Orders:  bucket.OrderCount,
		}
	}
	return points
}

func topProducts(entries []ProductSalesEntry) []TopProduct {
	top := make([]TopProduct, len(entries))
	for i, entry := range entries {
		top[i] = TopProduct{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Image:     entry.Image,
			UnitsSold: entry.UnitsSold,
			Revenue:   CentsToAmount(entry.RevenueCents),
		}
	}
	return top
}
