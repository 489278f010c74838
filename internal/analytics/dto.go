package analytics

import (
	"time"

	"github.com/google/uuid"
)

// TrendPoint is a chart-ready bucket with monetary revenue and order count.
type TrendPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// TopProduct is one ranked catalog product with its attributed sales.
type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	UnitsSold int       `json:"units_sold"`
	Revenue   float64   `json:"revenue"`
}

// RevenueBlock reports period revenue with its change and daily series.
type RevenueBlock struct {
	Total  float64      `json:"total"`
	Change float64      `json:"change"`
	Data   []TrendPoint `json:"data"`
}

// OrdersBlock reports period order counts with change and daily series.
type OrdersBlock struct {
	Total  int          `json:"total"`
	Change float64      `json:"change"`
	Data   []TrendPoint `json:"data"`
}

// ProductsBlock reports catalog size and the top sellers for the period.
type ProductsBlock struct {
	Total      int          `json:"total"`
	TopSelling []TopProduct `json:"top_selling"`
}

// CustomersBlock reports the distinct-buyer breakdown for the period.
type CustomersBlock struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}

// VendorAnalytics is the range-scoped report for one vendor store.
type VendorAnalytics struct {
	Range     string         `json:"range"`
	Revenue   RevenueBlock   `json:"revenue"`
	Orders    OrdersBlock    `json:"orders"`
	Products  ProductsBlock  `json:"products"`
	Customers CustomersBlock `json:"customers"`
}

// DashboardStats is the headline card row of the vendor dashboard.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	RevenueChange  float64 `json:"revenue_change"`
	OrderChange    float64 `json:"order_change"`
	TotalProducts  int     `json:"total_products"`
	ActiveProducts int     `json:"active_products"`
}

// RecentOrder is one of the vendor's latest attributed orders. Amount covers
// only the vendor's line items, not the whole multi-vendor order.
type RecentOrder struct {
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  int64     `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	PlacedAt     time.Time `json:"placed_at"`
}

// LowStockProduct flags a listing at or below the stock threshold.
type LowStockProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	SKU       string    `json:"sku"`
	Image     string    `json:"image"`
	StockQty  int       `json:"stock_qty"`
}

// OrderFulfillment summarizes last month's delivery performance.
type OrderFulfillment struct {
	Rate      int `json:"rate"`
	Delivered int `json:"delivered"`
	Total     int `json:"total"`
}

// VendorDashboard is the combined dashboard payload for one vendor store.
type VendorDashboard struct {
	Stats            DashboardStats    `json:"stats"`
	RecentOrders     []RecentOrder     `json:"recent_orders"`
	LowStockProducts []LowStockProduct `json:"low_stock_products"`
	MonthlySales     []TrendPoint      `json:"monthly_sales"`
	TopProducts      []TopProduct      `json:"top_products"`
	OrderFulfillment OrderFulfillment  `json:"order_fulfillment"`
}
