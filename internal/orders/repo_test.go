package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

var testDDL = []string{
	`CREATE TABLE customers (
		id text PRIMARY KEY,
		email text NOT NULL,
		first_name text NOT NULL,
		last_name text NOT NULL,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE products (
		id text PRIMARY KEY,
		store_id text NOT NULL,
		title text NOT NULL,
		sku text NOT NULL,
		image_urls text,
		price_cents integer NOT NULL,
		stock_qty integer NOT NULL DEFAULT 0,
		in_stock integer NOT NULL DEFAULT 1,
		is_active integer NOT NULL DEFAULT 1,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE orders (
		id text PRIMARY KEY,
		order_number integer NOT NULL,
		customer_id text NOT NULL,
		status text NOT NULL,
		total_cents integer NOT NULL,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE order_line_items (
		id text PRIMARY KEY,
		order_id text NOT NULL,
		product_id text,
		unit_price_cents integer NOT NULL,
		qty integer NOT NULL,
		subtotal_cents integer,
		created_at datetime,
		updated_at datetime
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	for _, ddl := range testDDL {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), Email: email, FirstName: "Test", LastName: "Buyer"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, storeID uuid.UUID, title string) models.Product {
	t.Helper()
	product := models.Product{
		ID:         uuid.New(),
		StoreID:    storeID,
		Title:      title,
		SKU:        title + "-SKU",
		PriceCents: 1000,
		StockQty:   10,
		InStock:    true,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, number int64, customerID uuid.UUID, createdAt time.Time, items ...models.OrderLineItem) models.Order {
	t.Helper()
	order := models.Order{
		ID:          uuid.New(),
		OrderNumber: number,
		CustomerID:  customerID,
		Status:      enums.OrderStatusProcessing,
		TotalCents:  0,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&order).Error)
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return order
}

func TestFindByProductsAndDateRange_FiltersByProductSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vendorStore := uuid.New()
	otherStore := uuid.New()
	mine := seedProduct(t, db, vendorStore, "Olive Oil")
	theirs := seedProduct(t, db, otherStore, "Hot Sauce")
	buyer := seedCustomer(t, db, "buyer@example.com")

	now := time.Now().UTC().Truncate(time.Second)
	matched := seedOrder(t, db, 1001, buyer.ID, now.Add(-time.Hour),
		models.OrderLineItem{ProductID: &mine.ID, UnitPriceCents: 1000, Qty: 2},
		models.OrderLineItem{ProductID: &theirs.ID, UnitPriceCents: 500, Qty: 1},
	)
	seedOrder(t, db, 1002, buyer.ID, now.Add(-time.Hour),
		models.OrderLineItem{ProductID: &theirs.ID, UnitPriceCents: 500, Qty: 3},
	)

	got, err := repo.FindByProductsAndDateRange(ctx, []uuid.UUID{mine.ID}, now.Add(-24*time.Hour), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, matched.ID, got[0].ID)
	require.Len(t, got[0].Items, 2)
	require.NotNil(t, got[0].Customer)
	assert.Equal(t, "buyer@example.com", got[0].Customer.Email)
	for _, item := range got[0].Items {
		assert.NotNil(t, item.Product)
	}
}

func TestFindByProductsAndDateRange_WindowBounds(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	store := uuid.New()
	product := seedProduct(t, db, store, "Coffee")
	buyer := seedCustomer(t, db, "window@example.com")

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	item := func() models.OrderLineItem {
		return models.OrderLineItem{ProductID: &product.ID, UnitPriceCents: 1500, Qty: 1}
	}
	inside := seedOrder(t, db, 2001, buyer.ID, start, item())
	seedOrder(t, db, 2002, buyer.ID, start.Add(-time.Second), item())
	seedOrder(t, db, 2003, buyer.ID, end, item())

	got, err := repo.FindByProductsAndDateRange(ctx, []uuid.UUID{product.ID}, start, &end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestFindByProductsAndDateRange_EmptyProductSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	got, err := repo.FindByProductsAndDateRange(context.Background(), nil, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
