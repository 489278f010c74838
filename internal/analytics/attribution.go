package analytics

import (
	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
)

// AttributedOrder is the vendor-scoped view of one multi-vendor order: only
// the line items owned by the vendor, with their summed revenue. Orders where
// no line item belongs to the vendor produce no AttributedOrder at all.
type AttributedOrder struct {
	Order        models.Order
	VendorItems  []models.OrderLineItem
	RevenueCents int64
}

// OwnedProductSet indexes a catalog by product id for attribution lookups.
func OwnedProductSet(catalog []models.Product) map[uuid.UUID]struct{} {
	owned := make(map[uuid.UUID]struct{}, len(catalog))
	for _, p := range catalog {
		owned[p.ID] = struct{}{}
	}
	return owned
}

// AttributeOrder filters one order down to the vendor's line items. A line
// item with an unresolved product reference belongs to no vendor and is
// excluded rather than treated as an error. The second return is false when
// the order carries nothing attributable.
func AttributeOrder(order models.Order, owned map[uuid.UUID]struct{}) (AttributedOrder, bool) {
	var items []models.OrderLineItem
	var revenue int64
	for _, item := range order.Items {
		if item.Product == nil {
			continue
		}
		if _, ok := owned[item.Product.ID]; !ok {
			continue
		}
		items = append(items, item)
		revenue += item.Revenue()
	}
	if len(items) == 0 {
		return AttributedOrder{}, false
	}
	return AttributedOrder{Order: order, VendorItems: items, RevenueCents: revenue}, true
}

// AttributeOrders applies AttributeOrder across a fetched order set,
// preserving order.
func AttributeOrders(orders []models.Order, owned map[uuid.UUID]struct{}) []AttributedOrder {
	attributed := make([]AttributedOrder, 0, len(orders))
	for _, order := range orders {
		if result, ok := AttributeOrder(order, owned); ok {
			attributed = append(attributed, result)
		}
	}
	return attributed
}
