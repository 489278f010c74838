package analytics

import (
	"sort"

	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ProductSalesEntry accumulates one catalog product's attributed sales. An
// entry exists for every catalog product, sold or not, so backfill never
// needs a second pass over the catalog.
type ProductSalesEntry struct {
	ProductID    uuid.UUID
	Name         string
	Image        string
	UnitsSold    int
	RevenueCents int64
}

// RankProductSales ranks the vendor's products by attributed revenue over
// the given orders and returns the top N. Sold products always rank ahead of
// unsold ones; ties keep catalog order. When fewer than N products sold,
// unsold products pad the list in catalog order until N or the catalog runs
// out.
func RankProductSales(catalog []models.Product, attributed []AttributedOrder, topN int) []ProductSalesEntry {
	if topN <= 0 {
		return []ProductSalesEntry{}
	}

	entries := make([]ProductSalesEntry, len(catalog))
	index := make(map[uuid.UUID]*ProductSalesEntry, len(catalog))
	for i, product := range catalog {
		entries[i] = ProductSalesEntry{
			ProductID: product.ID,
			Name:      product.Title,
			Image:     product.PrimaryImage(),
		}
		index[product.ID] = &entries[i]
	}

	for _, order := range attributed {
		for _, item := range order.VendorItems {
			if item.Product == nil {
				continue
			}
			entry, ok := index[item.Product.ID]
			if !ok {
				continue
			}
			entry.UnitsSold += item.Qty
			entry.RevenueCents += item.Revenue()
		}
	}

	sold := make([]ProductSalesEntry, 0, len(entries))
	unsold := make([]ProductSalesEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.UnitsSold > 0 {
			sold = append(sold, entry)
		} else {
			unsold = append(unsold, entry)
		}
	}

	sort.SliceStable(sold, func(i, j int) bool {
		return sold[i].RevenueCents > sold[j].RevenueCents
	})

	ranked := sold
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	for _, entry := range unsold {
		if len(ranked) >= topN {
			break
		}
		ranked = append(ranked, entry)
	}
	return ranked
}
