package report

import (
	"retail-pos/internal/domain"

	"github.com/google/uuid"
)

// ProductInfo is the denormalized slice of a live product that the engine is
// allowed to read: display names, category membership, and current stock.
type ProductInfo struct {
	Name         string
	CategoryID   uuid.UUID
	CategoryName string
	Stock        int
}

// CatalogIndex is a read-only id-to-product lookup handed to the aggregators
// in place of live object references. Aggregators never follow mutable links.
type CatalogIndex map[uuid.UUID]ProductInfo

// NewCatalogIndex builds an index from live product and category records.
// Products referencing an unknown category keep an empty category name.
func NewCatalogIndex(products []domain.Product, categories []domain.Category) CatalogIndex {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	ix := make(CatalogIndex, len(products))
	for _, p := range products {
		ix[p.ID] = ProductInfo{
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			CategoryName: names[p.CategoryID],
			Stock:        p.Stock,
		}
	}
	return ix
}
