package repository

import (
	"context"

	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// InventoryRepository define el puerto de lectura de alertas de stock (DIP).
// La implementación vive en infrastructure y consume la API REST del backend;
// todas las consultas son read-only.
//
// Los umbrales de reorden y de low-stock los define el backend: este panel
// nunca calcula la fórmula, solo consume los subconjuntos ya clasificados.
type InventoryRepository interface {
	// All devuelve todas las alertas de stock de la cadena.
	All(ctx context.Context) ([]entity.StockAlert, error)
	// Reorder devuelve los registros con quantity ≤ reorderPoint.
	Reorder(ctx context.Context) ([]entity.StockAlert, error)
	// LowStock devuelve los registros bajo el umbral crítico del backend.
	LowStock(ctx context.Context) ([]entity.StockAlert, error)
	// ByStore devuelve las alertas de una sola tienda.
	ByStore(ctx context.Context, storeID int64) ([]entity.StockAlert, error)
}

// CatalogRepository puerto de lectura del catálogo maestro.
type CatalogRepository interface {
	Stores(ctx context.Context) ([]entity.Store, error)
	Parts(ctx context.Context) ([]entity.Part, error)
}
