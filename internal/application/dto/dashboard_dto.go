package dto

import (
	"time"

	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// DashboardDTO view-model del dashboard: los contadores de las tarjetas, las
// dos listas ya filtradas por tienda y búsqueda, y el catálogo de tiendas
// para el control de selección. Las listas conservan el orden del backend.
type DashboardDTO struct {
	TotalStores   int                 `json:"totalStores"`
	ReorderCount  int                 `json:"reorderCount"`  // tras filtros
	LowStockCount int                 `json:"lowStockCount"` // tras filtros
	ReorderItems  []entity.StockAlert `json:"reorderItems"`
	LowStockItems []entity.StockAlert `json:"lowStockItems"`
	Stores        []entity.Store      `json:"stores"`
	StoreFilter   string              `json:"storeFilter"` // "all" o id de tienda
	Search        string              `json:"search"`
	LoadedAt      time.Time           `json:"loadedAt"` // cuándo se cargó el snapshot
}
