package repository

import (
	"context"

	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// SalesRepository puerto de lectura de eventos de venta.
type SalesRepository interface {
	All(ctx context.Context) ([]entity.Sale, error)
	ByStore(ctx context.Context, storeID int64) ([]entity.Sale, error)
	// TopSelling devuelve las `limit` partes más vendidas por unidades,
	// en orden descendente (el ranking lo calcula el backend).
	TopSelling(ctx context.Context, limit int) ([]entity.TopSeller, error)
}
