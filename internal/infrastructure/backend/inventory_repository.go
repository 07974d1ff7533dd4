package backend

import (
	"context"
	"fmt"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
)

// Verificar en tiempo de compilación que las implementaciones cumplen los puertos.
var (
	_ repository.InventoryRepository = (*InventoryRepository)(nil)
	_ repository.CatalogRepository   = (*CatalogRepository)(nil)
)

// InventoryRepository lectura de alertas de stock vía REST.
type InventoryRepository struct {
	client *Client
}

// NewInventoryRepository construye el repositorio sobre el cliente compartido.
func NewInventoryRepository(client *Client) *InventoryRepository {
	return &InventoryRepository{client: client}
}

func (r *InventoryRepository) All(ctx context.Context) ([]entity.StockAlert, error) {
	var items []entity.StockAlert
	if err := r.client.getJSON(ctx, "/inventory", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) Reorder(ctx context.Context) ([]entity.StockAlert, error) {
	var items []entity.StockAlert
	if err := r.client.getJSON(ctx, "/inventory/reorder", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) LowStock(ctx context.Context) ([]entity.StockAlert, error) {
	var items []entity.StockAlert
	if err := r.client.getJSON(ctx, "/inventory/low-stock", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) ByStore(ctx context.Context, storeID int64) ([]entity.StockAlert, error) {
	var items []entity.StockAlert
	path := fmt.Sprintf("/inventory/store/%d", storeID)
	if err := r.client.getJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CatalogRepository lectura del catálogo maestro vía REST.
type CatalogRepository struct {
	client *Client
}

func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

func (r *CatalogRepository) Stores(ctx context.Context) ([]entity.Store, error) {
	var stores []entity.Store
	if err := r.client.getJSON(ctx, "/stores", &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *CatalogRepository) Parts(ctx context.Context) ([]entity.Part, error) {
	var parts []entity.Part
	if err := r.client.getJSON(ctx, "/parts", &parts); err != nil {
		return nil, err
	}
	return parts, nil
}
