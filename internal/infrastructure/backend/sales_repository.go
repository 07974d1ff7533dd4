package backend

import (
	"context"
	"fmt"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepository)(nil)

// SalesRepository lectura de eventos de venta vía REST.
type SalesRepository struct {
	client *Client
}

func NewSalesRepository(client *Client) *SalesRepository {
	return &SalesRepository{client: client}
}

func (r *SalesRepository) All(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	if err := r.client.getJSON(ctx, "/sales", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SalesRepository) ByStore(ctx context.Context, storeID int64) ([]entity.Sale, error) {
	var sales []entity.Sale
	path := fmt.Sprintf("/sales/store/%d", storeID)
	if err := r.client.getJSON(ctx, path, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SalesRepository) TopSelling(ctx context.Context, limit int) ([]entity.TopSeller, error) {
	var top []entity.TopSeller
	path := fmt.Sprintf("/sales/top-selling?limit=%d", limit)
	if err := r.client.getJSON(ctx, path, &top); err != nil {
		return nil, err
	}
	return top, nil
}
