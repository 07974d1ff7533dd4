// Package usecase contiene los casos de uso del panel: carga del dashboard,
// gráficas y simulación de reorden.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/inventory"
	"github.com/invorya/panel-inventario/internal/domain/repository"
	"github.com/invorya/panel-inventario/pkg/logger"
)

// snapshot resultado completo de una carga del dashboard. Inmutable una vez
// aplicado; las vistas filtran sobre él sin mutarlo.
type snapshot struct {
	all      []entity.StockAlert
	reorder  []entity.StockAlert
	lowStock []entity.StockAlert
	stores   []entity.Store
	parts    []entity.Part
	loadedAt time.Time
}

// DashboardUseCase carga y sirve el estado del dashboard.
//
// Load lanza los cinco fetches en paralelo y espera a que terminen todos
// (join): si cualquiera falla, la carga completa falla y no se aplica ningún
// resultado parcial. Cada carga lleva un número de generación; un resultado
// que termina cuando ya arrancó una carga más nueva se descarta en lugar de
// aplicarse, así la última carga iniciada es siempre la que gana.
type DashboardUseCase struct {
	inventoryRepo repository.InventoryRepository
	catalogRepo   repository.CatalogRepository
	log           *logger.Logger

	mu         sync.Mutex
	generation uint64
	snap       *snapshot
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	inventoryRepo repository.InventoryRepository,
	catalogRepo repository.CatalogRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
		log:           log,
	}
}

// Load ejecuta la carga conjunta de los cinco fetches.
func (uc *DashboardUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	uc.generation++
	gen := uc.generation
	uc.mu.Unlock()

	type alertsResult struct {
		items []entity.StockAlert
		err   error
	}
	type storesResult struct {
		stores []entity.Store
		err    error
	}
	type partsResult struct {
		parts []entity.Part
		err   error
	}

	allCh := make(chan alertsResult, 1)
	reorderCh := make(chan alertsResult, 1)
	lowStockCh := make(chan alertsResult, 1)
	storesCh := make(chan storesResult, 1)
	partsCh := make(chan partsResult, 1)

	go func() {
		items, err := uc.inventoryRepo.All(ctx)
		allCh <- alertsResult{items, err}
	}()
	go func() {
		items, err := uc.inventoryRepo.Reorder(ctx)
		reorderCh <- alertsResult{items, err}
	}()
	go func() {
		items, err := uc.inventoryRepo.LowStock(ctx)
		lowStockCh <- alertsResult{items, err}
	}()
	go func() {
		stores, err := uc.catalogRepo.Stores(ctx)
		storesCh <- storesResult{stores, err}
	}()
	go func() {
		parts, err := uc.catalogRepo.Parts(ctx)
		partsCh <- partsResult{parts, err}
	}()

	// Join: siempre se esperan los cinco resultados antes de decidir.
	all := <-allCh
	reorder := <-reorderCh
	lowStock := <-lowStockCh
	stores := <-storesCh
	parts := <-partsCh

	for _, e := range []struct {
		name string
		err  error
	}{
		{"inventario", all.err},
		{"reorden", reorder.err},
		{"low-stock", lowStock.err},
		{"tiendas", stores.err},
		{"partes", parts.err},
	} {
		if e.err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrLoadFailed, e.name, e.err)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.generation {
		// Mientras esta carga corría arrancó otra más nueva; su resultado
		// manda y este se descarta.
		uc.log.Debug().Uint64("generation", gen).Msg("carga de dashboard obsoleta descartada")
		return nil
	}
	uc.snap = &snapshot{
		all:      all.items,
		reorder:  reorder.items,
		lowStock: lowStock.items,
		stores:   stores.stores,
		parts:    parts.parts,
		loadedAt: time.Now(),
	}
	uc.log.Info().
		Int("inventory", len(all.items)).
		Int("reorder", len(reorder.items)).
		Int("low_stock", len(lowStock.items)).
		Int("stores", len(stores.stores)).
		Msg("dashboard cargado")
	return nil
}

// Loaded indica si hay un snapshot aplicado.
func (uc *DashboardUseCase) Loaded() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snap != nil
}

// Reset descarta el snapshot (se invoca al invalidarse la sesión: el estado
// de vista en vuelo se tira completo, nunca se sirve con credencial muerta).
func (uc *DashboardUseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.snap = nil
	uc.generation++
}

// View aplica el filtro de tienda y búsqueda sobre el snapshot vigente y
// construye el view-model. domain.ErrNoSnapshot si aún no hay carga aplicada.
func (uc *DashboardUseCase) View(storeFilter, search string) (*dto.DashboardDTO, error) {
	uc.mu.Lock()
	snap := uc.snap
	uc.mu.Unlock()
	if snap == nil {
		return nil, domain.ErrNoSnapshot
	}
	if storeFilter == "" {
		storeFilter = inventory.AllStores
	}

	reorder, err := inventory.FilterAlerts(snap.reorder, storeFilter, search)
	if err != nil {
		return nil, err
	}
	lowStock, err := inventory.FilterAlerts(snap.lowStock, storeFilter, search)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		TotalStores:   len(snap.stores),
		ReorderCount:  len(reorder),
		LowStockCount: len(lowStock),
		ReorderItems:  reorder,
		LowStockItems: lowStock,
		Stores:        snap.stores,
		StoreFilter:   storeFilter,
		Search:        search,
		LoadedAt:      snap.loadedAt,
	}, nil
}

// FindAlert busca una alerta por id en el snapshot vigente, primero en el
// inventario completo y luego en las listas de alerta.
func (uc *DashboardUseCase) FindAlert(id int64) (entity.StockAlert, bool) {
	uc.mu.Lock()
	snap := uc.snap
	uc.mu.Unlock()
	if snap == nil {
		return entity.StockAlert{}, false
	}
	for _, list := range [][]entity.StockAlert{snap.all, snap.reorder, snap.lowStock} {
		for _, item := range list {
			if item.ID == id {
				return item, true
			}
		}
	}
	return entity.StockAlert{}, false
}
