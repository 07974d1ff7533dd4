package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/pkg/logger"
)

// OrderUseCase simulación de reorden. No persiste nada ni llama al backend:
// arma la confirmación con los datos de la alerta (costo total, proveedor,
// lead time) para que la vista la muestre.
type OrderUseCase struct {
	dashboard *DashboardUseCase
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(dashboard *DashboardUseCase, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{dashboard: dashboard, log: log}
}

// Simulate valida y arma la confirmación de la orden simulada.
// Quantity en cero usa la cantidad de reorden recomendada de la alerta;
// cantidades negativas son domain.ErrInvalidInput. La alerta debe existir en
// el snapshot vigente del dashboard (domain.ErrNoSnapshot / ErrNotFound).
func (uc *OrderUseCase) Simulate(in dto.OrderRequest) (*dto.OrderConfirmationDTO, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("cantidad %d: %w", in.Quantity, domain.ErrInvalidInput)
	}
	if !uc.dashboard.Loaded() {
		return nil, domain.ErrNoSnapshot
	}

	alert, ok := uc.dashboard.FindAlert(in.AlertID)
	if !ok {
		return nil, fmt.Errorf("alerta %d: %w", in.AlertID, domain.ErrNotFound)
	}
	if alert.Part == nil || alert.Store == nil {
		return nil, fmt.Errorf("alerta %d: %w", in.AlertID, domain.ErrMalformedRecord)
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = alert.ReorderQuantity
	}
	if quantity < 1 {
		return nil, fmt.Errorf("cantidad %d: %w", quantity, domain.ErrInvalidInput)
	}

	total := alert.Part.Cost.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	orderID := uuid.NewString()

	uc.log.Info().
		Str("order_id", orderID).
		Str("sku", alert.Part.SKU).
		Str("store", alert.Store.Name).
		Int("quantity", quantity).
		Str("total_cost", total.String()).
		Msg("orden de reorden simulada")

	return &dto.OrderConfirmationDTO{
		OrderID:      orderID,
		PartName:     alert.Part.Name,
		SKU:          alert.Part.SKU,
		StoreName:    alert.Store.Name,
		Quantity:     quantity,
		UnitCost:     alert.Part.Cost,
		TotalCost:    total,
		SupplierName: alert.Part.SupplierName,
		LeadTimeDays: alert.Part.SupplierLeadTimeDays,
		Message: fmt.Sprintf(
			"Orden simulada: %d unidades de %s para %s. En una aplicación real esto dispararía el sistema de compras.",
			quantity, alert.Part.Name, alert.Store.Name,
		),
	}, nil
}
