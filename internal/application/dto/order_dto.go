package dto

import "github.com/shopspring/decimal"

// OrderRequest solicitud de reorden simulada. Quantity en cero usa la
// cantidad de reorden recomendada de la alerta.
type OrderRequest struct {
	AlertID  int64 `json:"alertId"`
	Quantity int   `json:"quantity"`
}

// OrderConfirmationDTO confirmación de la orden simulada. Nada se persiste ni
// viaja al backend; en una aplicación real esto dispararía el sistema de
// compras.
type OrderConfirmationDTO struct {
	OrderID      string          `json:"orderId"` // generado, solo para referencia visual
	PartName     string          `json:"partName"`
	SKU          string          `json:"sku"`
	StoreName    string          `json:"storeName"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	TotalCost    decimal.Decimal `json:"totalCost"` // unitCost × quantity, 2 decimales
	SupplierName string          `json:"supplierName"`
	LeadTimeDays int             `json:"leadTimeDays"`
	Message      string          `json:"message"`
}
