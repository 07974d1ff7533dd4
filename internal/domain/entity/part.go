package entity

import "github.com/shopspring/decimal"

// Part repuesto del catálogo. Identificado por SKU único en toda la cadena.
// Los tags JSON siguen el camelCase del backend.
type Part struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	SKU                  string          `json:"sku"`
	Category             string          `json:"category"`
	Manufacturer         string          `json:"manufacturer"`
	SupplierName         string          `json:"supplierName"`
	SupplierLeadTimeDays int             `json:"supplierLeadTimeDays"`
	Cost                 decimal.Decimal `json:"cost"` // costo unitario del proveedor
}
