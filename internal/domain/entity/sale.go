package entity

import "time"

// Sale un evento de venta. Solo se usa en agregados, nunca se muta.
// SaleDate llega del backend como ISO date-time.
type Sale struct {
	PartName     string    `json:"partName"`
	SaleDate     time.Time `json:"saleDate"`
	QuantitySold int       `json:"quantitySold"`
}

// TopSeller una parte en el ranking de más vendidas (unidades acumuladas,
// ordenado descendente por el backend).
type TopSeller struct {
	PartName      string `json:"partName"`
	TotalQuantity int    `json:"totalQuantity"`
}
