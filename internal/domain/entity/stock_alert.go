package entity

// StockAlert snapshot del nivel de stock de un repuesto en una tienda,
// con sus umbrales de reorden. Llega del backend y no se muta localmente;
// la cantidad de la orden simulada vive solo en el estado de la vista.
//
// Part y Store son punteros porque el backend los anida como objetos y un
// registro malformado puede llegar sin ellos; el filtro valida antes de
// acceder (domain.ErrMalformedRecord en lugar de panic).
type StockAlert struct {
	ID              int64  `json:"id"`
	Quantity        int    `json:"quantity"` // stock actual, nunca negativo
	ReorderPoint    int    `json:"reorderPoint"`
	ReorderQuantity int    `json:"reorderQuantity"`
	MaxStockLevel   int    `json:"maxStockLevel"`
	Part            *Part  `json:"part"`
	Store           *Store `json:"store"`
}
