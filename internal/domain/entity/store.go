package entity

// Tipos de tienda que reporta el backend.
const (
	StoreTypeHub        = "HUB"
	StoreTypeCommercial = "COMMERCIAL"
	StoreTypeRetail     = "RETAIL"
)

// Store una tienda de la cadena.
type Store struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	StoreNumber string `json:"storeNumber"`
	StoreType   string `json:"storeType"` // HUB | COMMERCIAL | RETAIL
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Phone       string `json:"phone"`
}
