// Package inventory contiene los servicios de dominio puros sobre alertas de
// stock. Sin I/O y sin estado: misma entrada, misma salida.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// AllStores valor del filtro de tienda que acepta todas las tiendas.
const AllStores = "all"

// FilterAlerts reduce la lista de alertas al subconjunto que coincide con la
// tienda seleccionada y con el texto de búsqueda. Ambos predicados se aplican
// en AND:
//
//   - storeFilter: AllStores (o vacío) acepta todo; cualquier otro valor se
//     compara como string contra el id de la tienda, porque el valor viene de
//     un control de selección y el id del backend es numérico.
//   - search: vacío acepta todo; si no, la alerta pasa cuando el nombre O el
//     SKU del repuesto contienen el texto como substring sin distinguir
//     mayúsculas.
//
// La función no muta la entrada y preserva el orden relativo original (filtro
// estable, sin reordenar). Un registro sin repuesto, sin tienda o sin
// nombre/SKU produce domain.ErrMalformedRecord con el índice del registro.
func FilterAlerts(items []entity.StockAlert, storeFilter, search string) ([]entity.StockAlert, error) {
	needle := strings.ToLower(search)
	out := make([]entity.StockAlert, 0, len(items))

	for i, item := range items {
		if err := validate(i, item); err != nil {
			return nil, err
		}
		if !matchesStore(item.Store.ID, storeFilter) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Part.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Part.SKU), needle) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func validate(i int, item entity.StockAlert) error {
	switch {
	case item.Part == nil:
		return fmt.Errorf("alerta %d (id %d) sin repuesto: %w", i, item.ID, domain.ErrMalformedRecord)
	case item.Store == nil:
		return fmt.Errorf("alerta %d (id %d) sin tienda: %w", i, item.ID, domain.ErrMalformedRecord)
	case item.Part.Name == "" || item.Part.SKU == "":
		return fmt.Errorf("alerta %d (id %d) sin nombre o SKU: %w", i, item.ID, domain.ErrMalformedRecord)
	}
	return nil
}

func matchesStore(storeID int64, filter string) bool {
	if filter == AllStores || filter == "" {
		return true
	}
	return strconv.FormatInt(storeID, 10) == filter
}
