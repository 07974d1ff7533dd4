// Package sales contiene los servicios de dominio puros sobre eventos de
// venta.
package sales

import (
	"fmt"
	"time"

	"github.com/invorya/panel-inventario/internal/domain/entity"
)

// TrendDays tamaño fijo de la ventana de la serie diaria.
const TrendDays = 30

// TrendSeries serie diaria lista para graficar: Labels[i] y Values[i]
// corresponden al mismo día, del más antiguo al más reciente. Siempre tiene
// exactamente TrendDays entradas.
type TrendSeries struct {
	Labels []string `json:"labels"` // "M/D", mes 1-indexado sin ceros a la izquierda
	Values []int    `json:"values"` // unidades vendidas ese día
}

// DailyTrend agrega los eventos de venta en una serie de TrendDays días
// calendario que termina en reference (inclusive), sumando unidades por día y
// rellenando con cero los días sin ventas.
//
// El día calendario de cada evento se deriva en la Location de reference
// (la hora del día se descarta). Eventos fuera de la ventana, incluidos los
// futuros respecto a reference, se ignoran; varios eventos el mismo día se
// acumulan. reference es un parámetro explícito para que la función sea
// determinista: dos llamadas con la misma entrada producen la misma salida,
// sin reloj implícito ni estado oculto.
func DailyTrend(events []entity.Sale, reference time.Time) TrendSeries {
	loc := reference.Location()
	ref := reference.In(loc)
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(TrendDays - 1))

	labels := make([]string, TrendDays)
	values := make([]int, TrendDays)
	index := make(map[string]int, TrendDays)
	for i := 0; i < TrendDays; i++ {
		day := start.AddDate(0, 0, i)
		index[dayKey(day)] = i
		labels[i] = fmt.Sprintf("%d/%d", int(day.Month()), day.Day())
	}

	for _, ev := range events {
		if i, ok := index[dayKey(ev.SaleDate.In(loc))]; ok {
			values[i] += ev.QuantitySold
		}
	}

	return TrendSeries{Labels: labels, Values: values}
}

// dayKey clave de día calendario, ISO YYYY-MM-DD.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
