package sales_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/sales"
)

// Fecha de referencia fija para que los tests sean deterministas.
var reference = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func sale(daysAgo int, qty int) entity.Sale {
	return entity.Sale{
		PartName:     "Brake Pad",
		SaleDate:     reference.AddDate(0, 0, -daysAgo),
		QuantitySold: qty,
	}
}

func TestDailyTrend_SiempreTreintaEntradas(t *testing.T) {
	casos := map[string][]entity.Sale{
		"sin ventas":    nil,
		"una venta":     {sale(3, 2)},
		"muchas ventas": {sale(0, 1), sale(5, 2), sale(29, 3), sale(40, 4)},
	}

	for nombre, eventos := range casos {
		got := sales.DailyTrend(eventos, reference)
		assert.Len(t, got.Labels, sales.TrendDays, "%s: labels", nombre)
		assert.Len(t, got.Values, sales.TrendDays, "%s: values", nombre)
	}
}

func TestDailyTrend_EntradaVacia_TodoCeros(t *testing.T) {
	got := sales.DailyTrend(nil, reference)
	for i, v := range got.Values {
		assert.Zero(t, v, "día %d debe ser cero sin ventas", i)
	}
}

// Las ventas del mismo día se acumulan; fuera de ventana no aportan a
// ningún bucket.
func TestDailyTrend_AcumulaPorDiaEIgnoraFueraDeVentana(t *testing.T) {
	eventos := []entity.Sale{
		sale(5, 3),
		sale(5, 2),
		sale(40, 100), // fuera de ventana
	}

	got := sales.DailyTrend(eventos, reference)

	// reference está en el índice 29; d-5 queda en el índice 24.
	assert.Equal(t, 5, got.Values[24], "d-5 debe sumar 3+2")

	total := 0
	for _, v := range got.Values {
		total += v
	}
	assert.Equal(t, 5, total, "la venta de d-40 no debe aportar a ningún bucket")
}

// Límite inferior inclusivo: d-29 entra, d-30 no.
func TestDailyTrend_LimiteInferiorInclusivo(t *testing.T) {
	got := sales.DailyTrend([]entity.Sale{sale(29, 7), sale(30, 9)}, reference)

	assert.Equal(t, 7, got.Values[0], "una venta exactamente en d-29 va al primer bucket")
	total := 0
	for _, v := range got.Values {
		total += v
	}
	assert.Equal(t, 7, total, "d-30 queda excluido")
}

// Las ventas futuras respecto a la referencia se excluyen.
func TestDailyTrend_FuturoExcluido(t *testing.T) {
	futuro := entity.Sale{SaleDate: reference.AddDate(0, 0, 2), QuantitySold: 50}

	got := sales.DailyTrend([]entity.Sale{futuro}, reference)
	for i, v := range got.Values {
		assert.Zero(t, v, "día %d: una venta futura no debe contarse", i)
	}
}

// El día de la referencia (hoy) sí cuenta.
func TestDailyTrend_DiaDeReferenciaIncluido(t *testing.T) {
	got := sales.DailyTrend([]entity.Sale{sale(0, 4)}, reference)
	assert.Equal(t, 4, got.Values[sales.TrendDays-1])
}

// Cantidad cero aporta cero (inofensivo).
func TestDailyTrend_CantidadCero(t *testing.T) {
	got := sales.DailyTrend([]entity.Sale{sale(3, 0)}, reference)
	assert.Zero(t, got.Values[26])
}

// La hora del día se descarta: dos ventas del mismo día calendario a horas
// distintas caen en el mismo bucket.
func TestDailyTrend_TruncaAlDiaCalendario(t *testing.T) {
	dia := time.Date(2026, time.March, 10, 0, 0, 1, 0, time.UTC)
	noche := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC)
	eventos := []entity.Sale{
		{SaleDate: dia, QuantitySold: 1},
		{SaleDate: noche, QuantitySold: 2},
	}

	got := sales.DailyTrend(eventos, reference)
	// 2026-03-10 es d-5 → índice 24.
	assert.Equal(t, 3, got.Values[24])
}

// Etiquetas "M/D" sin ceros a la izquierda, del más antiguo al más reciente.
func TestDailyTrend_FormatoDeEtiquetas(t *testing.T) {
	got := sales.DailyTrend(nil, reference)

	// reference-29d = 2026-02-14; reference = 2026-03-15.
	assert.Equal(t, "2/14", got.Labels[0])
	assert.Equal(t, "3/15", got.Labels[sales.TrendDays-1])
	assert.Equal(t, "3/1", got.Labels[15], "mes y día sin zero-padding")
}

// Determinismo: dos llamadas con la misma entrada, salida idéntica.
func TestDailyTrend_Idempotente(t *testing.T) {
	eventos := []entity.Sale{sale(1, 2), sale(8, 3), sale(8, 1)}

	a := sales.DailyTrend(eventos, reference)
	b := sales.DailyTrend(eventos, reference)
	require.Equal(t, a, b)
}

// La serie cruza el cambio de mes sin huecos ni duplicados.
func TestDailyTrend_CruceDeMes(t *testing.T) {
	got := sales.DailyTrend(nil, reference)

	vistos := make(map[string]bool, sales.TrendDays)
	for _, l := range got.Labels {
		assert.False(t, vistos[l], "etiqueta duplicada: %s", l)
		vistos[l] = true
	}
	assert.Len(t, vistos, sales.TrendDays)
}
