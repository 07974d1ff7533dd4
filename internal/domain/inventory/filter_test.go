package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func alert(id int64, name, sku string, storeID int64) entity.StockAlert {
	return entity.StockAlert{
		ID:       id,
		Quantity: 5,
		Part:     &entity.Part{ID: id, Name: name, SKU: sku},
		Store:    &entity.Store{ID: storeID, Name: "Tienda"},
	}
}

func testAlerts() []entity.StockAlert {
	return []entity.StockAlert{
		alert(1, "Brake Pad", "BP100", 1),
		alert(2, "Oil Filter", "OF200", 2),
		alert(3, "Air Filter", "AF300", 1),
		alert(4, "Brake Rotor", "BR400", 3),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del filtro
// ──────────────────────────────────────────────────────────────────────────────

// Identidad: con "all" y búsqueda vacía la salida es igual a la entrada.
func TestFilterAlerts_IdentidadConAllYBusquedaVacia(t *testing.T) {
	items := testAlerts()

	got, err := inventory.FilterAlerts(items, inventory.AllStores, "")
	require.NoError(t, err)
	assert.Equal(t, items, got, "all + búsqueda vacía debe devolver la lista completa")
}

// El filtro vacío ("") se comporta como "all".
func TestFilterAlerts_FiltroVacioEsAll(t *testing.T) {
	items := testAlerts()

	got, err := inventory.FilterAlerts(items, "", "")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestFilterAlerts_PorTienda_ComparaComoString(t *testing.T) {
	items := testAlerts()

	// El valor del filtro llega como string del control de selección aunque
	// el id del backend sea numérico.
	got, err := inventory.FilterAlerts(items, "1", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterAlerts_BusquedaCaseInsensitive_NombreOSKU(t *testing.T) {
	items := testAlerts()

	// Por nombre, en otra capitalización.
	porNombre, err := inventory.FilterAlerts(items, inventory.AllStores, "BRAKE")
	require.NoError(t, err)
	require.Len(t, porNombre, 2)
	assert.Equal(t, "Brake Pad", porNombre[0].Part.Name)
	assert.Equal(t, "Brake Rotor", porNombre[1].Part.Name)

	// Por SKU, en minúsculas.
	porSKU, err := inventory.FilterAlerts(items, inventory.AllStores, "of2")
	require.NoError(t, err)
	require.Len(t, porSKU, 1)
	assert.Equal(t, "Oil Filter", porSKU[0].Part.Name)
}

// Ambos predicados se aplican en AND.
func TestFilterAlerts_TiendaYBusquedaEnAND(t *testing.T) {
	items := testAlerts()

	got, err := inventory.FilterAlerts(items, "1", "filter")
	require.NoError(t, err)
	require.Len(t, got, 1, "solo Air Filter está en la tienda 1 y contiene 'filter'")
	assert.Equal(t, "Air Filter", got[0].Part.Name)
}

// Escenario literal del comportamiento esperado del dashboard.
func TestFilterAlerts_EscenarioBrakeTienda1(t *testing.T) {
	items := []entity.StockAlert{
		alert(1, "Brake Pad", "BP100", 1),
		alert(2, "Oil Filter", "OF200", 2),
	}

	got, err := inventory.FilterAlerts(items, "1", "brake")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

// Orden relativo preservado: filtro estable, sin reordenar.
func TestFilterAlerts_PreservaOrdenRelativo(t *testing.T) {
	items := []entity.StockAlert{
		alert(10, "Brake Pad", "BP100", 1),
		alert(20, "Oil Filter", "OF200", 1),
		alert(30, "Brake Rotor", "BR400", 1),
		alert(40, "Brake Line", "BL500", 1),
	}

	got, err := inventory.FilterAlerts(items, inventory.AllStores, "brake")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{10, 30, 40}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

// El resultado es siempre subconjunto y la entrada no se muta.
func TestFilterAlerts_NoMutaLaEntrada(t *testing.T) {
	items := testAlerts()
	original := testAlerts()

	got, err := inventory.FilterAlerts(items, "2", "oil")
	require.NoError(t, err)
	assert.Equal(t, original, items, "la lista de entrada no debe mutarse")
	for _, g := range got {
		assert.Contains(t, items, g)
	}
}

// Determinismo: dos llamadas idénticas, salida idéntica.
func TestFilterAlerts_Idempotente(t *testing.T) {
	items := testAlerts()

	a, err := inventory.FilterAlerts(items, "1", "a")
	require.NoError(t, err)
	b, err := inventory.FilterAlerts(items, "1", "a")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registros malformados
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterAlerts_RegistroSinParte_ErrMalformedRecord(t *testing.T) {
	items := []entity.StockAlert{
		alert(1, "Brake Pad", "BP100", 1),
		{ID: 2, Store: &entity.Store{ID: 1}}, // sin Part
	}

	_, err := inventory.FilterAlerts(items, inventory.AllStores, "")
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestFilterAlerts_RegistroSinTienda_ErrMalformedRecord(t *testing.T) {
	items := []entity.StockAlert{
		{ID: 7, Part: &entity.Part{Name: "Brake Pad", SKU: "BP100"}}, // sin Store
	}

	_, err := inventory.FilterAlerts(items, inventory.AllStores, "")
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestFilterAlerts_RegistroSinSKU_ErrMalformedRecord(t *testing.T) {
	items := []entity.StockAlert{
		{
			ID:    9,
			Part:  &entity.Part{Name: "Brake Pad"}, // SKU vacío
			Store: &entity.Store{ID: 1},
		},
	}

	_, err := inventory.FilterAlerts(items, inventory.AllStores, "")
	assert.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestFilterAlerts_ListaVacia(t *testing.T) {
	got, err := inventory.FilterAlerts(nil, inventory.AllStores, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
