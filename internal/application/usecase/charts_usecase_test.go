package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/panel-inventario/internal/application/usecase"
	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/pkg/logger"
)

type fakeSalesRepo struct {
	events []entity.Sale
	top    []entity.TopSeller

	errAll error
	errTop error

	gotLimit int
}

func (f *fakeSalesRepo) All(ctx context.Context) ([]entity.Sale, error) {
	return f.events, f.errAll
}

func (f *fakeSalesRepo) ByStore(ctx context.Context, storeID int64) ([]entity.Sale, error) {
	return f.events, f.errAll
}

func (f *fakeSalesRepo) TopSelling(ctx context.Context, limit int) ([]entity.TopSeller, error) {
	f.gotLimit = limit
	return f.top, f.errTop
}

func fixedClock() func() time.Time {
	ref := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return ref }
}

func TestChartsLoad_ArmaLasDosSeries(t *testing.T) {
	repo := &fakeSalesRepo{
		top: []entity.TopSeller{
			{PartName: "Brake Pad", TotalQuantity: 40},
			{PartName: "Oil Filter", TotalQuantity: 25},
		},
		events: []entity.Sale{
			{PartName: "Brake Pad", SaleDate: time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC), QuantitySold: 3},
			{PartName: "Oil Filter", SaleDate: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), QuantitySold: 2},
		},
	}
	uc := usecase.NewChartsUseCase(repo, 10, logger.Nop()).WithNow(fixedClock())

	got := uc.Load(context.Background())

	require.True(t, got.Available)
	assert.Equal(t, 10, repo.gotLimit)

	assert.Equal(t, []string{"Brake Pad", "Oil Filter"}, got.TopSelling.Labels)
	assert.Equal(t, []int{40, 25}, got.TopSelling.Values)

	require.Len(t, got.SalesTrend.Labels, 30, "la tendencia siempre trae 30 días")
	require.Len(t, got.SalesTrend.Values, 30)
	assert.Equal(t, "3/15", got.SalesTrend.Labels[29])
	assert.Equal(t, 3, got.SalesTrend.Values[29])
	// 2026-03-10 queda 5 días antes de la referencia.
	assert.Equal(t, "3/10", got.SalesTrend.Labels[24])
	assert.Equal(t, 2, got.SalesTrend.Values[24])
}

func TestChartsLoad_SinVentasSerieEnCeros(t *testing.T) {
	uc := usecase.NewChartsUseCase(&fakeSalesRepo{}, 10, logger.Nop()).WithNow(fixedClock())

	got := uc.Load(context.Background())

	require.True(t, got.Available)
	assert.Empty(t, got.TopSelling.Labels)
	require.Len(t, got.SalesTrend.Values, 30)
	for i, v := range got.SalesTrend.Values {
		assert.Zero(t, v, "día %d", i)
	}
}

func TestChartsLoad_FalloNoDevuelveError(t *testing.T) {
	casos := []struct {
		nombre string
		repo   *fakeSalesRepo
	}{
		{"falla top-selling", &fakeSalesRepo{errTop: errors.New("upstream caído")}},
		{"falla ventas", &fakeSalesRepo{errAll: errors.New("upstream caído")}},
		{"fallan ambas", &fakeSalesRepo{errTop: errors.New("a"), errAll: errors.New("b")}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			uc := usecase.NewChartsUseCase(c.repo, 10, logger.Nop()).WithNow(fixedClock())

			got := uc.Load(context.Background())

			require.NotNil(t, got)
			assert.False(t, got.Available, "el fallo de gráficas se absorbe, no se propaga")
			assert.Empty(t, got.TopSelling.Labels)
			assert.Empty(t, got.SalesTrend.Labels)
		})
	}
}

func TestNewChartsUseCase_LimiteInvalidoUsaDefault(t *testing.T) {
	repo := &fakeSalesRepo{}
	uc := usecase.NewChartsUseCase(repo, 0, logger.Nop()).WithNow(fixedClock())

	uc.Load(context.Background())
	assert.Equal(t, 10, repo.gotLimit)
}
