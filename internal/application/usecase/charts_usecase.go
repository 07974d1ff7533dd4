package usecase

import (
	"context"
	"time"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
	"github.com/invorya/panel-inventario/internal/domain/sales"
	"github.com/invorya/panel-inventario/pkg/logger"
)

// ChartsUseCase carga el par de datos de las gráficas: top de partes más
// vendidas y tendencia diaria de los últimos 30 días. Va desacoplado de la
// carga principal del dashboard: su fallo se registra y el panel de gráficas
// queda vacío, nunca invalida ni bloquea el resto de la página.
type ChartsUseCase struct {
	salesRepo repository.SalesRepository
	topLimit  int
	now       func() time.Time // inyectable; la fecha de referencia de la serie
	log       *logger.Logger
}

// NewChartsUseCase construye el caso de uso. topLimit suele ser 10.
func NewChartsUseCase(salesRepo repository.SalesRepository, topLimit int, log *logger.Logger) *ChartsUseCase {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &ChartsUseCase{
		salesRepo: salesRepo,
		topLimit:  topLimit,
		now:       time.Now,
		log:       log,
	}
}

// WithNow fija el reloj de referencia (tests).
func (uc *ChartsUseCase) WithNow(now func() time.Time) *ChartsUseCase {
	uc.now = now
	return uc
}

// Load trae los dos conjuntos en paralelo y arma las series. Nunca devuelve
// error: ante cualquier fallo deja constancia en el log y responde el DTO
// con Available=false y series vacías.
func (uc *ChartsUseCase) Load(ctx context.Context) *dto.ChartsDTO {
	type topResult struct {
		top []entity.TopSeller
		err error
	}
	type salesResult struct {
		events []entity.Sale
		err    error
	}

	topCh := make(chan topResult, 1)
	salesCh := make(chan salesResult, 1)
	go func() {
		top, err := uc.salesRepo.TopSelling(ctx, uc.topLimit)
		topCh <- topResult{top, err}
	}()
	go func() {
		events, err := uc.salesRepo.All(ctx)
		salesCh <- salesResult{events, err}
	}()

	top := <-topCh
	events := <-salesCh

	if top.err != nil || events.err != nil {
		err := top.err
		if err == nil {
			err = events.err
		}
		uc.log.Error().Err(err).Msg("carga de datos de gráficas fallida; panel de gráficas vacío")
		return &dto.ChartsDTO{}
	}

	topSeries := dto.ChartSeriesDTO{
		Labels: make([]string, 0, len(top.top)),
		Values: make([]int, 0, len(top.top)),
	}
	for _, t := range top.top {
		topSeries.Labels = append(topSeries.Labels, t.PartName)
		topSeries.Values = append(topSeries.Values, t.TotalQuantity)
	}

	trend := sales.DailyTrend(events.events, uc.now())

	return &dto.ChartsDTO{
		Available:  true,
		TopSelling: topSeries,
		SalesTrend: dto.ChartSeriesDTO{Labels: trend.Labels, Values: trend.Values},
	}
}
