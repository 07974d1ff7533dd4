package dto

// ChartSeriesDTO una serie lista para graficar: Labels[i] y Values[i]
// corresponden al mismo punto.
type ChartSeriesDTO struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// ChartsDTO las dos gráficas del panel de analítica. Si la carga de datos de
// gráficas falla, Available es false y las series van vacías: el panel de
// gráficas simplemente no muestra nada, nunca tumba el resto del dashboard.
type ChartsDTO struct {
	Available  bool           `json:"available"`
	TopSelling ChartSeriesDTO `json:"topSelling"` // partes más vendidas, descendente
	SalesTrend ChartSeriesDTO `json:"salesTrend"` // unidades por día, últimos 30 días
}
