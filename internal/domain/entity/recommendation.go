package entity

import "github.com/shopspring/decimal"

// RiskLevel clasifica la probabilidad de que el stock caduque sin venderse.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Severity ordena los niveles para el reporte (mayor = más urgente).
func (r RiskLevel) Severity() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Niveles de confianza del pronóstico.
const (
	ConfidenceLow    = "low"    // historial más corto que la ventana
	ConfidenceNormal = "normal" // ventana completa disponible
)

// Direcciones de tendencia del pronóstico.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Forecast es el resultado derivado del motor para un producto y un horizonte.
// Se recalcula en cada petición; nunca es fuente de verdad persistida.
type Forecast struct {
	ProductID       string
	HorizonDays     int
	AvgDailyDemand  decimal.Decimal // promedio móvil de la ventana reciente
	Trend           decimal.Decimal // diferencia diaria entre ventana reciente y anterior
	TrendDirection  string          // up, down, flat
	PredictedDemand decimal.Decimal // demanda total proyectada del horizonte (>= 0)
	Confidence      string          // low, normal
}

// Recommendation es la sugerencia de pedido derivada de Forecast + Product.
// Nunca se muta: se regenera en cada reporte.
type Recommendation struct {
	ProductID       string
	OrderQty        decimal.Decimal // unidades enteras, >= 0
	Risk            RiskLevel
	ReorderPoint    decimal.Decimal
	LeadTimeDemand  decimal.Decimal
	DaysOfCover     decimal.Decimal // válido solo si CoverUnbounded es false
	CoverUnbounded  bool            // demanda promedio cero con stock en mano
}
