package dto

import "github.com/shopspring/decimal"

// ForecastResponse respuesta para GET /api/forecast/:productId.
type ForecastResponse struct {
	ProductID       string          `json:"product_id"`
	HorizonDays     int             `json:"horizon_days"`
	AvgDailyDemand  decimal.Decimal `json:"avg_daily_demand"`
	Trend           decimal.Decimal `json:"trend"`
	TrendDirection  string          `json:"trend_direction"` // up | down | flat
	PredictedDemand decimal.Decimal `json:"predicted_demand"`
	Confidence      string          `json:"confidence"` // low | normal
}

// RecommendationDTO es una fila del reporte de reposición. Si ErrorCode no está
// vacío el producto falló (p. ej. sin historial) y el resto de campos numéricos
// no aplican; el reporte nunca se aborta por un producto.
type RecommendationDTO struct {
	ProductID        string           `json:"product_id"`
	SKU              string           `json:"sku"`
	ProductName      string           `json:"product_name"`
	OrderQty         decimal.Decimal  `json:"order_qty"`
	Risk             string           `json:"risk"` // low | medium | high
	ReorderPoint     decimal.Decimal  `json:"reorder_point"`
	LeadTimeDemand   decimal.Decimal  `json:"lead_time_demand"`
	DaysOfCover      *decimal.Decimal `json:"days_of_cover"` // null si la cobertura no está acotada
	AvgDailyDemand   decimal.Decimal  `json:"avg_daily_demand"`
	PredictedDemand  decimal.Decimal  `json:"predicted_demand"`
	Confidence       string           `json:"confidence,omitempty"`
	TrendDirection   string           `json:"trend_direction,omitempty"`
	ErrorCode        string           `json:"error_code,omitempty"`
}

// RecommendationReportDTO reporte completo para el dashboard: una fila por
// producto, ordenadas por severidad de riesgo descendente y luego por ID.
type RecommendationReportDTO struct {
	CompanyID    string              `json:"company_id"`
	LeadTimeDays int                 `json:"lead_time_days"`
	HorizonDays  int                 `json:"horizon_days"`
	Items        []RecommendationDTO `json:"items"`
	Errored      int                 `json:"errored"` // filas con ErrorCode
}
