package forecast

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
)

// AdvisorParams parámetros del asesor de reposición.
type AdvisorParams struct {
	SafetyMargin decimal.Decimal // fracción extra sobre la demanda del lead time (0.2 = 20%)
	RiskBuffer   decimal.Decimal // fracción de la vida útil donde el riesgo pasa a medio (0.8)
}

// Advise combina producto, pronóstico y lead time en una sugerencia de pedido
// y una clasificación de riesgo de merma.
//
// Punto de reorden = demanda proyectada del lead time × (1 + margen de seguridad).
// La cantidad a pedir es el faltante contra el stock en mano, redondeado hacia
// arriba a unidades enteras (el inventario se cuenta en unidades discretas).
//
// Riesgo: días de cobertura (stock ÷ demanda diaria promedio) contra la vida
// útil. Cobertura mayor a la vida útil → high; dentro del buffer → medium;
// si no → low. Con demanda promedio cero la cobertura no está acotada: el
// stock en mano va a caducar antes de venderse, riesgo high y pedido cero.
// Sin demanda y sin stock no hay nada que decidir automáticamente:
// ErrNoDemandSignal para revisión manual.
func Advise(p *entity.Product, fc entity.Forecast, leadTimeDays int, params AdvisorParams) (entity.Recommendation, error) {
	if leadTimeDays < 0 {
		return entity.Recommendation{}, domain.ErrInvalidLeadTime
	}
	if p == nil || p.ShelfLifeDays <= 0 || p.OnHand.IsNegative() {
		return entity.Recommendation{}, domain.ErrInvalidProduct
	}

	one := decimal.NewFromInt(1)
	leadTime := decimal.NewFromInt(int64(leadTimeDays))

	// Demanda diaria ajustada por tendencia, nunca negativa.
	daily := fc.AvgDailyDemand.Add(fc.Trend)
	if daily.IsNegative() {
		daily = decimal.Zero
	}

	rec := entity.Recommendation{ProductID: p.ID}

	if fc.AvgDailyDemand.IsZero() {
		if p.OnHand.IsZero() {
			return entity.Recommendation{}, domain.ErrNoDemandSignal
		}
		// Stock sin demanda: cobertura sin cota, supera cualquier vida útil.
		rec.OrderQty = decimal.Zero
		rec.Risk = entity.RiskHigh
		rec.CoverUnbounded = true
		return rec, nil
	}

	rec.LeadTimeDemand = daily.Mul(leadTime)
	rec.ReorderPoint = rec.LeadTimeDemand.Mul(one.Add(params.SafetyMargin))

	orderQty := rec.ReorderPoint.Sub(p.OnHand).Ceil()
	if orderQty.IsNegative() {
		orderQty = decimal.Zero
	}
	rec.OrderQty = orderQty

	rec.DaysOfCover = p.OnHand.Div(fc.AvgDailyDemand)
	rec.Risk = classifyRisk(rec.DaysOfCover, p.ShelfLifeDays, params.RiskBuffer)
	return rec, nil
}

// classifyRisk es monótona: a mayor cobertura relativa a la vida útil,
// el riesgo nunca baja.
func classifyRisk(daysOfCover decimal.Decimal, shelfLifeDays int, riskBuffer decimal.Decimal) entity.RiskLevel {
	shelfLife := decimal.NewFromInt(int64(shelfLifeDays))
	if daysOfCover.GreaterThan(shelfLife) {
		return entity.RiskHigh
	}
	if daysOfCover.GreaterThanOrEqual(shelfLife.Mul(riskBuffer)) {
		return entity.RiskMedium
	}
	return entity.RiskLow
}
