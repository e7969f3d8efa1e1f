package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	"github.com/jhoicas/Pronostico-api/internal/domain/forecast"
)

var advisorParams = forecast.AdvisorParams{
	SafetyMargin: decimal.NewFromFloat(0.2),
	RiskBuffer:   decimal.NewFromFloat(0.8),
}

func producto(shelfLifeDays int, onHand int64) *entity.Product {
	return &entity.Product{
		ID:            "P1",
		CompanyID:     "C1",
		SKU:           "SKU-1",
		Name:          "Manzana",
		ShelfLifeDays: shelfLifeDays,
		OnHand:        decimal.NewFromInt(onHand),
	}
}

func pronostico(avgDaily int64) entity.Forecast {
	return entity.Forecast{
		ProductID:      "P1",
		AvgDailyDemand: decimal.NewFromInt(avgDaily),
		TrendDirection: entity.TrendFlat,
		Confidence:     entity.ConfidenceNormal,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Advise
// ──────────────────────────────────────────────────────────────────────────────

// Stock 5, demanda del lead time (3 días × 10/día) = 30, margen 20%:
// punto de reorden 36, pedido sugerido 31.
func TestAdvise_PuntoDeReordenConMargen(t *testing.T) {
	rec, err := forecast.Advise(producto(30, 5), pronostico(10), 3, advisorParams)
	require.NoError(t, err)

	assert.True(t, rec.LeadTimeDemand.Equal(decimal.NewFromInt(30)),
		"demanda del lead time esperada 30, fue %s", rec.LeadTimeDemand)
	assert.True(t, rec.ReorderPoint.Equal(decimal.NewFromInt(36)),
		"punto de reorden esperado 36, fue %s", rec.ReorderPoint)
	assert.True(t, rec.OrderQty.Equal(decimal.NewFromInt(31)),
		"pedido sugerido esperado 31, fue %s", rec.OrderQty)
}

// Si el stock cubre el punto de reorden, no se pide nada.
func TestAdvise_StockSuficienteNoPide(t *testing.T) {
	rec, err := forecast.Advise(producto(30, 40), pronostico(10), 3, advisorParams)
	require.NoError(t, err)
	assert.True(t, rec.OrderQty.IsZero(),
		"con stock 40 y reorden 36 el pedido debe ser 0, fue %s", rec.OrderQty)
}

// El pedido se redondea hacia arriba a unidades enteras.
func TestAdvise_RedondeaHaciaArriba(t *testing.T) {
	fc := entity.Forecast{
		ProductID:      "P1",
		AvgDailyDemand: decimal.NewFromFloat(2.5),
	}
	rec, err := forecast.Advise(producto(30, 0), fc, 3, advisorParams)
	require.NoError(t, err)
	// 2.5 × 3 × 1.2 = 9: ya entero, no cambia con Ceil.
	assert.True(t, rec.OrderQty.Equal(decimal.NewFromInt(9)))

	// Con demanda 2.6: 2.6 × 3 × 1.2 = 9.36 → 10.
	fc.AvgDailyDemand = decimal.NewFromFloat(2.6)
	rec, err = forecast.Advise(producto(30, 0), fc, 3, advisorParams)
	require.NoError(t, err)
	assert.True(t, rec.OrderQty.Equal(decimal.NewFromInt(10)),
		"9.36 unidades deben redondear a 10, fue %s", rec.OrderQty)
	assert.True(t, rec.OrderQty.Equal(rec.OrderQty.Floor()), "el pedido debe ser entero")
}

// Vida útil 5 días, demanda 1/día, stock 10 → cobertura 10 > 5 → riesgo high.
func TestAdvise_RiesgoAltoPorCobertura(t *testing.T) {
	rec, err := forecast.Advise(producto(5, 10), pronostico(1), 3, advisorParams)
	require.NoError(t, err)

	assert.True(t, rec.DaysOfCover.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, entity.RiskHigh, rec.Risk,
		"cobertura 10 días contra vida útil 5 debe ser riesgo high")
}

// Cobertura dentro del buffer (80–100% de la vida útil) → riesgo medium.
func TestAdvise_RiesgoMedioEnBuffer(t *testing.T) {
	rec, err := forecast.Advise(producto(10, 9), pronostico(1), 3, advisorParams)
	require.NoError(t, err)
	assert.Equal(t, entity.RiskMedium, rec.Risk,
		"cobertura 9 días con vida útil 10 y buffer 0.8 debe ser medium")

	rec, err = forecast.Advise(producto(10, 5), pronostico(1), 3, advisorParams)
	require.NoError(t, err)
	assert.Equal(t, entity.RiskLow, rec.Risk,
		"cobertura 5 días con vida útil 10 debe ser low")
}

// Propiedad: a vida útil fija, aumentar la cobertura nunca baja el riesgo.
func TestAdvise_RiesgoMonotonoEnCobertura(t *testing.T) {
	prev := 0
	for onHand := int64(0); onHand <= 20; onHand++ {
		rec, err := forecast.Advise(producto(10, onHand), pronostico(1), 3, advisorParams)
		require.NoError(t, err)
		sev := rec.Risk.Severity()
		assert.GreaterOrEqual(t, sev, prev,
			"el riesgo no puede bajar al subir la cobertura (stock %d)", onHand)
		prev = sev
	}
}

// Demanda promedio cero con stock: pedido 0, cobertura sin cota, riesgo high.
func TestAdvise_SinDemandaConStock(t *testing.T) {
	rec, err := forecast.Advise(producto(5, 8), pronostico(0), 3, advisorParams)
	require.NoError(t, err)

	assert.True(t, rec.OrderQty.IsZero(), "sin demanda no se sugiere pedido")
	assert.True(t, rec.CoverUnbounded, "la cobertura no está acotada sin demanda")
	assert.Equal(t, entity.RiskHigh, rec.Risk)
}

// Demanda cero y stock cero: revisión manual.
func TestAdvise_SinDemandaNiStock(t *testing.T) {
	_, err := forecast.Advise(producto(5, 0), pronostico(0), 3, advisorParams)
	assert.ErrorIs(t, err, domain.ErrNoDemandSignal)
}

func TestAdvise_LeadTimeNegativo(t *testing.T) {
	_, err := forecast.Advise(producto(5, 10), pronostico(1), -1, advisorParams)
	assert.ErrorIs(t, err, domain.ErrInvalidLeadTime)
}

func TestAdvise_ProductoInvalido(t *testing.T) {
	_, err := forecast.Advise(producto(0, 10), pronostico(1), 3, advisorParams)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct, "vida útil cero")

	p := producto(5, 0)
	p.OnHand = decimal.NewFromInt(-1)
	_, err = forecast.Advise(p, pronostico(1), 3, advisorParams)
	assert.ErrorIs(t, err, domain.ErrInvalidProduct, "stock negativo")
}

// El pedido sugerido nunca es negativo, sin importar el stock.
func TestAdvise_PedidoNuncaNegativo(t *testing.T) {
	for onHand := int64(0); onHand <= 100; onHand += 10 {
		rec, err := forecast.Advise(producto(30, onHand), pronostico(2), 3, advisorParams)
		require.NoError(t, err)
		assert.False(t, rec.OrderQty.IsNegative())
	}
}

// Una tendencia a la baja reduce la demanda del lead time pero nunca bajo cero.
func TestAdvise_TendenciaBajaRecortada(t *testing.T) {
	fc := entity.Forecast{
		ProductID:      "P1",
		AvgDailyDemand: decimal.NewFromInt(2),
		Trend:          decimal.NewFromInt(-5),
	}
	rec, err := forecast.Advise(producto(10, 4), fc, 3, advisorParams)
	require.NoError(t, err)

	assert.True(t, rec.LeadTimeDemand.IsZero(),
		"demanda ajustada negativa se recorta a cero")
	assert.True(t, rec.OrderQty.IsZero())
	// La cobertura sigue usando el promedio sin ajustar: 4 / 2 = 2 días.
	assert.True(t, rec.DaysOfCover.Equal(decimal.NewFromInt(2)))
}
