// Package forecast contiene el motor de pronóstico de demanda y el asesor de
// reposición (servicios de dominio puros). Todo es determinista: el mismo
// historial produce siempre el mismo resultado, sin reloj ni aleatoriedad.
package forecast

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
)

// DefaultWindow ventana de promedio móvil por defecto (días).
const DefaultWindow = 7

// Params parámetros del motor. Se pasan por valor en cada llamada.
type Params struct {
	Window int // observaciones de la ventana de promedio móvil
}

func (p Params) window() int {
	if p.Window > 0 {
		return p.Window
	}
	return DefaultWindow
}

// Predict calcula el pronóstico de demanda para un horizonte en días a partir
// del historial de cantidades vendidas por día, ordenado ascendente por fecha.
//
// Promedio móvil sobre las últimas Window observaciones; la tendencia es la
// diferencia entre el promedio de la ventana reciente y el de la ventana
// anterior (cero si no hay 2×Window puntos). La demanda proyectada es
// (promedio + tendencia) × horizonte, recortada a no-negativa.
//
// Si el historial es más corto que la ventana se usan todos los puntos y la
// confianza baja a "low". Historial vacío → ErrInsufficientData.
func Predict(productID string, quantities []decimal.Decimal, horizonDays int, p Params) (entity.Forecast, error) {
	if horizonDays <= 0 {
		return entity.Forecast{}, domain.ErrInvalidInput
	}
	if len(quantities) == 0 {
		return entity.Forecast{}, domain.ErrInsufficientData
	}
	for _, q := range quantities {
		if q.IsNegative() {
			return entity.Forecast{}, domain.ErrInvalidInput
		}
	}

	w := p.window()
	confidence := entity.ConfidenceNormal
	if len(quantities) < w {
		confidence = entity.ConfidenceLow
	}

	recent := tail(quantities, w)
	avg := mean(recent)

	// Tendencia: ventana reciente vs. ventana inmediatamente anterior.
	trend := decimal.Zero
	if len(quantities) >= 2*w {
		prior := quantities[len(quantities)-2*w : len(quantities)-w]
		trend = avg.Sub(mean(prior))
	}

	horizon := decimal.NewFromInt(int64(horizonDays))
	predicted := avg.Add(trend).Mul(horizon)
	if predicted.IsNegative() {
		predicted = decimal.Zero
	}

	return entity.Forecast{
		ProductID:       productID,
		HorizonDays:     horizonDays,
		AvgDailyDemand:  avg,
		Trend:           trend,
		TrendDirection:  trendDirection(trend),
		PredictedDemand: predicted,
		Confidence:      confidence,
	}, nil
}

func trendDirection(trend decimal.Decimal) string {
	switch trend.Sign() {
	case 1:
		return entity.TrendUp
	case -1:
		return entity.TrendDown
	default:
		return entity.TrendFlat
	}
}

// tail devuelve las últimas n posiciones (todas si hay menos de n).
func tail(qs []decimal.Decimal, n int) []decimal.Decimal {
	if len(qs) <= n {
		return qs
	}
	return qs[len(qs)-n:]
}

func mean(qs []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, q := range qs {
		sum = sum.Add(q)
	}
	return sum.Div(decimal.NewFromInt(int64(len(qs))))
}
