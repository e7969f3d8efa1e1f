// Package forecast contiene los casos de uso del motor de pronóstico:
// pronóstico por producto y reporte de reposición por tienda.
package forecast

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pronostico-api/internal/application/dto"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	domfc "github.com/jhoicas/Pronostico-api/internal/domain/forecast"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

// Settings parámetros del motor para los casos de uso. Es un valor inmutable
// que se construye una vez en el arranque y se pasa por copia: cada llamada
// del dashboard trabaja con la misma configuración, sin estado compartido.
type Settings struct {
	Window              int
	SafetyMargin        decimal.Decimal
	RiskBuffer          decimal.Decimal
	DefaultLeadTimeDays int
}

// DefaultHorizonDays horizonte de pronóstico si el request no lo indica.
const DefaultHorizonDays = 7

func (s Settings) engineParams() domfc.Params {
	return domfc.Params{Window: s.Window}
}

func (s Settings) advisorParams() domfc.AdvisorParams {
	return domfc.AdvisorParams{SafetyMargin: s.SafetyMargin, RiskBuffer: s.RiskBuffer}
}

// ForecastUseCase calcula el pronóstico de demanda de un producto.
type ForecastUseCase struct {
	productRepo repository.ProductRepository
	salesRepo   repository.SalesRepository
	settings    Settings
}

// NewForecastUseCase construye el caso de uso.
func NewForecastUseCase(productRepo repository.ProductRepository, salesRepo repository.SalesRepository, settings Settings) *ForecastUseCase {
	return &ForecastUseCase{productRepo: productRepo, salesRepo: salesRepo, settings: settings}
}

// GetForecast pronostica la demanda de un producto para un horizonte en días.
// horizonDays <= 0 usa DefaultHorizonDays. El producto debe pertenecer a la tienda.
func (uc *ForecastUseCase) GetForecast(companyID, productID string, horizonDays int) (*dto.ForecastResponse, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	quantities, err := uc.salesRepo.DailyQuantities(productID)
	if err != nil {
		return nil, err
	}
	fc, err := domfc.Predict(productID, quantities, horizonDays, uc.settings.engineParams())
	if err != nil {
		return nil, err
	}
	return &dto.ForecastResponse{
		ProductID:       fc.ProductID,
		HorizonDays:     fc.HorizonDays,
		AvgDailyDemand:  fc.AvgDailyDemand,
		Trend:           fc.Trend,
		TrendDirection:  fc.TrendDirection,
		PredictedDemand: fc.PredictedDemand,
		Confidence:      fc.Confidence,
	}, nil
}
