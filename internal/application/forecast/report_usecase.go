package forecast

import (
	"errors"
	"sort"

	"github.com/jhoicas/Pronostico-api/internal/application/dto"
	"github.com/jhoicas/Pronostico-api/internal/domain"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	domfc "github.com/jhoicas/Pronostico-api/internal/domain/forecast"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

// ReportUseCase genera el reporte de reposición de una tienda: una fila por
// producto activo, con pedido sugerido y riesgo de merma. Un producto que
// falla (p. ej. sin historial) se marca con su código de error y el reporte
// continúa con los demás.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	salesRepo   repository.SalesRepository
	settings    Settings
}

// NewReportUseCase construye el caso de uso del reporte.
func NewReportUseCase(productRepo repository.ProductRepository, salesRepo repository.SalesRepository, settings Settings) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, salesRepo: salesRepo, settings: settings}
}

// GenerateReport arma el reporte para todos los productos activos de la tienda.
// leadTimeDays < 0 usa el default de configuración; horizonDays <= 0 usa
// DefaultHorizonDays. Orden: severidad de riesgo descendente, luego ID de
// producto; las filas con error van al final.
func (uc *ReportUseCase) GenerateReport(companyID string, leadTimeDays, horizonDays int) (*dto.RecommendationReportDTO, error) {
	if leadTimeDays < 0 {
		leadTimeDays = uc.settings.DefaultLeadTimeDays
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	products, err := uc.productRepo.ListActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecommendationDTO, 0, len(products))
	errored := 0
	for _, p := range products {
		row := uc.buildRow(p, leadTimeDays, horizonDays)
		if row.ErrorCode != "" {
			errored++
		}
		items = append(items, row)
	}

	// Severidad descendente; filas con error al final; empates por ID de
	// producto para que el orden sea estable entre generaciones.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		sa, sb := rowSeverity(a), rowSeverity(b)
		if sa != sb {
			return sa > sb
		}
		return a.ProductID < b.ProductID
	})

	return &dto.RecommendationReportDTO{
		CompanyID:    companyID,
		LeadTimeDays: leadTimeDays,
		HorizonDays:  horizonDays,
		Items:        items,
		Errored:      errored,
	}, nil
}

// buildRow calcula pronóstico + recomendación de un producto. Los errores se
// traducen a código en la fila, nunca abortan el batch.
func (uc *ReportUseCase) buildRow(p *entity.Product, leadTimeDays, horizonDays int) dto.RecommendationDTO {
	row := dto.RecommendationDTO{
		ProductID:   p.ID,
		SKU:         p.SKU,
		ProductName: p.Name,
	}

	quantities, err := uc.salesRepo.DailyQuantities(p.ID)
	if err != nil {
		row.ErrorCode = errorCode(err)
		return row
	}
	fc, err := domfc.Predict(p.ID, quantities, horizonDays, uc.settings.engineParams())
	if err != nil {
		row.ErrorCode = errorCode(err)
		return row
	}
	rec, err := domfc.Advise(p, fc, leadTimeDays, uc.settings.advisorParams())
	if err != nil {
		row.ErrorCode = errorCode(err)
		return row
	}

	row.OrderQty = rec.OrderQty
	row.Risk = string(rec.Risk)
	row.ReorderPoint = rec.ReorderPoint
	row.LeadTimeDemand = rec.LeadTimeDemand
	if !rec.CoverUnbounded {
		cover := rec.DaysOfCover
		row.DaysOfCover = &cover
	}
	row.AvgDailyDemand = fc.AvgDailyDemand
	row.PredictedDemand = fc.PredictedDemand
	row.Confidence = fc.Confidence
	row.TrendDirection = fc.TrendDirection
	return row
}

// rowSeverity ordena high > medium > low > fila con error.
func rowSeverity(r dto.RecommendationDTO) int {
	if r.ErrorCode != "" {
		return -1
	}
	return entity.RiskLevel(r.Risk).Severity()
}

// errorCode traduce los errores del motor a códigos estables para el caller.
// El dashboard debe mostrar código + producto; nada se traga en silencio.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientData):
		return "INSUFFICIENT_DATA"
	case errors.Is(err, domain.ErrInvalidProduct):
		return "INVALID_PRODUCT"
	case errors.Is(err, domain.ErrInvalidLeadTime):
		return "INVALID_LEAD_TIME"
	case errors.Is(err, domain.ErrNoDemandSignal):
		return "NO_DEMAND_SIGNAL"
	case errors.Is(err, domain.ErrInvalidInput):
		return "INVALID_INPUT"
	default:
		return "INTERNAL"
	}
}
