package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfc "github.com/jhoicas/Pronostico-api/internal/application/forecast"
	"github.com/jhoicas/Pronostico-api/internal/domain/entity"
	"github.com/jhoicas/Pronostico-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products = append(f.products, p); return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(*entity.Product) error { return nil }

func (f *fakeProductRepo) UpdateOnHand(productID string, onHand decimal.Decimal) error {
	for _, p := range f.products {
		if p.ID == productID {
			p.OnHand = onHand
		}
	}
	return nil
}

func (f *fakeProductRepo) ListByCompany(companyID string, includeRetired bool, limit, offset int) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) ListActiveByCompany(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.CompanyID == companyID && !p.Retired {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Retire(id string) error {
	for _, p := range f.products {
		if p.ID == id {
			p.Retired = true
		}
	}
	return nil
}

type fakeSalesRepo struct {
	daily map[string][]decimal.Decimal
}

var _ repository.SalesRepository = (*fakeSalesRepo)(nil)

func (f *fakeSalesRepo) Create(*entity.SalesRecord) error { return nil }

func (f *fakeSalesRepo) ListByProduct(string) ([]*entity.SalesRecord, error) { return nil, nil }

func (f *fakeSalesRepo) DailyQuantities(productID string) ([]decimal.Decimal, error) {
	return f.daily[productID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func settings() appfc.Settings {
	return appfc.Settings{
		Window:              7,
		SafetyMargin:        decimal.NewFromFloat(0.2),
		RiskBuffer:          decimal.NewFromFloat(0.8),
		DefaultLeadTimeDays: 3,
	}
}

func prod(id, sku string, shelfLifeDays int, onHand int64) *entity.Product {
	return &entity.Product{
		ID:            id,
		CompanyID:     "C1",
		SKU:           sku,
		Name:          "Producto " + sku,
		ShelfLifeDays: shelfLifeDays,
		OnHand:        decimal.NewFromInt(onHand),
	}
}

func constDemand(v int64, days int) []decimal.Decimal {
	out := make([]decimal.Decimal, days)
	for i := range out {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GenerateReport
// ──────────────────────────────────────────────────────────────────────────────

// Un producto sin historial se marca INSUFFICIENT_DATA y el reporte continúa.
func TestGenerateReport_ProductoErradoNoAbortaElBatch(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		prod("P1", "SKU-1", 5, 10),  // demanda 1/día, cobertura 10 > 5 → high
		prod("P2", "SKU-2", 30, 5),  // demanda 10/día → pide, riesgo low
		prod("P3", "SKU-3", 10, 4),  // sin historial → error
	}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{
		"P1": constDemand(1, 7),
		"P2": constDemand(10, 7),
		// P3 sin ventas
	}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)

	require.Len(t, report.Items, 3, "el reporte incluye todos los productos")
	assert.Equal(t, 1, report.Errored)

	// La fila errada va al final, con código y sin abortar las demás.
	last := report.Items[2]
	assert.Equal(t, "P3", last.ProductID)
	assert.Equal(t, "INSUFFICIENT_DATA", last.ErrorCode)

	// P1 (high) antes que P2 (low).
	assert.Equal(t, "P1", report.Items[0].ProductID)
	assert.Equal(t, string(entity.RiskHigh), report.Items[0].Risk)
	assert.Equal(t, "P2", report.Items[1].ProductID)
	assert.Equal(t, string(entity.RiskLow), report.Items[1].Risk)
}

// Pedido sugerido del escenario de referencia: stock 5, demanda lead time 30,
// margen 20% → reorden 36, pedido 31.
func TestGenerateReport_CalculaPedidoSugerido(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{prod("P1", "SKU-1", 30, 5)}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{"P1": constDemand(10, 7)}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)

	row := report.Items[0]
	assert.True(t, row.ReorderPoint.Equal(decimal.NewFromInt(36)),
		"punto de reorden esperado 36, fue %s", row.ReorderPoint)
	assert.True(t, row.OrderQty.Equal(decimal.NewFromInt(31)),
		"pedido esperado 31, fue %s", row.OrderQty)
	require.NotNil(t, row.DaysOfCover)
	assert.True(t, row.DaysOfCover.Equal(decimal.NewFromFloat(0.5)),
		"cobertura esperada 0.5 días, fue %s", row.DaysOfCover)
}

// Empates de severidad se resuelven por ID de producto (orden estable).
func TestGenerateReport_OrdenEstablePorID(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		prod("P2", "SKU-2", 30, 5),
		prod("P1", "SKU-1", 30, 5),
	}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{
		"P1": constDemand(10, 7),
		"P2": constDemand(10, 7),
	}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "P1", report.Items[0].ProductID)
	assert.Equal(t, "P2", report.Items[1].ProductID)
}

// Sin demanda y sin stock → NO_DEMAND_SIGNAL para revisión manual.
func TestGenerateReport_SinSenalDeDemanda(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{prod("P1", "SKU-1", 5, 0)}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{"P1": constDemand(0, 7)}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "NO_DEMAND_SIGNAL", report.Items[0].ErrorCode)
}

// Sin demanda pero con stock: fila válida, pedido 0, riesgo high, cobertura null.
func TestGenerateReport_StockSinDemanda(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{prod("P1", "SKU-1", 5, 8)}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{"P1": constDemand(0, 7)}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)

	row := report.Items[0]
	assert.Empty(t, row.ErrorCode)
	assert.True(t, row.OrderQty.IsZero())
	assert.Equal(t, string(entity.RiskHigh), row.Risk)
	assert.Nil(t, row.DaysOfCover, "cobertura no acotada se reporta como null")
}

// Lead time negativo en el request cae al default de configuración.
func TestGenerateReport_LeadTimePorDefecto(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{prod("P1", "SKU-1", 30, 5)}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{"P1": constDemand(10, 7)}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", -1, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, report.LeadTimeDays, "debe usar DEFAULT_LEAD_TIME_DAYS")
}

// Los productos retirados no aparecen en el reporte.
func TestGenerateReport_ExcluyeRetirados(t *testing.T) {
	retirado := prod("P2", "SKU-2", 30, 5)
	retirado.Retired = true
	products := &fakeProductRepo{products: []*entity.Product{prod("P1", "SKU-1", 30, 5), retirado}}
	sales := &fakeSalesRepo{daily: map[string][]decimal.Decimal{
		"P1": constDemand(10, 7),
		"P2": constDemand(10, 7),
	}}

	uc := appfc.NewReportUseCase(products, sales, settings())
	report, err := uc.GenerateReport("C1", 3, 7)
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "P1", report.Items[0].ProductID)
}
